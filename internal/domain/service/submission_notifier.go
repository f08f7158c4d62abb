package service

import (
	"context"

	"sensorysearch/internal/domain/entity"
)

// SubmissionNotifier sends moderation emails through the hosted email API.
// All calls are fire-and-forget from the workflow's point of view: failures
// are logged by the caller, never surfaced to the submitter.
type SubmissionNotifier interface {
	// NotifySubmissionReceived tells the moderation team a new submission
	// is waiting for review.
	NotifySubmissionReceived(ctx context.Context, submission *entity.Submission) error

	// NotifyApproved tells the organizer their submission went live.
	NotifyApproved(ctx context.Context, submission *entity.Submission) error

	// NotifyRejected tells the organizer their submission was declined,
	// including the optional reviewer reason.
	NotifyRejected(ctx context.Context, submission *entity.Submission, reason string) error
}
