package repository

import (
	"context"

	"sensorysearch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSubmissionNotFound is returned when a submission does not exist.
var ErrSubmissionNotFound = errors.New("submission not found")

// ErrSubmissionReviewed is returned when a review update loses the race to
// another reviewer and the stored submission is no longer pending.
var ErrSubmissionReviewed = errors.New("submission already reviewed")

// SubmissionRepository persists organizer submissions. Submissions are
// append-and-update only; the application never deletes them.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *entity.Submission) error
	FindSubmissionByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error)

	// UpdateSubmission applies a review transition. The write only lands
	// while the stored row is still pending, so approved and rejected stay
	// terminal under concurrent reviews: a missing row is
	// ErrSubmissionNotFound, a row already reviewed is ErrSubmissionReviewed.
	UpdateSubmission(ctx context.Context, submission *entity.Submission) error
	ListSubmissionsByStatus(ctx context.Context, status entity.SubmissionStatus, limit, offset int) ([]*entity.Submission, error)
}
