package service

import (
	"context"
)

// SubmissionEvent is emitted whenever a submission is created or reviewed,
// so downstream consumers (moderation dashboards, analytics) can react
// without coupling to the workflow.
type SubmissionEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	SubmissionID   string `json:"submission_id"`
	SubmissionType string `json:"submission_type"`
	Status         string `json:"status"`
	OrganizerEmail string `json:"organizer_email"`
	Reason         string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing submission events to a
// message queue.
type EventPublisher interface {
	// PublishSubmissionEvent publishes a submission lifecycle event.
	PublishSubmissionEvent(ctx context.Context, event *SubmissionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
