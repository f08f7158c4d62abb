package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionType identifies which listing type an organizer is submitting.
type SubmissionType string

const (
	SubmissionVenue        SubmissionType = "venue"
	SubmissionEvent        SubmissionType = "event"
	SubmissionWorship      SubmissionType = "place_of_worship"
	SubmissionProfessional SubmissionType = "professional_service"
	SubmissionPark         SubmissionType = "park"
)

// Valid reports whether the submission type is one of the known types.
func (t SubmissionType) Valid() bool {
	switch t {
	case SubmissionVenue, SubmissionEvent, SubmissionWorship, SubmissionProfessional, SubmissionPark:
		return true
	}

	return false
}

// SubmissionStatus is the moderation state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// IsTerminal reports whether no further transitions are allowed.
func (s SubmissionStatus) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected:
		return true
	case StatusPending:
		return false
	}

	// Unknown statuses are treated as terminal so bad data cannot be advanced.
	return true
}

// CanTransitionTo reports whether the transition s -> next is allowed.
// The only legal transitions are pending -> approved and pending -> rejected.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved, StatusRejected:
		return false
	}

	return false
}

// Submission is an organizer-submitted listing awaiting moderation.
// Submissions are never deleted; rejected ones are retained for audit.
type Submission struct {
	ID             uuid.UUID        `json:"id"`
	Type           SubmissionType   `json:"type"`
	Status         SubmissionStatus `json:"status"`
	OrganizerEmail string           `json:"organizer_email"`
	Payload        map[string]any   `json:"payload"`
	RejectReason   string           `json:"reject_reason,omitempty"`
	SubmittedAt    time.Time        `json:"submitted_at"`
	ReviewedAt     *time.Time       `json:"reviewed_at,omitempty"`
}
