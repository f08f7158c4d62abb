package usecase

import (
	"context"

	"sensorysearch/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitInput is the organizer-facing submission form. Validation rules are
// declared on the struct; which fields are required additionally depends on
// the submission type.
type SubmitInput struct {
	Type           entity.SubmissionType `json:"type"`
	OrganizerEmail string                `json:"organizer_email" validate:"required,email"`
	Name           string                `json:"name" validate:"required,min=2,max=120"`
	Description    string                `json:"description" validate:"required,min=20,max=2000"`
	Address        string                `json:"address" validate:"required"`
	City           string                `json:"city" validate:"required"`
	Website        string                `json:"website" validate:"omitempty,url"`

	NoiseLevel   string `json:"noise_level" validate:"omitempty,oneof=Quiet Moderate Loud"`
	Lighting     string `json:"lighting" validate:"omitempty,oneof=Dim Moderate Bright"`
	CrowdDensity string `json:"crowd_density" validate:"omitempty,oneof=Low Medium High"`

	HasQuietSpace        bool `json:"has_quiet_space"`
	WheelchairAccessible bool `json:"wheelchair_accessible"`
	SensoryFriendlyHours bool `json:"sensory_friendly_hours"`

	// Event-only fields, required when Type is "event".
	EventDate string `json:"event_date,omitempty"`
	MinAge    int    `json:"min_age" validate:"min=0,max=99"`
	MaxAge    int    `json:"max_age" validate:"min=0,max=99"`
}

// ValidationResult reports every field violation at once so the caller can
// render all errors together.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// SubmissionUsecase is the moderation workflow: validate, submit, and the
// single admin-triggered pending -> approved/rejected transition.
type SubmissionUsecase interface {
	Validate(input *SubmitInput) *ValidationResult
	Submit(ctx context.Context, input *SubmitInput) (*entity.Submission, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reason string) error
	ListPending(ctx context.Context, limit, offset int) ([]*entity.Submission, error)
}
