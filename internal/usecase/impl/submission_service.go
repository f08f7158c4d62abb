package impl

import (
	"context"
	"log/slog"
	"time"

	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/domain/service"
	"sensorysearch/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const eventDateLayout = "2006-01-02"

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	notifier       service.SubmissionNotifier
	publisher      service.EventPublisher
	validate       *validator.Validate
	logger         *slog.Logger
}

// SubmissionServiceParams holds dependencies for SubmissionService, injected by Fx.
type SubmissionServiceParams struct {
	fx.In

	SubmissionRepo repository.SubmissionRepository
	Notifier       service.SubmissionNotifier
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(params SubmissionServiceParams) usecase.SubmissionUsecase {
	return &submissionService{
		submissionRepo: params.SubmissionRepo,
		notifier:       params.Notifier,
		publisher:      params.Publisher,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		logger:         params.Logger,
	}
}

// Validate checks the form input and reports every violation at once so the
// caller can render all field errors together.
func (s *submissionService) Validate(input *usecase.SubmitInput) *usecase.ValidationResult {
	fieldErrors := make(map[string]string)

	if input == nil {
		return &usecase.ValidationResult{
			Valid:  false,
			Errors: map[string]string{"input": "submission payload is required"},
		}
	}

	if !input.Type.Valid() {
		fieldErrors["type"] = "unknown submission type"
	}

	if err := s.validate.Struct(input); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				fieldErrors[jsonFieldName(fieldErr.Field())] = validationMessage(fieldErr)
			}
		} else {
			fieldErrors["input"] = "submission payload is malformed"
		}
	}

	// Type-specific rules on top of the struct tags.
	if input.Type == entity.SubmissionEvent {
		if input.EventDate == "" {
			fieldErrors["event_date"] = "event date is required"
		} else if _, err := time.Parse(eventDateLayout, input.EventDate); err != nil {
			fieldErrors["event_date"] = "event date must be YYYY-MM-DD"
		}
		if input.MinAge > input.MaxAge {
			fieldErrors["min_age"] = "minimum age cannot exceed maximum age"
		}
	}

	return &usecase.ValidationResult{
		Valid:  len(fieldErrors) == 0,
		Errors: fieldErrors,
	}
}

// Submit validates and persists a new pending submission, then fires the
// "submission received" notification and lifecycle event. Notification and
// publish failures are logged only; they never block the submitter.
func (s *submissionService) Submit(ctx context.Context, input *usecase.SubmitInput) (*entity.Submission, error) {
	if result := s.Validate(input); !result.Valid {
		return nil, domainerrors.ErrValidationFailed
	}

	submission := &entity.Submission{
		ID:             uuid.New(),
		Type:           input.Type,
		Status:         entity.StatusPending,
		OrganizerEmail: input.OrganizerEmail,
		Payload:        payloadFromInput(input),
		SubmittedAt:    time.Now(),
	}

	if err := s.submissionRepo.CreateSubmission(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "failed to create submission")
	}

	if err := s.notifier.NotifySubmissionReceived(ctx, submission); err != nil {
		s.logger.Warn("submission notification failed",
			slog.String("submission_id", submission.ID.String()),
			slog.Any("error", err),
		)
	}
	s.publishEvent(ctx, submission, "")

	return submission, nil
}

// Approve transitions a pending submission to approved and notifies the
// organizer.
func (s *submissionService) Approve(ctx context.Context, id uuid.UUID) error {
	submission, err := s.findForReview(ctx, id, entity.StatusApproved)
	if err != nil {
		return err
	}

	if err := s.submissionRepo.UpdateSubmission(ctx, submission); err != nil {
		return mapReviewUpdateErr(err)
	}

	if err := s.notifier.NotifyApproved(ctx, submission); err != nil {
		s.logger.Warn("approval notification failed",
			slog.String("submission_id", submission.ID.String()),
			slog.Any("error", err),
		)
	}
	s.publishEvent(ctx, submission, "")

	return nil
}

// Reject transitions a pending submission to rejected, recording the
// optional reviewer reason and notifying the organizer.
func (s *submissionService) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	submission, err := s.findForReview(ctx, id, entity.StatusRejected)
	if err != nil {
		return err
	}
	submission.RejectReason = reason

	if err := s.submissionRepo.UpdateSubmission(ctx, submission); err != nil {
		return mapReviewUpdateErr(err)
	}

	if err := s.notifier.NotifyRejected(ctx, submission, reason); err != nil {
		s.logger.Warn("rejection notification failed",
			slog.String("submission_id", submission.ID.String()),
			slog.Any("error", err),
		)
	}
	s.publishEvent(ctx, submission, reason)

	return nil
}

// ListPending returns the moderation queue, oldest first.
func (s *submissionService) ListPending(ctx context.Context, limit, offset int) ([]*entity.Submission, error) {
	submissions, err := s.submissionRepo.ListSubmissionsByStatus(ctx, entity.StatusPending, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending submissions")
	}

	return submissions, nil
}

// findForReview loads the submission and applies the status transition
// in-memory; persisting is up to the caller.
func (s *submissionService) findForReview(ctx context.Context, id uuid.UUID, next entity.SubmissionStatus) (*entity.Submission, error) {
	submission, err := s.submissionRepo.FindSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by ID")
	}

	if !submission.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition
	}

	now := time.Now()
	submission.Status = next
	submission.ReviewedAt = &now

	return submission, nil
}

// mapReviewUpdateErr translates the store's transition outcome: a vanished
// row answers not-found, a lost race against another reviewer answers
// invalid-transition since the stored state did not change.
func mapReviewUpdateErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrSubmissionNotFound):
		return domainerrors.ErrSubmissionNotFound
	case errors.Is(err, repository.ErrSubmissionReviewed):
		return domainerrors.ErrInvalidTransition
	}

	return errors.Wrap(err, "failed to update submission")
}

func (s *submissionService) publishEvent(ctx context.Context, submission *entity.Submission, reason string) {
	if s.publisher == nil {
		return
	}

	event := &service.SubmissionEvent{
		SubmissionID:   submission.ID.String(),
		SubmissionType: string(submission.Type),
		Status:         string(submission.Status),
		OrganizerEmail: submission.OrganizerEmail,
		Reason:         reason,
	}

	if err := s.publisher.PublishSubmissionEvent(ctx, event); err != nil {
		s.logger.Warn("submission event publish failed",
			slog.String("submission_id", submission.ID.String()),
			slog.Any("error", err),
		)
	}
}

func payloadFromInput(input *usecase.SubmitInput) map[string]any {
	payload := map[string]any{
		"name":                   input.Name,
		"description":            input.Description,
		"address":                input.Address,
		"city":                   input.City,
		"website":                input.Website,
		"noise_level":            input.NoiseLevel,
		"lighting":               input.Lighting,
		"crowd_density":          input.CrowdDensity,
		"has_quiet_space":        input.HasQuietSpace,
		"wheelchair_accessible":  input.WheelchairAccessible,
		"sensory_friendly_hours": input.SensoryFriendlyHours,
	}

	if input.Type == entity.SubmissionEvent {
		payload["event_date"] = input.EventDate
		payload["min_age"] = input.MinAge
		payload["max_age"] = input.MaxAge
	}

	return payload
}

// jsonFieldName maps the exported struct field name reported by the
// validator to the snake_case field the client submitted.
func jsonFieldName(field string) string {
	switch field {
	case "OrganizerEmail":
		return "organizer_email"
	case "Name":
		return "name"
	case "Description":
		return "description"
	case "Address":
		return "address"
	case "City":
		return "city"
	case "Website":
		return "website"
	case "NoiseLevel":
		return "noise_level"
	case "Lighting":
		return "lighting"
	case "CrowdDensity":
		return "crowd_density"
	case "EventDate":
		return "event_date"
	case "MinAge":
		return "min_age"
	case "MaxAge":
		return "max_age"
	}

	return field
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return "too short or below the minimum"
	case "max":
		return "too long or above the maximum"
	case "oneof":
		return "must be one of: " + fieldErr.Param()
	}

	return "invalid value"
}
