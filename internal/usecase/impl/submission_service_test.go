package impl

import (
	"context"
	"errors"
	"testing"

	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/domain/service"
	mockRepo "sensorysearch/internal/mocks/repository"
	mockSvc "sensorysearch/internal/mocks/service"
	"sensorysearch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmissionService(
	submissionRepo repository.SubmissionRepository,
	notifier service.SubmissionNotifier,
	publisher service.EventPublisher,
) usecase.SubmissionUsecase {
	return NewSubmissionService(SubmissionServiceParams{
		SubmissionRepo: submissionRepo,
		Notifier:       notifier,
		Publisher:      publisher,
		Logger:         newTestLogger(),
	})
}

func validVenueInput() *usecase.SubmitInput {
	return &usecase.SubmitInput{
		Type:           entity.SubmissionVenue,
		OrganizerEmail: "owner@example.com",
		Name:           "Quiet Cafe",
		Description:    "A calm cafe with a dedicated low-stimulation room.",
		Address:        "123 Market St",
		City:           "Philadelphia",
		Website:        "https://quietcafe.example.com",
		NoiseLevel:     "Quiet",
		HasQuietSpace:  true,
	}
}

func validEventInput() *usecase.SubmitInput {
	input := validVenueInput()
	input.Type = entity.SubmissionEvent
	input.Name = "Sensory-friendly morning"
	input.EventDate = "2026-10-01"
	input.MinAge = 0
	input.MaxAge = 12

	return input
}

func TestSubmissionService_Validate_CollectsAllErrors(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	result := svc.Validate(&usecase.SubmitInput{Type: "billboard"})
	require.False(t, result.Valid)

	// Every missing field is reported in one pass, not just the first.
	assert.Contains(t, result.Errors, "type")
	assert.Contains(t, result.Errors, "organizer_email")
	assert.Contains(t, result.Errors, "name")
	assert.Contains(t, result.Errors, "description")
	assert.Contains(t, result.Errors, "address")
	assert.Contains(t, result.Errors, "city")
}

func TestSubmissionService_Validate_EventSpecificRules(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	input := validEventInput()
	input.EventDate = "10/01/2026"
	result := svc.Validate(input)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "event_date")

	input = validEventInput()
	input.EventDate = ""
	result = svc.Validate(input)
	require.False(t, result.Valid)
	assert.Equal(t, "event date is required", result.Errors["event_date"])

	input = validEventInput()
	input.MinAge = 10
	input.MaxAge = 5
	result = svc.Validate(input)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "min_age")
}

func TestSubmissionService_Validate_AcceptsWellFormedInput(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	result := svc.Validate(validVenueInput())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	result = svc.Validate(validEventInput())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestSubmissionService_Validate_RejectsBadSensoryValue(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	input := validVenueInput()
	input.NoiseLevel = "Deafening"
	result := svc.Validate(input)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "noise_level")
}

func TestSubmissionService_Submit_Success(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, mockPublisher)

	ctx := context.Background()

	mockSubmissionRepo.EXPECT().
		CreateSubmission(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(nil)
	mockNotifier.EXPECT().
		NotifySubmissionReceived(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(nil)
	mockPublisher.EXPECT().
		PublishSubmissionEvent(ctx, mock.AnythingOfType("*service.SubmissionEvent")).
		Return(nil)

	submission, err := svc.Submit(ctx, validVenueInput())
	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.NotEqual(t, uuid.Nil, submission.ID)
	assert.Equal(t, entity.StatusPending, submission.Status)
	assert.Equal(t, "owner@example.com", submission.OrganizerEmail)
	assert.Equal(t, "Quiet Cafe", submission.Payload["name"])
	assert.False(t, submission.SubmittedAt.IsZero())
	assert.Nil(t, submission.ReviewedAt)
}

func TestSubmissionService_Submit_InvalidInputNeverHitsStore(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	submission, err := svc.Submit(context.Background(), &usecase.SubmitInput{Type: entity.SubmissionVenue})
	assert.Nil(t, submission)
	assert.Equal(t, domainerrors.ErrValidationFailed, err)
}

func TestSubmissionService_Submit_NotifierFailureIsIgnored(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()

	mockSubmissionRepo.EXPECT().
		CreateSubmission(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(nil)
	mockNotifier.EXPECT().
		NotifySubmissionReceived(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(errors.New("smtp relay down"))

	submission, err := svc.Submit(ctx, validVenueInput())
	require.NoError(t, err)
	assert.NotNil(t, submission)
}

func TestSubmissionService_Approve_Success(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	pending := &entity.Submission{
		ID:     submissionID,
		Type:   entity.SubmissionVenue,
		Status: entity.StatusPending,
	}

	mockSubmissionRepo.EXPECT().FindSubmissionByID(ctx, submissionID).Return(pending, nil)

	var updated *entity.Submission
	mockSubmissionRepo.EXPECT().
		UpdateSubmission(ctx, mock.AnythingOfType("*entity.Submission")).
		Run(func(_ context.Context, submission *entity.Submission) {
			updated = submission
		}).
		Return(nil)
	mockNotifier.EXPECT().
		NotifyApproved(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(nil)

	err := svc.Approve(ctx, submissionID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusApproved, updated.Status)
	assert.NotNil(t, updated.ReviewedAt)
}

func TestSubmissionService_Approve_AlreadyReviewed(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	approved := &entity.Submission{
		ID:     submissionID,
		Status: entity.StatusApproved,
	}

	mockSubmissionRepo.EXPECT().FindSubmissionByID(ctx, submissionID).Return(approved, nil)

	err := svc.Approve(ctx, submissionID)
	assert.Equal(t, domainerrors.ErrInvalidTransition, err)
}

func TestSubmissionService_Approve_NotFound(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()

	mockSubmissionRepo.EXPECT().
		FindSubmissionByID(ctx, submissionID).
		Return(nil, repository.ErrSubmissionNotFound)

	err := svc.Approve(ctx, submissionID)
	assert.Equal(t, domainerrors.ErrSubmissionNotFound, err)
}

func TestSubmissionService_Approve_LostRaceIsInvalidTransition(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	pending := &entity.Submission{
		ID:     submissionID,
		Status: entity.StatusPending,
	}

	// A concurrent reviewer landed first; the store refuses the stale write
	// and no approval notification may fire.
	mockSubmissionRepo.EXPECT().FindSubmissionByID(ctx, submissionID).Return(pending, nil)
	mockSubmissionRepo.EXPECT().
		UpdateSubmission(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(repository.ErrSubmissionReviewed)

	err := svc.Approve(ctx, submissionID)
	assert.Equal(t, domainerrors.ErrInvalidTransition, err)
}

func TestSubmissionService_Approve_RowVanishedIsNotFound(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	pending := &entity.Submission{
		ID:     submissionID,
		Status: entity.StatusPending,
	}

	mockSubmissionRepo.EXPECT().FindSubmissionByID(ctx, submissionID).Return(pending, nil)
	mockSubmissionRepo.EXPECT().
		UpdateSubmission(ctx, mock.AnythingOfType("*entity.Submission")).
		Return(repository.ErrSubmissionNotFound)

	err := svc.Approve(ctx, submissionID)
	assert.Equal(t, domainerrors.ErrSubmissionNotFound, err)
}

func TestSubmissionService_Reject_RecordsReason(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	pending := &entity.Submission{
		ID:     submissionID,
		Status: entity.StatusPending,
	}

	mockSubmissionRepo.EXPECT().FindSubmissionByID(ctx, submissionID).Return(pending, nil)

	var updated *entity.Submission
	mockSubmissionRepo.EXPECT().
		UpdateSubmission(ctx, mock.AnythingOfType("*entity.Submission")).
		Run(func(_ context.Context, submission *entity.Submission) {
			updated = submission
		}).
		Return(nil)
	mockNotifier.EXPECT().
		NotifyRejected(ctx, mock.AnythingOfType("*entity.Submission"), "duplicate listing").
		Return(nil)

	err := svc.Reject(ctx, submissionID, "duplicate listing")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.StatusRejected, updated.Status)
	assert.Equal(t, "duplicate listing", updated.RejectReason)
	assert.NotNil(t, updated.ReviewedAt)
}

func TestSubmissionService_Reject_ThenApproveFails(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	submissionID := uuid.New()
	rejected := &entity.Submission{
		ID:     submissionID,
		Status: entity.StatusRejected,
	}

	mockSubmissionRepo.EXPECT().FindSubmissionByID(ctx, submissionID).Return(rejected, nil)

	err := svc.Approve(ctx, submissionID)
	assert.Equal(t, domainerrors.ErrInvalidTransition, err)
}

func TestSubmissionService_ListPending(t *testing.T) {
	mockSubmissionRepo := mockRepo.NewMockSubmissionRepository(t)
	mockNotifier := mockSvc.NewMockSubmissionNotifier(t)
	svc := newSubmissionService(mockSubmissionRepo, mockNotifier, nil)

	ctx := context.Background()
	expected := []*entity.Submission{
		{ID: uuid.New(), Status: entity.StatusPending},
		{ID: uuid.New(), Status: entity.StatusPending},
	}

	mockSubmissionRepo.EXPECT().
		ListSubmissionsByStatus(ctx, entity.StatusPending, 20, 0).
		Return(expected, nil)

	submissions, err := svc.ListPending(ctx, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, submissions)
}
