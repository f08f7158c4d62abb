package postgres

import (
	"context"

	"sensorysearch/internal/domain/entity"
	domainerrors "sensorysearch/internal/domain/errors"
	"sensorysearch/internal/domain/repository"
	"sensorysearch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// submissionRepository implements the repository.SubmissionRepository interface.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

// CreateSubmission persists a new pending submission.
func (repo *submissionRepository) CreateSubmission(ctx context.Context, submission *entity.Submission) error {
	row := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("submission already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required submission information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	return nil
}

// FindSubmissionByID retrieves a submission by its unique ID.
func (repo *submissionRepository) FindSubmissionByID(ctx context.Context, id uuid.UUID) (*entity.Submission, error) {
	var row model.SubmissionModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by ID")
	}

	return toSubmissionDomain(&row), nil
}

// UpdateSubmission applies the review transition as a compare-and-swap on
// the pending status, so two concurrent reviews cannot both land.
func (repo *submissionRepository) UpdateSubmission(ctx context.Context, submission *entity.Submission) error {
	row := fromSubmissionDomain(submission)

	result := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("id = ? AND status = ?", row.ID, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":        row.Status,
			"reject_reason": row.RejectReason,
			"reviewed_at":   row.ReviewedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update submission")
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or another reviewer already landed a
		// terminal status; distinguish so callers can answer 404 vs 409.
		var existing model.SubmissionModel
		if err := repo.db.WithContext(ctx).
			Select("id").
			Where("id = ?", row.ID).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrSubmissionNotFound
			}

			return errors.Wrap(err, "failed to check submission status")
		}

		return repository.ErrSubmissionReviewed
	}

	return nil
}

// ListSubmissionsByStatus retrieves submissions in the given status, oldest
// first so the moderation queue is processed in arrival order.
func (repo *submissionRepository) ListSubmissionsByStatus(ctx context.Context, status entity.SubmissionStatus, limit, offset int) ([]*entity.Submission, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("submitted_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*model.SubmissionModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list submissions by status")
	}

	submissions := make([]*entity.Submission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, toSubmissionDomain(row))
	}

	return submissions, nil
}

// --- Mappers ---

func fromSubmissionDomain(submission *entity.Submission) *model.SubmissionModel {
	return &model.SubmissionModel{
		ID:             submission.ID,
		Type:           string(submission.Type),
		Status:         string(submission.Status),
		OrganizerEmail: submission.OrganizerEmail,
		Payload:        submission.Payload,
		RejectReason:   submission.RejectReason,
		SubmittedAt:    submission.SubmittedAt,
		ReviewedAt:     submission.ReviewedAt,
	}
}

func toSubmissionDomain(row *model.SubmissionModel) *entity.Submission {
	return &entity.Submission{
		ID:             row.ID,
		Type:           entity.SubmissionType(row.Type),
		Status:         entity.SubmissionStatus(row.Status),
		OrganizerEmail: row.OrganizerEmail,
		Payload:        row.Payload,
		RejectReason:   row.RejectReason,
		SubmittedAt:    row.SubmittedAt,
		ReviewedAt:     row.ReviewedAt,
	}
}
