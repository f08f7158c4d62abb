package postgres

import (
	"context"
	"testing"
	"time"

	"sensorysearch/internal/domain/entity"
	"sensorysearch/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func reviewedSubmission() *entity.Submission {
	now := time.Now()

	return &entity.Submission{
		ID:         uuid.New(),
		Type:       entity.SubmissionVenue,
		Status:     entity.StatusApproved,
		ReviewedAt: &now,
	}
}

func TestSubmissionRepository_UpdateSubmission_GuardsPendingStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	submission := reviewedSubmission()

	// The write must carry the pending predicate so a row another reviewer
	// already moved to a terminal status is never overwritten.
	mock.ExpectExec(`UPDATE "submissions" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateSubmission(context.Background(), submission)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_UpdateSubmission_LostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	submission := reviewedSubmission()

	mock.ExpectExec(`UPDATE "submissions" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "id" FROM "submissions" WHERE id = \$\d+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(submission.ID.String()))

	err := repo.UpdateSubmission(context.Background(), submission)
	require.ErrorIs(t, err, repository.ErrSubmissionReviewed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepository_UpdateSubmission_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSubmissionRepository(db)

	submission := reviewedSubmission()

	mock.ExpectExec(`UPDATE "submissions" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "id" FROM "submissions" WHERE id = \$\d+`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.UpdateSubmission(context.Background(), submission)
	require.ErrorIs(t, err, repository.ErrSubmissionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
