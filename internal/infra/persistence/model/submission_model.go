package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionModel is the GORM-specific struct for the 'submissions' table.
// Rows are never deleted; rejected submissions are retained for audit.
type SubmissionModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key"`
	Type           string         `gorm:"type:varchar(40);not null"`
	Status         string         `gorm:"type:varchar(20);not null;index"`
	OrganizerEmail string         `gorm:"type:varchar(255);not null"`
	Payload        map[string]any `gorm:"serializer:json;type:jsonb;not null"`
	RejectReason   string         `gorm:"type:text"`
	SubmittedAt    time.Time      `gorm:"not null;index"`
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}
