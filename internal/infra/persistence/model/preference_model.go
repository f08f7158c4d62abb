package model

import (
	"time"
)

// UserPreferenceModel is the GORM-specific struct for the 'user_preferences'
// table. One row per user key. The location columns are null until the user
// picks a location for the first time.
type UserPreferenceModel struct {
	UserID      string `gorm:"type:varchar(255);primary_key"`
	Label       *string
	Latitude    *float64 `gorm:"type:decimal(10,8)"`
	Longitude   *float64 `gorm:"type:decimal(11,8)"`
	RadiusMiles *int
	Source      *string  `gorm:"type:varchar(20)"`
	Favorites   []string `gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}
