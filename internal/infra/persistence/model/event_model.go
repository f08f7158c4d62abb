package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title                string    `gorm:"type:varchar(120);not null"`
	Description          string    `gorm:"type:text;not null"`
	VenueName            string    `gorm:"type:varchar(120)"`
	City                 string    `gorm:"type:varchar(100);not null;index"`
	Address              string    `gorm:"type:text;not null"`
	Latitude             *float64  `gorm:"type:decimal(10,8)"`
	Longitude            *float64  `gorm:"type:decimal(11,8)"`
	EventDate            time.Time `gorm:"not null;index"`
	MinAge               int       `gorm:"not null;default:0"`
	MaxAge               int       `gorm:"not null;default:99"`
	Images               []string  `gorm:"serializer:json;type:jsonb"`
	NoiseLevel           string    `gorm:"type:varchar(20)"`
	Lighting             string    `gorm:"type:varchar(20)"`
	CrowdDensity         string    `gorm:"type:varchar(20)"`
	HasQuietSpace        bool      `gorm:"not null;default:false"`
	WheelchairAccessible bool      `gorm:"not null;default:false"`
	SensoryFriendlyHours bool      `gorm:"not null;default:false"`
	Tags                 []string  `gorm:"serializer:json;type:jsonb"`
	IsActive             bool      `gorm:"not null;default:true;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
