// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// VenueModel is the GORM-specific struct for the 'venues' table.
type VenueModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name                 string    `gorm:"type:varchar(120);not null"`
	Description          string    `gorm:"type:text;not null"`
	Category             string    `gorm:"type:varchar(100)"`
	City                 string    `gorm:"type:varchar(100);not null;index"`
	Address              string    `gorm:"type:text;not null"`
	Latitude             *float64  `gorm:"type:decimal(10,8)"`
	Longitude            *float64  `gorm:"type:decimal(11,8)"`
	HeroImageURL         string    `gorm:"type:text"`
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
func (VenueModel) TableName() string {
	return "venues"
}
