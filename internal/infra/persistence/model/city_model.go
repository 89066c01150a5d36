package model

import (
	"time"

	"github.com/google/uuid"
)

// CityModel is the GORM-specific struct for the 'cities' table.
// Coordinates stay as text on purpose: upstream imports deliver them unvalidated
// and the mappable check happens at marker construction, not at the database.
type CityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null;index:idx_cities_on_name"`
	Slug         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cities_on_slug"`
	Featured     bool      `gorm:"not null;default:false"`
	Latitude     string    `gorm:"type:varchar(32)"`
	Longitude    string    `gorm:"type:varchar(32)"`
	DisplayOrder int       `gorm:"not null;default:0;index:idx_cities_on_display_order"`
	PictureURL   string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// BusinessCount is populated by a subquery on list reads, never written.
	BusinessCount int `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
