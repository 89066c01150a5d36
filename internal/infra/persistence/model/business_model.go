package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
type BusinessModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CityID         uuid.UUID `gorm:"type:uuid;not null;index:idx_businesses_on_city"`
	Name           string    `gorm:"type:varchar(255);not null;index:idx_businesses_on_name"`
	Slug           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_businesses_on_slug"`
	Description    string    `gorm:"type:text"`
	Address        string    `gorm:"type:text"`
	CityName       string    `gorm:"type:varchar(255)"`
	State          string    `gorm:"type:varchar(255)"`
	Country        string    `gorm:"type:varchar(255)"`
	Zipcode        string    `gorm:"type:varchar(32)"`
	Active         bool      `gorm:"not null;default:true"`
	Blocked        bool      `gorm:"not null;default:false"`
	BusinessStatus string    `gorm:"type:varchar(64);not null;default:'pending'"`
	Latitude       string    `gorm:"type:varchar(32)"`
	Longitude      string    `gorm:"type:varchar(32)"`
	LogoURL        string    `gorm:"type:text"`
	MarkerURL      string    `gorm:"type:text"`
	ClaimedFee     int64     `gorm:"not null;default:0"`
	ExternalID     string    `gorm:"type:varchar(255);index:idx_businesses_on_external_id"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
