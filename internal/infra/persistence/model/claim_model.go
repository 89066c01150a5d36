package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimCartItemModel is the GORM-specific struct for the 'claim_cart_items' table.
// The partial unique index on (user_id, business_id) backs the duplicate-claim
// guard for pending items.
type ClaimCartItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_claim_items_on_user_business"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_claim_items_on_user_business"`
	BatchID    string    `gorm:"type:varchar(64);not null"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"type:varchar(32);not null;default:'pending'"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimCartItemModel) TableName() string {
	return "claim_cart_items"
}

// ClaimBatchModel is the GORM-specific struct for the 'claim_batches' table,
// one row per user holding the last minted batch id.
type ClaimBatchModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	BatchID   string    `gorm:"type:varchar(64);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimBatchModel) TableName() string {
	return "claim_batches"
}
