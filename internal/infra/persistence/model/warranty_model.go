package model

import (
	"time"

	"github.com/google/uuid"
)

// WarrantyModel mirrors the 'warranties' table. OwnerID is indexed because
// listing is always owner-scoped. SerialNumber is nullable; purchase and
// expiry are date columns, time of day is never stored.
type WarrantyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName    string    `gorm:"type:varchar(100);not null"`
	SerialNumber   *string   `gorm:"type:varchar(255)"`
	PurchaseDate   time.Time `gorm:"type:date;not null"`
	WarrantyMonths int       `gorm:"not null"`
	ExpiryDate     time.Time `gorm:"type:date;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (WarrantyModel) TableName() string {
	return "warranties"
}
