package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateWarrantyInput defines the user-supplied fields of a new warranty.
// PurchaseDate is the raw YYYY-MM-DD string from the client; the lifecycle
// engine owns parsing and range validation.
type CreateWarrantyInput struct {
	ProductName    string  `json:"productName"`
	SerialNumber   *string `json:"serialNumber"`
	PurchaseDate   string  `json:"purchaseDate"`
	WarrantyMonths int     `json:"warrantyMonths"`
}

// WarrantyOutput is the client-facing projection of a warranty record,
// including the status derived at response time.
type WarrantyOutput struct {
	ID             uuid.UUID `json:"id"`
	ProductName    string    `json:"productName"`
	SerialNumber   *string   `json:"serialNumber"`
	PurchaseDate   string    `json:"purchaseDate"`
	WarrantyMonths int       `json:"warrantyMonths"`
	ExpiryDate     string    `json:"expiryDate"`
	CreatedAt      time.Time `json:"createdAt"`
	Status         string    `json:"status"`
	DaysRemaining  int       `json:"daysRemaining"`
	StatusMessage  string    `json:"statusMessage"`
}

// WarrantyUsecase defines the interface for warranty lifecycle operations.
// Every operation is owner-scoped: ownerID must be a resolved user id, a nil
// id means the caller's identity could not be established.
type WarrantyUsecase interface {
	CreateWarranty(ctx context.Context, ownerID uuid.UUID, input *CreateWarrantyInput) (*WarrantyOutput, error)
	ListWarranties(ctx context.Context, ownerID uuid.UUID) ([]*WarrantyOutput, error)
}
