package repository

import (
	"context"

	"warrantly/internal/domain/entity"

	"github.com/google/uuid"
)

// WarrantyRepository defines the operations for warranty persistence.
type WarrantyRepository interface {
	// Create persists a new warranty record.
	Create(ctx context.Context, warranty *entity.Warranty) error

	// ListByOwner returns all warranties owned by ownerID, ordered by
	// creation time descending (most recent first). An owner with no
	// records yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Warranty, error)
}
