package postgres

import (
	"context"

	"warrantly/internal/domain/entity"
	domainerrors "warrantly/internal/domain/errors"
	"warrantly/internal/domain/repository"
	"warrantly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// warrantyRepository implements the domain WarrantyRepository interface using GORM.
type warrantyRepository struct {
	db *gorm.DB
}

// NewWarrantyRepository is the constructor for warrantyRepository.
func NewWarrantyRepository(db *gorm.DB) repository.WarrantyRepository {
	return &warrantyRepository{db: db}
}

// Create persists a new warranty record.
func (repo *warrantyRepository) Create(ctx context.Context, warranty *entity.Warranty) error {
	warrantyM := fromWarrantyDomain(warranty)
	if warrantyM.ID == uuid.Nil {
		warrantyM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(warrantyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "warranty owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create warranty")
	}

	warranty.ID = warrantyM.ID
	warranty.CreatedAt = warrantyM.CreatedAt

	return nil
}

// ListByOwner returns all warranties owned by ownerID, most recent first.
func (repo *warrantyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Warranty, error) {
	var models []model.WarrantyModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list warranties by owner")
	}

	warranties := make([]*entity.Warranty, 0, len(models))
	for i := range models {
		warranties = append(warranties, toWarrantyDomain(&models[i]))
	}

	return warranties, nil
}

func toWarrantyDomain(m *model.WarrantyModel) *entity.Warranty {
	return &entity.Warranty{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		ProductName:    m.ProductName,
		SerialNumber:   m.SerialNumber,
		PurchaseDate:   m.PurchaseDate,
		WarrantyMonths: m.WarrantyMonths,
		ExpiryDate:     m.ExpiryDate,
		CreatedAt:      m.CreatedAt,
	}
}

func fromWarrantyDomain(w *entity.Warranty) *model.WarrantyModel {
	return &model.WarrantyModel{
		ID:             w.ID,
		OwnerID:        w.OwnerID,
		ProductName:    w.ProductName,
		SerialNumber:   w.SerialNumber,
		PurchaseDate:   w.PurchaseDate,
		WarrantyMonths: w.WarrantyMonths,
		ExpiryDate:     w.ExpiryDate,
		CreatedAt:      w.CreatedAt,
	}
}
