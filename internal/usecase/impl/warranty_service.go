package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "warrantly/internal/delivery/context"
	"warrantly/internal/domain/entity"
	domainerrors "warrantly/internal/domain/errors"
	"warrantly/internal/domain/repository"
	"warrantly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// warrantyService implements the WarrantyUsecase interface.
type warrantyService struct {
	warrantyRepo repository.WarrantyRepository
	logger       *slog.Logger

	// now is swapped out in tests to pin the status computation date.
	now func() time.Time
}

// WarrantyServiceParams holds dependencies for warrantyService, injected by Fx.
type WarrantyServiceParams struct {
	fx.In

	WarrantyRepo repository.WarrantyRepository
	Logger       *slog.Logger
}

// NewWarrantyService is the constructor for warrantyService.
func NewWarrantyService(params WarrantyServiceParams) usecase.WarrantyUsecase {
	return &warrantyService{
		warrantyRepo: params.WarrantyRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *warrantyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateWarranty validates the input, derives the expiry date and stores the
// record for the given owner.
func (srv *warrantyService) CreateWarranty(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateWarrantyInput) (*usecase.WarrantyOutput, error) {
	if ownerID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "create warranty without owner")
	}
	if input == nil {
		input = &usecase.CreateWarrantyInput{}
	}

	today := srv.now()

	purchaseDate, fieldErrors := entity.ValidateWarrantyInput(input.ProductName, input.PurchaseDate, input.WarrantyMonths, today)
	if len(fieldErrors) > 0 {
		srv.log(ctx).Warn("Warranty input rejected", slog.Any("ownerID", ownerID))

		return nil, domainerrors.NewValidationError(fieldErrors)
	}

	var serialNumber *string
	if input.SerialNumber != nil {
		if trimmed := strings.TrimSpace(*input.SerialNumber); trimmed != "" {
			serialNumber = &trimmed
		}
	}

	warranty := &entity.Warranty{
		OwnerID:        ownerID,
		ProductName:    strings.TrimSpace(input.ProductName),
		SerialNumber:   serialNumber,
		PurchaseDate:   purchaseDate,
		WarrantyMonths: input.WarrantyMonths,
		ExpiryDate:     entity.ComputeExpiry(purchaseDate, input.WarrantyMonths),
	}

	if err := srv.warrantyRepo.Create(ctx, warranty); err != nil {
		srv.log(ctx).Error("Failed to create warranty", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create warranty")
	}

	srv.log(ctx).Debug("Warranty created",
		slog.Any("warrantyID", warranty.ID),
		slog.String("expiryDate", warranty.ExpiryDate.Format(time.DateOnly)))

	return srv.toOutput(warranty, today), nil
}

// ListWarranties returns all warranties of the owner, newest first, with
// status derived against the current date.
func (srv *warrantyService) ListWarranties(ctx context.Context, ownerID uuid.UUID) ([]*usecase.WarrantyOutput, error) {
	if ownerID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "list warranties without owner")
	}

	warranties, err := srv.warrantyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warranties")
	}

	today := srv.now()
	outputs := make([]*usecase.WarrantyOutput, 0, len(warranties))
	for _, warranty := range warranties {
		outputs = append(outputs, srv.toOutput(warranty, today))
	}

	return outputs, nil
}

func (srv *warrantyService) toOutput(warranty *entity.Warranty, today time.Time) *usecase.WarrantyOutput {
	status := warranty.StatusAt(today)

	return &usecase.WarrantyOutput{
		ID:             warranty.ID,
		ProductName:    warranty.ProductName,
		SerialNumber:   warranty.SerialNumber,
		PurchaseDate:   warranty.PurchaseDate.Format(time.DateOnly),
		WarrantyMonths: warranty.WarrantyMonths,
		ExpiryDate:     warranty.ExpiryDate.Format(time.DateOnly),
		CreatedAt:      warranty.CreatedAt,
		Status:         string(status.Status),
		DaysRemaining:  status.DaysRemaining,
		StatusMessage:  status.Message,
	}
}
