package impl

import (
	"context"
	"testing"
	"time"

	"warrantly/internal/domain/entity"
	domainerrors "warrantly/internal/domain/errors"
	"warrantly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWarrantyService(t *testing.T, today time.Time) (usecase.WarrantyUsecase, *MockWarrantyRepository) {
	t.Helper()

	warrantyRepo := new(MockWarrantyRepository)
	svc := NewWarrantyService(WarrantyServiceParams{
		WarrantyRepo: warrantyRepo,
		Logger:       discardLogger(),
	})
	svc.(*warrantyService).now = func() time.Time { return today }

	return svc, warrantyRepo
}

func TestWarrantyService_CreateWarranty(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	ownerID := uuid.New()

	t.Run("derives expiry and status from the input", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		warrantyRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		output, err := svc.CreateWarranty(context.Background(), ownerID, &usecase.CreateWarrantyInput{
			ProductName:    "  Espresso Machine  ",
			PurchaseDate:   "2024-02-10",
			WarrantyMonths: 24,
		})

		require.NoError(t, err)
		assert.Equal(t, "Espresso Machine", output.ProductName)
		assert.Equal(t, "2024-02-10", output.PurchaseDate)
		assert.Equal(t, "2026-02-10", output.ExpiryDate)
		assert.Equal(t, "expiring", output.Status)
		assert.Equal(t, 26, output.DaysRemaining)
		assert.Equal(t, "Expires in 26 days", output.StatusMessage)
		assert.Nil(t, output.SerialNumber)
		warrantyRepo.AssertExpectations(t)
	})

	t.Run("clamps the expiry day to the end of the month", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		var stored *entity.Warranty
		warrantyRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*entity.Warranty)
			}).
			Return(nil).Once()

		output, err := svc.CreateWarranty(context.Background(), ownerID, &usecase.CreateWarrantyInput{
			ProductName:    "Blender",
			PurchaseDate:   "2024-01-31",
			WarrantyMonths: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", output.ExpiryDate)
		require.NotNil(t, stored)
		assert.Equal(t, ownerID, stored.OwnerID)
	})

	t.Run("keeps a non-empty serial number", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		warrantyRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		serial := "  SN-12345  "
		output, err := svc.CreateWarranty(context.Background(), ownerID, &usecase.CreateWarrantyInput{
			ProductName:    "Laptop",
			SerialNumber:   &serial,
			PurchaseDate:   "2026-01-01",
			WarrantyMonths: 12,
		})

		require.NoError(t, err)
		require.NotNil(t, output.SerialNumber)
		assert.Equal(t, "SN-12345", *output.SerialNumber)
	})

	t.Run("blank serial number becomes absent", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		warrantyRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		serial := "   "
		output, err := svc.CreateWarranty(context.Background(), ownerID, &usecase.CreateWarrantyInput{
			ProductName:    "Laptop",
			SerialNumber:   &serial,
			PurchaseDate:   "2026-01-01",
			WarrantyMonths: 12,
		})

		require.NoError(t, err)
		assert.Nil(t, output.SerialNumber)
	})

	t.Run("rejects invalid input with per-field messages", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		output, err := svc.CreateWarranty(context.Background(), ownerID, &usecase.CreateWarrantyInput{
			ProductName:    "X",
			PurchaseDate:   "2026-06-01",
			WarrantyMonths: 0,
		})

		require.Error(t, err)
		assert.Nil(t, output)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Len(t, validationErr.Fields(), 3)
		warrantyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("requires an authenticated owner", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestWarrantyService(t, today)

		_, err := svc.CreateWarranty(context.Background(), uuid.Nil, &usecase.CreateWarrantyInput{
			ProductName:    "Laptop",
			PurchaseDate:   "2026-01-01",
			WarrantyMonths: 12,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("nil input fails validation", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		output, err := svc.CreateWarranty(context.Background(), ownerID, nil)

		require.Error(t, err)
		assert.Nil(t, output)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Len(t, validationErr.Fields(), 3)
		warrantyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWarrantyService_ListWarranties(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	ownerID := uuid.New()

	t.Run("maps records preserving repository order", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		newer := &entity.Warranty{
			ID:             uuid.New(),
			OwnerID:        ownerID,
			ProductName:    "Phone",
			PurchaseDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			WarrantyMonths: 12,
			ExpiryDate:     time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:      today.Add(-time.Hour),
		}
		older := &entity.Warranty{
			ID:             uuid.New(),
			OwnerID:        ownerID,
			ProductName:    "Toaster",
			PurchaseDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			WarrantyMonths: 12,
			ExpiryDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:      today.Add(-48 * time.Hour),
		}
		warrantyRepo.On("ListByOwner", mock.Anything, ownerID).
			Return([]*entity.Warranty{newer, older}, nil).Once()

		outputs, err := svc.ListWarranties(context.Background(), ownerID)

		require.NoError(t, err)
		require.Len(t, outputs, 2)
		assert.Equal(t, "Phone", outputs[0].ProductName)
		assert.Equal(t, "active", outputs[0].Status)
		assert.Equal(t, "Toaster", outputs[1].ProductName)
		assert.Equal(t, "expired", outputs[1].Status)
		assert.Equal(t, "Expired 745 days ago", outputs[1].StatusMessage)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		t.Parallel()

		svc, warrantyRepo := newTestWarrantyService(t, today)

		warrantyRepo.On("ListByOwner", mock.Anything, ownerID).
			Return([]*entity.Warranty{}, nil).Once()

		outputs, err := svc.ListWarranties(context.Background(), ownerID)

		require.NoError(t, err)
		assert.NotNil(t, outputs)
		assert.Empty(t, outputs)
	})

	t.Run("requires an authenticated owner", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestWarrantyService(t, today)

		_, err := svc.ListWarranties(context.Background(), uuid.Nil)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
