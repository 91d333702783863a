package repository

import (
	"context"
	"errors"

	"warrantly/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no stored session matches the hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for session persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a stored session by the SHA-256 hash of
	// the raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a stored session. Deleting a hash that
	// does not exist is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
