// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"warrantly/config"
	deliverycontext "warrantly/internal/delivery/context"
	"warrantly/internal/domain/entity"
	domainerrors "warrantly/internal/domain/errors"
	"warrantly/internal/domain/repository"
	"warrantly/internal/domain/service"
	"warrantly/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

var credentialValidator = validator.New()

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all
// dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise the service's own.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail trims and lowercases an email so uniqueness and lookup are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateCredentials checks registration input shape. Range and format
// violations are reported per field, mirroring the warranty validation contract.
func validateCredentials(email, password string) map[string]string {
	fieldErrors := make(map[string]string)

	if err := credentialValidator.Var(email, "required,email"); err != nil {
		if email == "" {
			fieldErrors["email"] = "Email is required"
		} else {
			fieldErrors["email"] = "Email must be a valid email address"
		}
	}

	switch {
	case password == "":
		fieldErrors["password"] = "Password is required"
	case len(password) < minPasswordLength:
		fieldErrors["password"] = "Password must be at least 8 characters long"
	}

	return fieldErrors
}

// Register creates a new account with a bcrypt-hashed password.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil {
		input = &usecase.RegisterInput{}
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if fieldErrors := validateCredentials(email, input.Password); len(fieldErrors) > 0 {
		srv.log(ctx).Warn("Registration input rejected", slog.String("email", email))

		return nil, domainerrors.NewValidationError(fieldErrors)
	}

	// bcrypt is CPU-bound, hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The pre-check gives a clean conflict for the common case; the
		// unique index on email settles races between concurrent registrations.
		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check for existing email")
		}

		newUser := &entity.User{
			Email:        email,
			PasswordHash: hashedPassword,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and issues a token pair. An unknown email and a
// wrong password fail identically so callers cannot probe for accounts.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		input = &usecase.LoginInput{}
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh issues a new access token for a valid, stored refresh token.
// The refresh token itself stays unchanged.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input == nil {
		input = &usecase.RefreshInput{}
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token rejected")
	}

	session, err := srv.refreshTokenRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "no stored session for token")
		}

		return nil, errors.Wrap(err, "failed to load session for refresh")
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session expired")
	}

	// The account may have been removed since the session was issued.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for refresh")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token during refresh")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Any("userID", user.ID))

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Logout ends the session belonging to the presented refresh token.
// Logging out an unknown token succeeds; the end state is the same.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input == nil || input.RefreshToken == "" {
		return nil
	}

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete session during logout")
	}

	return nil
}
