package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warrantly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService accepts exactly one access token and rejects everything else.
type stubTokenService struct {
	validToken string
	userID     uuid.UUID
}

func (s *stubTokenService) GenerateTokens(uuid.UUID) (string, string, error) {
	return "", "", errors.New("not implemented")
}

func (s *stubTokenService) ValidateAccessToken(token string) (*service.Claims, error) {
	if token != s.validToken {
		return nil, errors.New("invalid token")
	}

	return &service.Claims{UserID: s.userID}, nil
}

func (s *stubTokenService) ValidateRefreshToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) HashToken(token string) string { return token }

func (s *stubTokenService) RefreshTokenDuration() time.Duration { return time.Hour }

func runAuthenticate(t *testing.T, authHeader string, tokenSvc service.TokenService) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/warranties", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID uuid.UUID
	var nextCalled bool
	next := func(c echo.Context) error {
		nextCalled = true
		gotUserID = UserIDFromContext(c)

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	require.NoError(t, m.Authenticate(next)(c))

	return rec, gotUserID, nextCalled
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	tokenSvc := &stubTokenService{validToken: "good-token", userID: userID}

	t.Run("valid bearer token passes through with user id", func(t *testing.T) {
		rec, gotUserID, nextCalled := runAuthenticate(t, "Bearer good-token", tokenSvc)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, nextCalled)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec, _, nextCalled := runAuthenticate(t, "", tokenSvc)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
		assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		rec, _, nextCalled := runAuthenticate(t, "Basic dXNlcjpwYXNz", tokenSvc)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		rec, _, nextCalled := runAuthenticate(t, "Bearer bad-token", tokenSvc)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
	})
}

func TestUserIDFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, uuid.Nil, UserIDFromContext(c))
}
