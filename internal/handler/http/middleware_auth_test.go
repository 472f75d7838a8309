package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmelnikv/noteshare/internal/service"
	"github.com/vmelnikv/noteshare/internal/utils"
	"github.com/vmelnikv/noteshare/models"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing token part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func newAuthMiddlewareHandler(t *testing.T, parseFn func(ctx context.Context, tokenString string) (models.Token, error)) http.Handler {
	t.Helper()

	h := newTestHandler(t, &mockAuthService{parseTokenFn: parseFn}, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok, "user ID must be present after auth middleware")
		assert.Equal(t, int64(42), userID)
		w.WriteHeader(http.StatusOK)
	})

	return h.auth(next)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	handler := newAuthMiddlewareHandler(t, func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: 42}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes/1", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler := newAuthMiddlewareHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/1", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	handler := newAuthMiddlewareHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/1", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	handler := newAuthMiddlewareHandler(t, func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes/1", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenIsExpiredOrInvalid.Error())
}
