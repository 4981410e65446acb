package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func identityEcho() (http.Handler, *string, *bool) {
	var gotUserID string
	var gotOK bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h, &gotUserID, &gotOK
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, _, ok := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	AuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *ok)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, _, _ := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", "user1"))
	rec := httptest.NewRecorder()
	AuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareResolvesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, userID, ok := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s3cret", "user1"))
	rec := httptest.NewRecorder()
	AuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *ok)
	assert.Equal(t, "user1", *userID)
}

func TestAuthMiddlewareAcceptsQueryToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, userID, _ := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/?token="+signToken(t, "s3cret", "user1"), nil)
	rec := httptest.NewRecorder()
	AuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user1", *userID)
}

func TestOptionalAuthMiddlewareAllowsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, _, ok := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	OptionalAuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, *ok)
}

func TestOptionalAuthMiddlewareTreatsInvalidTokenAsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, _, ok := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	OptionalAuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, *ok)
}

func TestOptionalAuthMiddlewareResolvesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	inner, userID, ok := identityEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "s3cret", "user1"))
	rec := httptest.NewRecorder()
	OptionalAuthMiddleware(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *ok)
	assert.Equal(t, "user1", *userID)
}
