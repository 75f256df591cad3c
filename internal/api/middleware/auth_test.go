package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/tokens"
)

func authedHandler(t *testing.T) (http.Handler, *domain.Identity) {
	t.Helper()

	captured := &domain.Identity{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		*captured = identity
		w.WriteHeader(http.StatusOK)
	})

	manager := tokens.NewManager("test-secret", time.Hour)
	return Auth(manager)(next), captured
}

func TestAuth_ValidToken(t *testing.T) {
	handler, captured := authedHandler(t)

	manager := tokens.NewManager("test-secret", time.Hour)
	token, err := manager.Issue(42, string(domain.RoleAdmin))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), captured.UserID)
	assert.Equal(t, domain.RoleAdmin, captured.Role)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, _ := authedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NotBearer(t *testing.T) {
	handler, _ := authedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	handler, _ := authedHandler(t)

	other := tokens.NewManager("other-secret", time.Hour)
	token, err := other.Issue(42, string(domain.RoleCustomer))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
