package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/utils"
)

const testSecret = "unit-test-secret"

func testUser() *models.User {
	return &models.User{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "manager@example.com",
		Role:           models.RoleEntityManager,
		EntityIDs:      []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	u := testUser()

	token, err := GenerateToken(u, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, u.OrganizationID, claims.OrganizationID)
	require.Equal(t, models.RoleEntityManager, claims.Role)
	require.Equal(t, u.EntityIDs, claims.EntityIDs)
	require.Equal(t, TokenIssuer, claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "some-other-secret")
	require.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	require.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	claims := &Claims{
		UserID: uuid.New(),
		Role:   models.RoleOrgAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	require.Error(t, err)
}

func TestMiddlewareStoresAuthContext(t *testing.T) {
	u := testUser()
	token, err := GenerateToken(u, testSecret, time.Hour)
	require.NoError(t, err)

	var got *Context
	handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromRequest(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	require.Equal(t, u.ID, got.UserID)
	require.Equal(t, u.Role, got.Role)
	require.Equal(t, u.EntityIDs, got.EntityIDs)
}

func TestMiddlewareMissingHeader(t *testing.T) {
	handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spaces", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareExpiredTokenCode(t *testing.T) {
	token, err := GenerateToken(testUser(), testSecret, -time.Minute)
	require.NoError(t, err)

	handler := Middleware(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/spaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, utils.ErrCodeTokenExpired, body.Code)
}
