package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/dtos"
	"github.com/propside/backoffice/internal/models"
	"github.com/propside/backoffice/internal/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (f *fakeUserRepo) Create(context.Context, *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, uuid.UUID) (*models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUserRepo) ReplaceEntityGrants(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}
func (f *fakeUserRepo) ReplacePropertyGrants(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

const loginSecret = "login-test-secret"

func newAuthFixture(t *testing.T) (*AuthService, *models.User) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		Email:          "manager@example.com",
		PasswordHash:   string(hashed),
		Role:           models.RoleEntityManager,
		EntityIDs:      []uuid.UUID{uuid.New()},
	}
	repo := &fakeUserRepo{byEmail: map[string]*models.User{user.Email: user}}
	return NewAuthService(repo, loginSecret), user
}

func TestLogin(t *testing.T) {
	svc, user := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dtos.LoginRequest{
		Email:    user.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.UserID)
	require.Equal(t, string(models.RoleEntityManager), resp.Role)

	claims, err := auth.ValidateToken(resp.AccessToken, loginSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.EntityIDs, claims.EntityIDs)
}

func TestLoginBadPassword(t *testing.T) {
	svc, user := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dtos.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})
	requireInvalidCredentials(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dtos.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse",
	})
	requireInvalidCredentials(t, err)
}

// Unknown email and bad password must be indistinguishable.
func requireInvalidCredentials(t *testing.T, err error) {
	t.Helper()
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
	require.Equal(t, utils.ErrCodeInvalidCredentials, appErr.Code)
	require.Equal(t, "Invalid email or password", appErr.Message)
}

func TestInvoiceSweep(t *testing.T) {
	repo := &fakeInvoiceRepo{markedCount: 3}
	svc := NewInvoiceSweepService(repo)
	asOf := time.Date(2026, 8, 15, 2, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return asOf }

	require.NoError(t, svc.Run(context.Background()))
	require.NotNil(t, repo.markedAsOf)
	require.Equal(t, asOf, *repo.markedAsOf)
}
