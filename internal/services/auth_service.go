package services

import (
	"context"
	"net/http"

	"github.com/propside/backoffice/internal/auth"
	"github.com/propside/backoffice/internal/constants"
	"github.com/propside/backoffice/internal/dtos"
	"github.com/propside/backoffice/internal/repositories"
	"github.com/propside/backoffice/internal/utils"
)

// AuthService issues access tokens for back-office users. The token
// carries the full scope (role, organization, entity/property grants) so
// later requests never re-derive it.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret}
}

func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*dtos.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}
	// Same failure for unknown email and bad password.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, &utils.AppError{
			StatusCode: http.StatusUnauthorized,
			Code:       utils.ErrCodeInvalidCredentials,
			Message:    "Invalid email or password",
		}
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, constants.AccessTokenTTL)
	if err != nil {
		return nil, utils.NewInternalError(err)
	}

	return &dtos.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(constants.AccessTokenTTL.Seconds()),
		UserID:      user.ID,
		Role:        string(user.Role),
	}, nil
}
