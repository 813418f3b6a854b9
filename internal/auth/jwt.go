package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/propside/backoffice/internal/models"
)

// TokenIssuer identifies this service in issued tokens.
const TokenIssuer = "propside-backoffice"

// Claims defines the custom claims for the JWT. The entity and property
// id sets are embedded at issue time so scope checks never need a second
// user lookup per request.
type Claims struct {
	UserID         uuid.UUID       `json:"user_id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Role           models.RoleType `json:"role"`
	EntityIDs      []uuid.UUID     `json:"entity_ids,omitempty"`
	PropertyIDs    []uuid.UUID     `json:"property_ids,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a new JWT for a back-office user.
func GenerateToken(u *models.User, secretKey string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:         u.ID,
		OrganizationID: u.OrganizationID,
		Role:           u.Role,
		EntityIDs:      u.EntityIDs,
		PropertyIDs:    u.PropertyIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken parses and validates a JWT string.
func ValidateToken(tokenString, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	},
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
