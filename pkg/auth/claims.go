package auth

import (
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID   uuid.UUID
	Username string
	Role     enums.Role
	JTI      string
}

// AccessTokenClaims represents the typed JWT issued to backoffice clients.
type AccessTokenClaims struct {
	UserID   uuid.UUID  `json:"user_id"`
	Username string     `json:"username"`
	Role     enums.Role `json:"role"`
	jwt.RegisteredClaims
}
