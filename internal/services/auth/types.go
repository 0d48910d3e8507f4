package auth

import (
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/catalog"
	"github.com/KirkDiggler/sportsmeet/internal/common/clock"
	"github.com/KirkDiggler/sportsmeet/internal/common/uuid"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid
const DefaultTokenTTL = 12 * time.Hour

// Config holds configuration for the auth service
type Config struct {
	// Accounts is the login table; passwords are plain text and hashed by New
	Accounts []catalog.Account

	// Secret signs issued tokens
	Secret []byte

	// TokenTTL defaults to DefaultTokenTTL
	TokenTTL time.Duration

	// BcryptCost defaults to bcrypt.DefaultCost
	BcryptCost int

	Clock clock.Clock
	UUID  uuid.UUID
}

// Claims are carried by an issued token
type Claims struct {
	Role models.Role `json:"role"`
	Team string      `json:"team,omitempty"`
	jwt.RegisteredClaims
}

// LoginInput contains the submitted credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput contains the account's role and its token
type LoginOutput struct {
	Role      models.Role
	Team      string
	Token     string
	ExpiresAt time.Time
}

// AuthorizeInput contains a token to verify
type AuthorizeInput struct {
	Token string
}
