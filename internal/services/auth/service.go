package auth

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/sportsmeet/internal/common/clock"
	"github.com/KirkDiggler/sportsmeet/internal/common/uuid"
	"github.com/KirkDiggler/sportsmeet/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	email string
	hash  []byte
	role  models.Role
	team  string
}

// service implements the Service interface
type service struct {
	accounts  map[string]*account
	dummyHash []byte
	secret    []byte
	tokenTTL  time.Duration
	clock     clock.Clock
	uuid      uuid.UUID
}

// New hashes the account table and creates the auth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Secret) == 0 {
		return nil, ErrEmptySecret
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	accounts := make(map[string]*account, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", a.Email, err)
		}
		email := normalizeEmail(a.Email)
		accounts[email] = &account{
			email: email,
			hash:  hash,
			role:  a.Role,
			team:  a.Team,
		}
	}

	// Compared against for unknown emails so every login costs one bcrypt check
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("unknown account"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	return &service{
		accounts:  accounts,
		dummyHash: dummyHash,
		secret:    cfg.Secret,
		tokenTTL:  ttl,
		clock:     cfg.Clock,
		uuid:      cfg.UUID,
	}, nil
}

// Login verifies credentials and issues a signed role token
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	a, ok := s.accounts[normalizeEmail(input.Email)]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(input.Password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(input.Password)); err != nil {
		log.Printf("Failed login for %s", a.email)
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := Claims{
		Role: a.role,
		Team: a.team,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.uuid.NewUUID(),
			Subject:   a.email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginOutput{
		Role:      a.role,
		Team:      a.team,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authorize verifies a token's signature and expiry
func (s *service) Authorize(ctx context.Context, input *AuthorizeInput) (*Claims, error) {
	if input == nil || input.Token == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(input.Token, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	switch claims.Role {
	case models.RoleAdmin, models.RoleTeamLeader:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
