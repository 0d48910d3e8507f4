package auth

import "github.com/KirkDiggler/sportsmeet/internal/common/errs"

// AuthError is returned for construction problems
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   AuthError = "config cannot be nil"
	ErrEmptySecret AuthError = "token secret cannot be empty"
	ErrNilClock    AuthError = "clock cannot be nil"
	ErrNilUUID     AuthError = "uuid generator cannot be nil"
)

var (
	ErrInvalidCredentials = errs.Unauthorized("invalid email or password")
	ErrInvalidToken       = errs.Unauthorized("invalid or expired token")
)
