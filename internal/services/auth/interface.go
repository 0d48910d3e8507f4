package auth

import "context"

// Service checks logins against the fixed account table and verifies the
// role tokens it issues
type Service interface {
	// Login verifies credentials and issues a role token
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authorize verifies a role token and returns its claims
	Authorize(ctx context.Context, input *AuthorizeInput) (*Claims, error)
}
