// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token issued for the user. The token is
// opaque; the delivery layer carries it in a cookie.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new non-admin account. Username and email must be
	// globally unique; violations surface as conflict errors.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a session. Unknown usernames and
	// wrong passwords fail with the same error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout destroys the session bound to the token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
}
