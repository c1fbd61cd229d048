package service

import "context"

// SessionStore defines the interface for the identity session store: the one
// piece of in-memory shared state the application keeps across requests.
// A session binds an opaque token (carried in a cookie) to a user ID.
type SessionStore interface {
	// Create issues a new session token for the user.
	Create(ctx context.Context, userID uint) (token string, err error)

	// Resolve returns the user ID bound to the token. ok is false when the
	// token is unknown or the session has expired.
	Resolve(ctx context.Context, token string) (userID uint, ok bool)

	// Destroy removes the session. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string)
}
