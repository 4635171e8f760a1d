package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/core/domain"
)

// AuthService implements account registration and session management.
type AuthService interface {
	// Signup creates a non-admin account with the signup credit bonus and
	// opens a session for it.
	Signup(ctx context.Context, name, email string) (string, *domain.User, error)
	// Login opens a session. Non-admin accounts authenticate by email alone;
	// admin accounts additionally require their password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout terminates the session identified by the token id.
	Logout(ctx context.Context, tokenID string) error
}

// SessionStore tracks live sessions by token id so logout can revoke a
// token before it expires.
type SessionStore interface {
	Put(ctx context.Context, tokenID, userID string) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}
