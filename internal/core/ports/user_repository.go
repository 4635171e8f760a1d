package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/core/domain"
)

// UserRepository is the persistence port for accounts. Implementations must
// treat email as a case-insensitive unique key.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateCredits overwrites the credit balance of the user with the given id.
	UpdateCredits(ctx context.Context, id string, credits int) error
	// List returns all users ordered by creation time (oldest first).
	List(ctx context.Context) ([]*domain.User, error)
}
