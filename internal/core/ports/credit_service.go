package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/core/domain"
)

// CreditService is the ledger surface: balance reads, debits, and the admin
// override. All mutations go through the canonical user table; there is no
// second copy of the balance to keep in sync.
type CreditService interface {
	Balance(ctx context.Context, userID string) (*domain.User, error)
	// Spend debits amount from the user's balance. Unlimited accounts are
	// not debited. Returns the user after the debit.
	Spend(ctx context.Context, userID string, amount int) (*domain.User, error)
	// AdminSetCredits overwrites a user's balance, unlimited convention and
	// all. Returns the updated user.
	AdminSetCredits(ctx context.Context, userID string, credits int) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.CreditEvent, error)
}

// CreditEventPublisher hands ledger events to the async audit pipeline.
// Publishing never blocks the originating request beyond queue capacity.
type CreditEventPublisher interface {
	Publish(event domain.CreditEvent)
}

// AuditService processes published ledger events.
type AuditService interface {
	Process(ctx context.Context, event domain.CreditEvent) error
}
