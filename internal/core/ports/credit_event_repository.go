package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/core/domain"
)

// CreditEventRepository persists the credit audit trail.
type CreditEventRepository interface {
	Insert(ctx context.Context, event *domain.CreditEvent) error
	// ListByUser returns up to limit events for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.CreditEvent, error)
}
