package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/core/domain"
)

// PaymentRepository defines persistence operations for payment requests.
// Listings are ordered newest first, matching submission ordering.
type PaymentRepository interface {
	Insert(ctx context.Context, request *domain.PaymentRequest) error
	FindByID(ctx context.Context, id string) (*domain.PaymentRequest, error)
	// UpdateStatus sets the status of the request with the given id.
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	// List returns requests filtered by status; an empty status returns all.
	List(ctx context.Context, status domain.PaymentStatus) ([]*domain.PaymentRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.PaymentRequest, error)
}
