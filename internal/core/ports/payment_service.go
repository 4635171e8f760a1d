package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/core/domain"
)

// SubmitPaymentInput carries a purchase submission from the transport layer.
// UserID and UserName come from the authenticated session, never the payload.
type SubmitPaymentInput struct {
	UserID   string
	UserName string
	Plan     string
	Amount   int
	UTRCode  string
	Date     string
	Note     string
}

// PaymentService drives the payment request workflow: submission by users,
// approval or rejection by admins.
type PaymentService interface {
	Submit(ctx context.Context, input SubmitPaymentInput) (*domain.PaymentRequest, error)
	// Approve grants the plan's credits to the submitter and marks the
	// request approved. Exactly-once: a non-pending request is rejected with
	// ErrInvalidTransition and no credits move.
	Approve(ctx context.Context, id string) (*domain.PaymentRequest, error)
	// Reject marks the request rejected with no credit side effects.
	Reject(ctx context.Context, id string) (*domain.PaymentRequest, error)
	// List returns requests newest first; status "" or "all" disables filtering.
	List(ctx context.Context, status string) ([]*domain.PaymentRequest, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.PaymentRequest, error)
}
