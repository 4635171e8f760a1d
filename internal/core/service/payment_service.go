package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// PaymentService drives the payment request workflow. Requests move
// pending → approved or pending → rejected exactly once; approval is the
// only path that grants credits.
type PaymentService struct {
	payments ports.PaymentRepository
	users    ports.UserRepository
	audit    ports.CreditEventPublisher
	log      zerolog.Logger
}

func NewPaymentService(
	payments ports.PaymentRepository,
	users ports.UserRepository,
	audit ports.CreditEventPublisher,
	log zerolog.Logger,
) *PaymentService {
	return &PaymentService{payments: payments, users: users, audit: audit, log: log}
}

// Submit records a new pending payment request. Identity fields are stamped
// from the session, never trusted from the payload.
func (s *PaymentService) Submit(ctx context.Context, input ports.SubmitPaymentInput) (*domain.PaymentRequest, error) {
	request := &domain.PaymentRequest{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		UserName:  input.UserName,
		Plan:      input.Plan,
		Amount:    input.Amount,
		UTRCode:   input.UTRCode,
		Date:      input.Date,
		Status:    domain.PaymentPending,
		Note:      input.Note,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.payments.Insert(ctx, request); err != nil {
		return nil, fmt.Errorf("submit payment: %w", err)
	}

	s.log.Info().
		Str("payment_id", request.ID).
		Str("user_id", request.UserID).
		Str("plan", request.Plan).
		Msg("payment request submitted")

	return request, nil
}

// Approve grants the plan's credits to the submitter and marks the request
// approved. A numbered plan adds its credits to the current balance; an
// unlimited plan overwrites the balance with the unlimited sentinel.
//
// The submitter is loaded before the status write so a datastore hiccup
// leaves the request pending and retryable. The status then commits before
// the grant, so a retried approval can never credit twice.
func (s *PaymentService) Approve(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	request, err := s.guardTransition(ctx, id, domain.PaymentApproved)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, request.UserID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("approve payment: %w", err)
	}

	if err := s.payments.UpdateStatus(ctx, id, domain.PaymentApproved); err != nil {
		return nil, fmt.Errorf("approve payment: %w", err)
	}
	request.Status = domain.PaymentApproved

	if user == nil {
		// The submitter vanished between submission and approval. The
		// request still closes; there is no balance left to credit.
		s.log.Warn().
			Str("payment_id", request.ID).
			Str("user_id", request.UserID).
			Msg("approving payment for missing user")
		return request, nil
	}

	credits, unlimited := domain.PlanCredits(request.Plan)
	if err := s.grantCredits(ctx, user, credits, unlimited); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", id).
		Str("user_id", request.UserID).
		Str("plan", request.Plan).
		Msg("payment approved")

	return request, nil
}

// Reject marks the request rejected. No credits move.
func (s *PaymentService) Reject(ctx context.Context, id string) (*domain.PaymentRequest, error) {
	request, err := s.guardTransition(ctx, id, domain.PaymentRejected)
	if err != nil {
		return nil, err
	}

	if err := s.payments.UpdateStatus(ctx, id, domain.PaymentRejected); err != nil {
		return nil, fmt.Errorf("reject payment: %w", err)
	}
	request.Status = domain.PaymentRejected

	s.log.Info().Str("payment_id", id).Msg("payment rejected")
	return request, nil
}

// List returns requests newest first. Status "" or "all" disables filtering;
// an unknown status yields an empty list rather than an error, matching the
// back-office filter tabs.
func (s *PaymentService) List(ctx context.Context, status string) ([]*domain.PaymentRequest, error) {
	if status == "" || status == "all" {
		return s.payments.List(ctx, "")
	}
	return s.payments.List(ctx, domain.PaymentStatus(status))
}

func (s *PaymentService) ListForUser(ctx context.Context, userID string) ([]*domain.PaymentRequest, error) {
	return s.payments.ListByUser(ctx, userID)
}

// guardTransition loads the request and verifies the state machine allows
// moving to next. Absent ids and terminal requests change nothing.
func (s *PaymentService) guardTransition(ctx context.Context, id string, next domain.PaymentStatus) (*domain.PaymentRequest, error) {
	request, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, request.Status, next)
	}
	return request, nil
}

func (s *PaymentService) grantCredits(ctx context.Context, user *domain.User, credits int, unlimited bool) error {
	newBalance := user.Credits + credits
	if unlimited {
		newBalance = domain.UnlimitedCredits
	}

	if err := s.users.UpdateCredits(ctx, user.ID, newBalance); err != nil {
		return fmt.Errorf("grant credits: %w", err)
	}

	s.audit.Publish(domain.CreditEvent{
		UserID:    user.ID,
		Delta:     newBalance - user.Credits,
		Balance:   newBalance,
		Reason:    domain.CreditReasonPayment,
		Timestamp: time.Now().UTC(),
	})

	return nil
}
