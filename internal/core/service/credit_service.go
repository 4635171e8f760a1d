package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// CreditService is the ledger. The user table is the single canonical store
// of balances; every mutation reads and writes it directly, so there is no
// session-side copy to drift out of sync.
type CreditService struct {
	users  ports.UserRepository
	events ports.CreditEventRepository
	audit  ports.CreditEventPublisher
	log    zerolog.Logger
}

func NewCreditService(
	users ports.UserRepository,
	events ports.CreditEventRepository,
	audit ports.CreditEventPublisher,
	log zerolog.Logger,
) *CreditService {
	return &CreditService{users: users, events: events, audit: audit, log: log}
}

func (s *CreditService) Balance(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Spend debits amount from the user's balance. Unlimited accounts pass
// through untouched. An insufficient balance leaves the ledger unchanged.
func (s *CreditService) Spend(ctx context.Context, userID string, amount int) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HasUnlimitedCredits() {
		return user, nil
	}
	if user.Credits < amount {
		return nil, domain.ErrInsufficientCredits
	}

	newBalance := user.Credits - amount
	if err := s.users.UpdateCredits(ctx, userID, newBalance); err != nil {
		return nil, fmt.Errorf("spend credits: %w", err)
	}

	s.audit.Publish(domain.CreditEvent{
		UserID:    userID,
		Delta:     -amount,
		Balance:   newBalance,
		Reason:    domain.CreditReasonGeneration,
		Timestamp: time.Now().UTC(),
	})

	updated := *user
	updated.Credits = newBalance
	return &updated, nil
}

// AdminSetCredits overwrites a user's balance. No bounds are imposed here:
// the unlimited convention (>= 99999) is a value, not a type.
func (s *CreditService) AdminSetCredits(ctx context.Context, userID string, credits int) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateCredits(ctx, userID, credits); err != nil {
		return nil, fmt.Errorf("set credits: %w", err)
	}

	s.audit.Publish(domain.CreditEvent{
		UserID:    userID,
		Delta:     credits - user.Credits,
		Balance:   credits,
		Reason:    domain.CreditReasonAdmin,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Str("user_id", userID).Int("credits", credits).Msg("admin credit override")

	updated := *user
	updated.Credits = credits
	return &updated, nil
}

func (s *CreditService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *CreditService) History(ctx context.Context, userID string, limit int) ([]*domain.CreditEvent, error) {
	return s.events.ListByUser(ctx, userID, limit)
}
