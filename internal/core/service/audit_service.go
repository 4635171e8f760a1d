package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

type auditService struct {
	events ports.CreditEventRepository
	log    zerolog.Logger
}

// NewAuditService returns the AuditService that persists ledger events
// drained from the dispatcher into the audit collection.
func NewAuditService(events ports.CreditEventRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{events: events, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.CreditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := s.events.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record credit event: %w", err)
	}

	s.log.Debug().
		Str("user_id", event.UserID).
		Int("delta", event.Delta).
		Str("reason", event.Reason).
		Msg("credit event recorded")

	return nil
}
