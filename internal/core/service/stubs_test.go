package service

import (
	"context"
	"sync"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
	"github.com/pgedit/studio-api/internal/envfile"
)

// In-memory stand-ins for the persistence and messaging ports. Each stub
// keeps just enough state to assert on after the call under test.

type stubUserRepo struct {
	mu      sync.Mutex
	users   []*domain.User
	findErr error
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := *user
	r.users = append(r.users, &clone)
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateCredits(_ context.Context, id string, credits int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.Credits = credits
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubUserRepo) credits(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u.Credits
		}
	}
	return -1
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	putErr   error
}

func (s *stubSessionStore) Put(_ context.Context, tokenID, userID string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = map[string]string{}
	}
	s.sessions[tokenID] = userID
	return nil
}

func (s *stubSessionStore) Exists(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[tokenID]
	return ok, nil
}

func (s *stubSessionStore) Delete(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
	return nil
}

type recordPublisher struct {
	mu     sync.Mutex
	events []domain.CreditEvent
}

func (p *recordPublisher) Publish(event domain.CreditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordPublisher) published() []domain.CreditEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.CreditEvent, len(p.events))
	copy(out, p.events)
	return out
}

type stubPaymentRepo struct {
	mu        sync.Mutex
	payments  []*domain.PaymentRequest
	updateErr error
}

func (r *stubPaymentRepo) Insert(_ context.Context, request *domain.PaymentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *request
	r.payments = append(r.payments, &clone)
	return nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.PaymentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *stubPaymentRepo) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	for _, p := range r.payments {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

func (r *stubPaymentRepo) List(_ context.Context, status domain.PaymentStatus) ([]*domain.PaymentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.PaymentRequest, 0, len(r.payments))
	for i := len(r.payments) - 1; i >= 0; i-- {
		p := r.payments[i]
		if status != "" && p.Status != status {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPaymentRepo) ListByUser(_ context.Context, userID string) ([]*domain.PaymentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.PaymentRequest, 0, len(r.payments))
	for i := len(r.payments) - 1; i >= 0; i-- {
		p := r.payments[i]
		if p.UserID != userID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPaymentRepo) status(id string) domain.PaymentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.ID == id {
			return p.Status
		}
	}
	return ""
}

type stubEventRepo struct {
	mu     sync.Mutex
	events []*domain.CreditEvent
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.CreditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *event
	r.events = append(r.events, &clone)
	return nil
}

func (r *stubEventRepo) ListByUser(_ context.Context, userID string, limit int) ([]*domain.CreditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.CreditEvent, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if e.UserID != userID {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

type stubGenerator struct {
	images []ports.GeneratedImage
	err    error
	calls  int
}

func (g *stubGenerator) Generate(_ context.Context, _ string, count int) ([]ports.GeneratedImage, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	if g.images != nil {
		return g.images, nil
	}
	out := make([]ports.GeneratedImage, count)
	for i := range out {
		out[i] = ports.GeneratedImage{MIMEType: "image/png", Data: []byte{0x89, 0x50}}
	}
	return out, nil
}

type stubConfigPublisher struct {
	published []envfile.Variable
	err       error
}

func (p *stubConfigPublisher) Publish(_ context.Context, vars []envfile.Variable) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, vars...)
	return nil
}
