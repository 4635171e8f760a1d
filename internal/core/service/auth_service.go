package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// AuthService implements signup, login, and logout. Sessions are JWTs whose
// jti is registered in the session store; logout deletes the entry, revoking
// the token before its natural expiry.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	events    ports.CreditEventPublisher
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionStore,
	events ports.CreditEventPublisher,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		events:    events,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Signup creates a non-admin account seeded with the signup credit bonus and
// opens a session for it. A duplicate email fails with ErrEmailTaken and no
// state change.
func (s *AuthService) Signup(ctx context.Context, name, email string) (string, *domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Credits:   domain.SignupCredits,
		IsAdmin:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.events.Publish(domain.CreditEvent{
		UserID:    created.ID,
		Delta:     domain.SignupCredits,
		Balance:   created.Credits,
		Reason:    domain.CreditReasonSignup,
		Timestamp: now,
	})

	token, err := s.openSession(ctx, created)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login authenticates by email. Admin accounts must also present their
// password, verified against the stored bcrypt hash; a mismatch changes no
// state. Non-admin accounts carry no password at all.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}

	if user.IsAdmin {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return "", nil, domain.ErrInvalidCredentials
		}
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role()).Msg("user logged in")
	return token, user, nil
}

// Logout deletes the session for the given token id. Logging out an already
// revoked session is a no-op.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Delete(ctx, tokenID)
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (string, error) {
	tokenID := uuid.NewString()
	claims := jwt.MapClaims{
		"jti":  tokenID,
		"uid":  user.ID,
		"name": user.Name,
		"role": user.Role(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	if err := s.sessions.Put(ctx, tokenID, user.ID); err != nil {
		return "", err
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
