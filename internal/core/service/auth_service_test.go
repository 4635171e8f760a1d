package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newAuthService(users *stubUserRepo, sessions *stubSessionStore, events *recordPublisher) *AuthService {
	return NewAuthService(users, sessions, events, testSecret, time.Hour, zerolog.Nop())
}

func TestSignup_GrantsBonusAndOpensSession(t *testing.T) {
	users := &stubUserRepo{}
	sessions := &stubSessionStore{}
	events := &recordPublisher{}
	svc := newAuthService(users, sessions, events)

	token, user, err := svc.Signup(context.Background(), "Ravi", "Ravi@Example.com")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Credits != domain.SignupCredits {
		t.Fatalf("expected %d credits, got %d", domain.SignupCredits, user.Credits)
	}
	if user.Email != "ravi@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.IsAdmin {
		t.Fatalf("signup must never create an admin")
	}

	claims := parseClaims(t, token)
	if claims["uid"] != user.ID || claims["role"] != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if ok, _ := sessions.Exists(context.Background(), claims["jti"].(string)); !ok {
		t.Fatalf("session not registered for new token")
	}

	published := events.published()
	if len(published) != 1 || published[0].Reason != domain.CreditReasonSignup {
		t.Fatalf("expected one signup ledger event, got %+v", published)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionStore{}, &recordPublisher{})

	if _, _, err := svc.Signup(context.Background(), "A", "a@x.com"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), "B", "A@X.COM"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate signup must not create a second account")
	}
}

func TestLogin_ReturnsSameAccount(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionStore{}, &recordPublisher{})

	_, created, err := svc.Signup(context.Background(), "Ravi", "ravi@example.com")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, loggedIn, err := svc.Login(context.Background(), "ravi@example.com", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != created.ID {
		t.Fatalf("login returned a different account: %s vs %s", loggedIn.ID, created.ID)
	}
	if len(users.users) != 1 {
		t.Fatalf("login must not create accounts")
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionStore{}, &recordPublisher{})

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(users.users) != 0 {
		t.Fatalf("failed login must not create accounts")
	}
}

func TestLogin_AdminPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := &stubUserRepo{users: []*domain.User{{
		ID:           "admin-1",
		Email:        "admin@example.com",
		IsAdmin:      true,
		PasswordHash: string(hash),
	}}}
	svc := newAuthService(users, &stubSessionStore{}, &recordPublisher{})

	if _, _, err := svc.Login(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	token, user, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if claims := parseClaims(t, token); claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected admin role claim, got %v", claims["role"])
	}
	if user.ID != "admin-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	sessions := &stubSessionStore{}
	svc := newAuthService(&stubUserRepo{}, sessions, &recordPublisher{})

	token, _, err := svc.Signup(context.Background(), "Ravi", "ravi@example.com")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	jti := parseClaims(t, token)["jti"].(string)

	if err := svc.Logout(context.Background(), jti); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if ok, _ := sessions.Exists(context.Background(), jti); ok {
		t.Fatalf("session still live after logout")
	}
	// Logging out again is a no-op.
	if err := svc.Logout(context.Background(), jti); err != nil {
		t.Fatalf("repeat logout: %v", err)
	}
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	return parsed.Claims.(jwt.MapClaims)
}
