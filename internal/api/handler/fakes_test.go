package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/api"
	"github.com/pgedit/studio-api/internal/api/handler"
	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// newTestServer builds an echo instance wired the way the router wires it:
// the request validator plus the central error handler that maps domain
// errors to status codes.
func newTestServer() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

// asUser simulates the Auth middleware by injecting session claims.
func asUser(userID, userName, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("user_id", userID)
			c.Set("user_name", userName)
			c.Set("role", role)
			c.Set("token_id", "jti-test")
			return next(c)
		}
	}
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type fakeAuthService struct {
	signupErr  error
	loginErr   error
	user       *domain.User
	loggedOut  []string
	signupName string
}

func (f *fakeAuthService) Signup(_ context.Context, name, _ string) (string, *domain.User, error) {
	if f.signupErr != nil {
		return "", nil, f.signupErr
	}
	f.signupName = name
	return "tok-signup", f.user, nil
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return "tok-login", f.user, nil
}

func (f *fakeAuthService) Logout(_ context.Context, tokenID string) error {
	f.loggedOut = append(f.loggedOut, tokenID)
	return nil
}

type fakeCreditService struct {
	user    *domain.User
	users   []*domain.User
	events  []*domain.CreditEvent
	err     error
	setArgs []int
}

func (f *fakeCreditService) Balance(context.Context, string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeCreditService) Spend(context.Context, string, int) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeCreditService) AdminSetCredits(_ context.Context, _ string, credits int) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.setArgs = append(f.setArgs, credits)
	return f.user, nil
}

func (f *fakeCreditService) ListUsers(context.Context) ([]*domain.User, error) {
	return f.users, f.err
}

func (f *fakeCreditService) History(context.Context, string, int) ([]*domain.CreditEvent, error) {
	return f.events, f.err
}

type fakePaymentService struct {
	submitted  []ports.SubmitPaymentInput
	request    *domain.PaymentRequest
	requests   []*domain.PaymentRequest
	submitErr  error
	decideErr  error
	lastStatus string
}

func (f *fakePaymentService) Submit(_ context.Context, input ports.SubmitPaymentInput) (*domain.PaymentRequest, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, input)
	return f.request, nil
}

func (f *fakePaymentService) Approve(context.Context, string) (*domain.PaymentRequest, error) {
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	return f.request, nil
}

func (f *fakePaymentService) Reject(context.Context, string) (*domain.PaymentRequest, error) {
	if f.decideErr != nil {
		return nil, f.decideErr
	}
	return f.request, nil
}

func (f *fakePaymentService) List(_ context.Context, status string) ([]*domain.PaymentRequest, error) {
	f.lastStatus = status
	return f.requests, nil
}

func (f *fakePaymentService) ListForUser(context.Context, string) ([]*domain.PaymentRequest, error) {
	return f.requests, nil
}

type fakeGenerationService struct {
	result *ports.GenerateResult
	err    error
	input  ports.GenerateInput
}

func (f *fakeGenerationService) Generate(_ context.Context, input ports.GenerateInput) (*ports.GenerateResult, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
