package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pgedit/studio-api/internal/api/metrics"
	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// AdminHandler is the back-office surface: user and credit management plus
// payment request decisions. All routes behind it are RBAC-gated to admins.
type AdminHandler struct {
	credits  ports.CreditService
	payments ports.PaymentService
}

func NewAdminHandler(credits ports.CreditService, payments ports.PaymentService) *AdminHandler {
	return &AdminHandler{credits: credits, payments: payments}
}

type updateCreditsRequest struct {
	// Credits is an overwrite, not a delta. Values at or above the unlimited
	// threshold follow the unlimited convention; no bounds are imposed.
	Credits int `json:"credits"`
}

// ListUsers returns all accounts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.credits.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateCredits overwrites a user's credit balance.
//
// @Summary      Override a user's credits
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateCreditsRequest  true  "New balance"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/users/{id}/credits [put]
func (h *AdminHandler) UpdateCredits(c echo.Context) error {
	var req updateCreditsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	user, err := h.credits.AdminSetCredits(c.Request().Context(), c.Param("id"), req.Credits)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// CreditHistory returns a user's ledger events, newest first.
//
// @Summary      List a user's credit events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "User id"
// @Param        limit  query     int     false  "Max events (default 50)"
// @Success      200    {array}   domain.CreditEvent
// @Router       /v1/admin/users/{id}/events [get]
func (h *AdminHandler) CreditHistory(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.credits.History(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListPayments returns payment requests, optionally filtered by status.
//
// @Summary      List payment requests
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "all, pending, approved, or rejected"
// @Success      200     {array}   domain.PaymentRequest
// @Router       /v1/admin/payments [get]
func (h *AdminHandler) ListPayments(c echo.Context) error {
	requests, err := h.payments.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// ApprovePayment grants the plan's credits and marks the request approved.
//
// @Summary      Approve a payment request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Payment request id"
// @Success      200  {object}  domain.PaymentRequest
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/admin/payments/{id}/approve [post]
func (h *AdminHandler) ApprovePayment(c echo.Context) error {
	request, err := h.payments.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PaymentsDecidedTotal.WithLabelValues(string(domain.PaymentApproved)).Inc()
	return c.JSON(http.StatusOK, request)
}

// RejectPayment marks the request rejected with no credit side effects.
//
// @Summary      Reject a payment request
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Payment request id"
// @Success      200  {object}  domain.PaymentRequest
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/admin/payments/{id}/reject [post]
func (h *AdminHandler) RejectPayment(c echo.Context) error {
	request, err := h.payments.Reject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PaymentsDecidedTotal.WithLabelValues(string(domain.PaymentRejected)).Inc()
	return c.JSON(http.StatusOK, request)
}
