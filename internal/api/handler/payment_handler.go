package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgedit/studio-api/internal/api/metrics"
	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// PaymentHandler covers the user-facing purchase flow: the plan catalog,
// submitting a payment request, and listing own requests.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type submitPaymentRequest struct {
	Plan    string `json:"plan" validate:"required"`
	UTRCode string `json:"utr_code" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Note    string `json:"note"`
}

// Plans returns the static purchase catalog.
//
// @Summary      List credit plans
// @Tags         payments
// @Produce      json
// @Success      200  {array}  domain.CreditPlan
// @Router       /v1/plans [get]
func (h *PaymentHandler) Plans(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.Plans)
}

// Submit records a payment request for admin verification. The amount is
// resolved from the catalog, never trusted from the payload.
//
// @Summary      Submit a payment request
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.PaymentRequest
// @Failure      400   {object}  map[string]string
// @Router       /v1/payments [post]
func (h *PaymentHandler) Submit(c echo.Context) error {
	userID, userName, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	plan, ok := domain.PlanByName(req.Plan)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown plan"})
	}

	request, err := h.service.Submit(c.Request().Context(), ports.SubmitPaymentInput{
		UserID:   userID,
		UserName: userName,
		Plan:     plan.Name,
		Amount:   plan.Price,
		UTRCode:  req.UTRCode,
		Date:     req.Date,
		Note:     req.Note,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsSubmittedTotal.WithLabelValues(plan.Name).Inc()

	return c.JSON(http.StatusCreated, request)
}

// ListMine returns the caller's payment requests, newest first.
//
// @Summary      List own payment requests
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.PaymentRequest
// @Router       /v1/payments [get]
func (h *PaymentHandler) ListMine(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}
