package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pgedit/studio-api/internal/api/metrics"
	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// GenerationHandler handles text-to-image generation requests.
type GenerationHandler struct {
	service ports.GenerationService
}

func NewGenerationHandler(service ports.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

type generateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Count  int    `json:"count" validate:"required,min=1,max=3"`
}

type generateResponse struct {
	Images      []string `json:"images"`
	CreditsLeft int      `json:"credits_left"`
	Unlimited   bool     `json:"unlimited,omitempty"`
}

// Generate produces images for a prompt and debits one credit per image.
//
// @Summary      Generate images from a prompt
// @Tags         generation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Prompt and image count (1-3)"
// @Success      200   {object}  generateResponse
// @Failure      400   {object}  map[string]string
// @Failure      402   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/images/generate [post]
func (h *GenerationHandler) Generate(c echo.Context) error {
	userID, _, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	start := time.Now()
	result, err := h.service.Generate(c.Request().Context(), ports.GenerateInput{
		UserID: userID,
		Prompt: req.Prompt,
		Count:  req.Count,
	})
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues(generationErrorReason(err)).Inc()
		return err
	}

	metrics.ImagesGeneratedTotal.Add(float64(len(result.Images)))

	return c.JSON(http.StatusOK, generateResponse{
		Images:      result.Images,
		CreditsLeft: result.CreditsLeft,
		Unlimited:   result.Unlimited,
	})
}

func generationErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrGeneratorNotConfigured):
		return "not_configured"
	case errors.Is(err, domain.ErrEmptyGeneration):
		return "empty_result"
	case errors.Is(err, domain.ErrInsufficientCredits):
		return "insufficient_credits"
	default:
		return "upstream"
	}
}
