package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pgedit/studio-api/internal/core/ports"
	"github.com/pgedit/studio-api/internal/envfile"
)

// EnvironmentHandler backs the admin environments page. Import accepts
// either pasted .env text (JSON) or an uploaded .env file (multipart); both
// merge into the submitted variable set.
type EnvironmentHandler struct {
	service ports.EnvironmentService
}

func NewEnvironmentHandler(service ports.EnvironmentService) *EnvironmentHandler {
	return &EnvironmentHandler{service: service}
}

type importEnvRequest struct {
	Variables []envfile.Variable `json:"variables"`
	Text      string             `json:"text"`
}

type environmentResponse struct {
	Variables []envfile.Variable `json:"variables"`
}

type saveEnvRequest struct {
	Variables []envfile.Variable `json:"variables"`
}

// Import merges .env content into the submitted variable set.
//
// @Summary      Import .env content
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      importEnvRequest  true  "Existing variables and pasted .env text"
// @Success      200   {object}  environmentResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/admin/env/import [post]
func (h *EnvironmentHandler) Import(c echo.Context) error {
	existing, text, err := h.importPayload(c)
	if err != nil {
		return err
	}

	merged := h.service.Import(existing, text)
	return c.JSON(http.StatusOK, environmentResponse{Variables: merged})
}

// Save publishes the variable set to the remote configuration endpoint.
//
// @Summary      Save environment variables
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveEnvRequest  true  "Variables to save"
// @Success      200   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/admin/env/save [post]
func (h *EnvironmentHandler) Save(c echo.Context) error {
	var req saveEnvRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	if err := h.service.Save(c.Request().Context(), req.Variables); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to save environment variables")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

// importPayload reads the import input from either a multipart file upload
// or a JSON body. The uploaded file is read as raw .env text.
func (h *EnvironmentHandler) importPayload(c echo.Context) ([]envfile.Variable, string, error) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return nil, "", echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		if err != nil {
			return nil, "", echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
		}

		// The current variable set may ride along as a form field.
		var existing []envfile.Variable
		if raw := c.FormValue("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &existing); err != nil {
				return nil, "", echo.NewHTTPError(http.StatusBadRequest, "invalid variables field")
			}
		}
		return existing, string(content), nil
	}

	var req importEnvRequest
	if err := c.Bind(&req); err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return req.Variables, req.Text, nil
}
