package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

const (
	defaultImagenBaseURL = "https://generativelanguage.googleapis.com"
	defaultImagenModel   = "imagen-4.0-generate-001"
)

// ImagenOptions configures the Imagen gateway client.
type ImagenOptions struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// ImagenClient calls the Imagen predict endpoint to turn a prompt into PNG
// artifacts. It is the outbound ImageGenerator port implementation.
type ImagenClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewImagenClient(opts ImagenOptions, log zerolog.Logger) *ImagenClient {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultImagenBaseURL
	}
	model := opts.Model
	if model == "" {
		model = defaultImagenModel
	}
	return &ImagenClient{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		log:        log,
	}
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	OutputMimeType string `json:"outputMimeType,omitempty"`
}

type imagenPredictRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenPrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType,omitempty"`
}

type imagenPredictResponse struct {
	Predictions []imagenPrediction `json:"predictions"`
}

type imagenErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// Generate requests count images for the prompt. A missing credential fails
// fast with ErrGeneratorNotConfigured; an empty or fully blocked response
// surfaces as ErrEmptyGeneration.
func (c *ImagenClient) Generate(ctx context.Context, prompt string, count int) ([]ports.GeneratedImage, error) {
	if c.apiKey == "" {
		return nil, domain.ErrGeneratorNotConfigured
	}

	payload, err := json.Marshal(imagenPredictRequest{
		Instances: []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParameters{
			SampleCount:    count,
			AspectRatio:    "1:1",
			OutputMimeType: "image/png",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("imagen: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:predict?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("imagen: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("imagen: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imagen: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr imagenErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("imagen: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("imagen: unexpected status %d", resp.StatusCode)
	}

	var predictResp imagenPredictResponse
	if err := json.Unmarshal(body, &predictResp); err != nil {
		return nil, fmt.Errorf("imagen: decode response: %w", err)
	}
	if len(predictResp.Predictions) == 0 {
		return nil, domain.ErrEmptyGeneration
	}

	images := make([]ports.GeneratedImage, 0, len(predictResp.Predictions))
	for _, p := range predictResp.Predictions {
		data, err := base64.StdEncoding.DecodeString(p.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("imagen: decode image bytes: %w", err)
		}
		mime := p.MimeType
		if mime == "" {
			mime = "image/png"
		}
		images = append(images, ports.GeneratedImage{MIMEType: mime, Data: data})
	}

	c.log.Debug().Int("count", len(images)).Msg("imagen generation succeeded")
	return images, nil
}

var _ ports.ImageGenerator = (*ImagenClient)(nil)
