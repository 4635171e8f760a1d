package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pgedit/studio-api/internal/core/ports"
	"github.com/pgedit/studio-api/internal/envfile"
)

// HTTPConfigPublisher pushes environment variables to the remote
// configuration endpoint with a single JSON POST. Any non-2xx status is a
// save error.
type HTTPConfigPublisher struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPConfigPublisher(endpoint string, httpClient *http.Client) *HTTPConfigPublisher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPConfigPublisher{endpoint: endpoint, httpClient: httpClient}
}

type publishRequest struct {
	Variables []envfile.Variable `json:"variables"`
}

func (p *HTTPConfigPublisher) Publish(ctx context.Context, vars []envfile.Variable) error {
	payload, err := json.Marshal(publishRequest{Variables: vars})
	if err != nil {
		return fmt.Errorf("config publish: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("config publish: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("config publish: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("config publish: server responded with %d", resp.StatusCode)
	}
	return nil
}

var _ ports.ConfigPublisher = (*HTTPConfigPublisher)(nil)
