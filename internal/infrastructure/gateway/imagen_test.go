package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
)

func newImagenTestClient(server *httptest.Server) *ImagenClient {
	return NewImagenClient(ImagenOptions{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	}, zerolog.Nop())
}

func TestImagenGenerate_OK(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":predict") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not sent")
		}

		var req imagenPredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Parameters.SampleCount != 2 {
			t.Errorf("expected sampleCount 2, got %d", req.Parameters.SampleCount)
		}

		_ = json.NewEncoder(w).Encode(imagenPredictResponse{Predictions: []imagenPrediction{
			{BytesBase64Encoded: base64.StdEncoding.EncodeToString(png), MimeType: "image/png"},
			{BytesBase64Encoded: base64.StdEncoding.EncodeToString(png)},
		}})
	}))
	defer server.Close()

	images, err := newImagenTestClient(server).Generate(context.Background(), "a red fox", 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if string(images[0].Data) != string(png) {
		t.Fatalf("image bytes not decoded")
	}
	if images[1].MIMEType != "image/png" {
		t.Fatalf("missing mime type must default to png, got %q", images[1].MIMEType)
	}
}

func TestImagenGenerate_MissingKey(t *testing.T) {
	client := NewImagenClient(ImagenOptions{}, zerolog.Nop())

	_, err := client.Generate(context.Background(), "a red fox", 1)
	if !errors.Is(err, domain.ErrGeneratorNotConfigured) {
		t.Fatalf("expected ErrGeneratorNotConfigured, got %v", err)
	}
}

func TestImagenGenerate_EmptyPredictions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(imagenPredictResponse{})
	}))
	defer server.Close()

	_, err := newImagenTestClient(server).Generate(context.Background(), "a red fox", 1)
	if !errors.Is(err, domain.ErrEmptyGeneration) {
		t.Fatalf("expected ErrEmptyGeneration, got %v", err)
	}
}

func TestImagenGenerate_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	_, err := newImagenTestClient(server).Generate(context.Background(), "a red fox", 1)
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected upstream message surfaced, got %v", err)
	}
}
