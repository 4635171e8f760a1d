package service

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/domain"
	"github.com/pgedit/studio-api/internal/core/ports"
)

// GenerationService coordinates a text-to-image request: gate on balance,
// call the provider, and debit only after the provider has delivered.
// A failed provider call leaves the balance untouched.
type GenerationService struct {
	generator ports.ImageGenerator
	credits   ports.CreditService
	log       zerolog.Logger
}

func NewGenerationService(generator ports.ImageGenerator, credits ports.CreditService, log zerolog.Logger) *GenerationService {
	return &GenerationService{generator: generator, credits: credits, log: log}
}

// Generate produces input.Count images for input.Prompt. Cost is one credit
// per image; unlimited accounts are never debited.
func (s *GenerationService) Generate(ctx context.Context, input ports.GenerateInput) (*ports.GenerateResult, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, domain.ErrPromptRequired
	}
	if input.Count < 1 || input.Count > domain.MaxImagesPerRequest {
		return nil, domain.ErrInvalidImageCount
	}

	cost := input.Count
	user, err := s.credits.Balance(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !user.HasUnlimitedCredits() && user.Credits < cost {
		return nil, domain.ErrInsufficientCredits
	}

	images, err := s.generator.Generate(ctx, prompt, input.Count)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("image generation failed")
		return nil, err
	}

	user, err = s.credits.Spend(ctx, input.UserID, cost)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = dataURL(img)
	}

	s.log.Info().
		Str("user_id", input.UserID).
		Int("count", len(urls)).
		Int("credits_left", user.Credits).
		Msg("images generated")

	return &ports.GenerateResult{
		Images:      urls,
		CreditsLeft: user.Credits,
		Unlimited:   user.HasUnlimitedCredits(),
	}, nil
}

// dataURL renders an artifact as a browser-displayable data URL.
func dataURL(img ports.GeneratedImage) string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
