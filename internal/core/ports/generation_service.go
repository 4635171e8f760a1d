package ports

import "context"

// GeneratedImage is a single artifact returned by the image provider.
type GeneratedImage struct {
	MIMEType string
	Data     []byte
}

// ImageGenerator is the outbound port to the text-to-image provider.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, count int) ([]GeneratedImage, error)
}

// GenerateInput carries a generation request for an authenticated user.
type GenerateInput struct {
	UserID string
	Prompt string
	Count  int
}

// GenerateResult is returned after a successful generation. Images are
// data URLs directly displayable by a browser. CreditsLeft is the balance
// after the debit.
type GenerateResult struct {
	Images      []string
	CreditsLeft int
	Unlimited   bool
}

// GenerationService coordinates balance checks, the provider call, and the
// post-success debit. Credits move only after the provider has delivered.
type GenerationService interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error)
}
