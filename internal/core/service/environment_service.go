package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pgedit/studio-api/internal/core/ports"
	"github.com/pgedit/studio-api/internal/envfile"
)

// EnvironmentService backs the admin environments page. Pasted text and
// uploaded files feed the same parse-and-merge pipeline.
type EnvironmentService struct {
	publisher ports.ConfigPublisher
	log       zerolog.Logger
}

func NewEnvironmentService(publisher ports.ConfigPublisher, log zerolog.Logger) *EnvironmentService {
	return &EnvironmentService{publisher: publisher, log: log}
}

// Import parses .env text and merges the result into existing. When the text
// yields nothing the existing set is returned untouched, blank rows included.
func (s *EnvironmentService) Import(existing []envfile.Variable, text string) []envfile.Variable {
	parsed := envfile.Parse(text)
	if len(parsed) == 0 {
		return existing
	}
	return envfile.Merge(existing, parsed)
}

// Save publishes the fully populated variables to the remote configuration
// endpoint. Rows with a blank key or value are silently skipped.
func (s *EnvironmentService) Save(ctx context.Context, vars []envfile.Variable) error {
	populated := make([]envfile.Variable, 0, len(vars))
	for _, v := range vars {
		if strings.TrimSpace(v.Key) == "" || strings.TrimSpace(v.Value) == "" {
			continue
		}
		populated = append(populated, v)
	}

	if err := s.publisher.Publish(ctx, populated); err != nil {
		s.log.Error().Err(err).Int("count", len(populated)).Msg("environment save failed")
		return fmt.Errorf("save environment: %w", err)
	}

	s.log.Info().Int("count", len(populated)).Msg("environment saved")
	return nil
}
