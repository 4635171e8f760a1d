package ports

import (
	"context"

	"github.com/pgedit/studio-api/internal/envfile"
)

// ConfigPublisher pushes environment variables to the remote configuration
// endpoint.
type ConfigPublisher interface {
	Publish(ctx context.Context, vars []envfile.Variable) error
}

// EnvironmentService backs the admin environments page: importing .env text
// (pasted or uploaded) into the variable set and saving it remotely.
type EnvironmentService interface {
	// Import parses .env-formatted text and merges it into existing without
	// duplicating keys.
	Import(existing []envfile.Variable, text string) []envfile.Variable
	// Save publishes the fully populated variables (non-blank key and value)
	// to the remote configuration endpoint.
	Save(ctx context.Context, vars []envfile.Variable) error
}
