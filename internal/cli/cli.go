package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/shortlist/internal/config"
	"github.com/thenoetrevino/shortlist/internal/gateway"
)

// ErrNoCLI is returned when a command runs without a CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

type contextKey struct{}

// CLI represents the CLI application context
type CLI struct {
	Config *config.Config
	Client *gateway.Client
}

// New builds the CLI from cfg, pointing the gateway client at the configured
// remote store
func New(cfg *config.Config) *CLI {
	return &CLI{
		Config: cfg,
		Client: gateway.NewClient(gateway.Options{
			BaseURL:    cfg.Client.APIURL,
			Timeout:    cfg.Client.Timeout,
			MaxRetries: cfg.Client.MaxRetries,
		}),
	}
}

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
