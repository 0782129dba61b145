package hyper

import (
	"context"
	"errors"

	"github.com/vexxhost/hyper-platform/internal/config"
)

// contextKey is an unexported type for context keys to prevent collisions
type contextKey int

const (
	configKey contextKey = iota
)

// ErrNoConfig is returned when the configuration is not found in context
var ErrNoConfig = errors.New("hyper configuration not found in context")

// WithConfig returns a new context with the configuration set
func WithConfig(parent context.Context, cfg *config.Config) context.Context {
	return context.WithValue(parent, configKey, cfg)
}

// Config returns the configuration from the context
func Config(ctx context.Context) (*config.Config, error) {
	v := ctx.Value(configKey)
	if v == nil {
		return nil, ErrNoConfig
	}
	cfg, ok := v.(*config.Config)
	if !ok {
		return nil, ErrNoConfig
	}
	return cfg, nil
}

// MustConfig returns the configuration or panics if not found
func MustConfig(ctx context.Context) *config.Config {
	cfg, err := Config(ctx)
	if err != nil {
		panic(err)
	}
	return cfg
}
