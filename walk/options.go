package walk

import "log/slog"

// Option configures a traversal.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger for skipped subtrees and removal steps.
// Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
