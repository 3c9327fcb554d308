package scheduler

import "time"

// defaultLookahead is the horizon, in seconds, over which the
// scheduler pre-fetches endpoint crossings when no Option overrides it.
const defaultLookahead = 5 * time.Second

// Option customizes a Scheduler at construction time.
type Option func(cfg *config)

type config struct {
	lookahead time.Duration
}

func newConfig(opts ...Option) *config {
	cfg := &config{lookahead: defaultLookahead}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLookahead overrides the default pre-fetch horizon. Non-positive
// values are ignored.
func WithLookahead(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.lookahead = d
		}
	}
}
