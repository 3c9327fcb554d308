package sequencer

import "github.com/katalvlaran/cueseq/scheduler"

// Option customizes a Sequencer at construction time.
type Option func(cfg *config)

type config struct {
	schedulerOpts []scheduler.Option
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSchedulerOptions forwards options to the Sequencer's internal
// Scheduler, e.g. scheduler.WithLookahead.
func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(cfg *config) {
		cfg.schedulerOpts = append(cfg.schedulerOpts, opts...)
	}
}
