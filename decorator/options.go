package decorator

import (
	"github.com/dlshle/functional/logging"
	"github.com/dlshle/functional/timer"
)

type Options struct {
	Scheduler timer.Scheduler
	Logger    logging.Logger
}

type Option func(*Options) *Options

// WithScheduler replaces the shared timer.Default loop.
func WithScheduler(scheduler timer.Scheduler) Option {
	return func(o *Options) *Options {
		o.Scheduler = scheduler
		return o
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(o *Options) *Options {
		o.Logger = logger
		return o
	}
}

func WithOptions(options *Options) Option {
	return func(o *Options) *Options {
		return options
	}
}

func resolve(opts []Option) *Options {
	cfg := &Options{}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = timer.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.LibraryLogger("[decorator]")
	}
	return cfg
}
