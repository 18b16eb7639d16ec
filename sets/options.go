package sets

import (
	"github.com/fzft/go-compact-set/log"
	"go.uber.org/zap"
)

// Option configures a set at construction.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

// WithLogger sets the logger for debug events (growth, sentinel moves, page
// lifecycle). Defaults to log.Logger at construction time.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity sets the initial slot array capacity. Values below the default
// of 3 are raised to it. For PagedIntSet it applies to every new page.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:   log.Logger,
		capacity: minCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	o.capacity = max(o.capacity, minCapacity)
	return o
}

// named tags the logger with the set kind.
func (o options) named(kind string) *zap.Logger {
	return o.logger.With(zap.String("set", kind))
}
