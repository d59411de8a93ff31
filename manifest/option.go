package manifest

import "github.com/ardnew/cmakepm/log"

// Option configures parsing.
type Option func(*options)

type options struct {
	logger log.Logger
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger that receives trace and debug diagnostics from
// the parser. By default nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
