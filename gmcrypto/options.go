package gmcrypto

import "go.uber.org/zap"

type options struct {
	logger *zap.Logger
}

// Option configures handle construction.
type Option func(*options)

// WithLogger sets the logger used while building handles. Key material is
// never logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
