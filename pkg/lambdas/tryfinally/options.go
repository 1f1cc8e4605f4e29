package tryfinally

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	logger         *zap.Logger
	onBodyError    func(error)
	isolateCleanup bool
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger logs discarded body failures and cleanup failures at debug
// level. A nil logger keeps logging disabled.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBodyErrorHandler lets the caller observe the failure of a body. The
// failure is still discarded after the handler returns.
func WithBodyErrorHandler(handler func(err error)) Option {
	return func(o *options) {
		o.onBodyError = handler
	}
}

// WithIsolatedCleanup runs every disposer even when an earlier one fails.
// Errors and panics raised by disposers are joined into the error returned
// by With.
func WithIsolatedCleanup() Option {
	return func(o *options) {
		o.isolateCleanup = true
	}
}
