package tryfinally

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/lambdas/pkg/lambdas"
)

// GarbageConsumer is a body that registers the resources it creates in g.
type GarbageConsumer[T any] func(g *Garbage, t T) error

// TryFinally holds a body until it is run with an input.
type TryFinally[T any] struct {
	consumer GarbageConsumer[T]
	opts     options
}

func Using[T any](consumer GarbageConsumer[T], opts ...Option) *TryFinally[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &TryFinally[T]{consumer: consumer, opts: o}
}

// Run is Using(consumer, opts...).With(t).
func Run[T any](t T, consumer GarbageConsumer[T], opts ...Option) error {
	return Using(consumer, opts...).With(t)
}

// With runs the body on t with a fresh Garbage and cleans it up afterwards.
// The body's error or panic is discarded. The returned error comes from
// cleanup only; in the default mode a panicking disposer panics out of With.
//
// Each call gets its own registry, so a TryFinally may be run any number of
// times. The registry is closed when cleanup starts; a body that kept it
// cannot register anything afterwards.
func (tf *TryFinally[T]) With(t T) (err error) {
	g := newGarbage(tf.opts.isolateCleanup)
	log := tf.opts.logger.With(zap.Stringer("scope", uuid.New()))

	defer func() {
		g.close()
		pending := g.Len()
		if err = g.Cleanup(); err != nil {
			log.Debug("cleanup failed", zap.Int("disposers", pending), zap.Error(err))
		}
	}()

	bodyErr := lambdas.Try(func() error {
		return tf.consumer(g, t)
	})
	if bodyErr == nil {
		return nil
	}

	log.Debug("body failed, failure discarded", zap.Int("disposers", g.Len()), zap.Error(bodyErr))
	if tf.opts.onBodyError != nil {
		if herr := lambdas.Try(func() error {
			tf.opts.onBodyError(bodyErr)
			return nil
		}); herr != nil {
			log.Debug("body error handler failed", zap.Error(herr))
		}
	}
	return nil
}
