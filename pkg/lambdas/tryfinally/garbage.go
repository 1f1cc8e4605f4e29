package tryfinally

import (
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/lambdas/pkg/lambdas"
)

// Garbage is an ordered registry of disposal actions. Registration is
// write-only: a resource cannot be read back once added.
//
// A Garbage handed to a body by With is closed once With starts cleaning
// up. Registering on it afterwards panics with a *lambdas.Fault wrapping
// lambdas.ErrIllegalState.
type Garbage struct {
	actions []lambdas.ThrowingStatement
	isolate bool
	closed  bool
}

func newGarbage(isolate bool) *Garbage {
	return &Garbage{isolate: isolate}
}

// Add registers dispose(resource) to run on cleanup.
func Add[T any](g *Garbage, resource T, dispose func(T)) {
	g.register(func() error {
		dispose(resource)
		return nil
	})
}

// AddErr registers a disposer that may fail.
func AddErr[T any](g *Garbage, resource T, dispose lambdas.ThrowingConsumer[T]) {
	g.register(func() error {
		return dispose(resource)
	})
}

// AddCloser registers c.Close to run on cleanup.
func AddCloser(g *Garbage, c io.Closer) {
	AddErr(g, c, io.Closer.Close)
}

func (g *Garbage) register(action lambdas.ThrowingStatement) {
	if g.closed {
		panic(&lambdas.Fault{Cause: fmt.Errorf("garbage registered after its scope ended: %w", lambdas.ErrIllegalState)})
	}
	g.actions = append(g.actions, action)
}

// close rejects further registrations.
func (g *Garbage) close() {
	g.closed = true
}

// Len returns the number of disposers waiting for cleanup.
func (g *Garbage) Len() int {
	return len(g.actions)
}

// Cleanup runs the registered disposers in registration order and empties
// the registry. The first disposer that returns an error stops the cleanup
// and its error is returned; a disposer that panics stops it the same way.
// Disposers that did not run are dropped.
func (g *Garbage) Cleanup() error {
	actions := g.actions
	g.actions = nil

	if g.isolate {
		return cleanupIsolated(actions)
	}

	for i, dispose := range actions {
		if err := dispose(); err != nil {
			return fmt.Errorf("dispose #%d: %w", i, err)
		}
	}
	return nil
}

func cleanupIsolated(actions []lambdas.ThrowingStatement) error {
	var errs []error
	for i, dispose := range actions {
		if err := lambdas.Try(dispose); err != nil {
			errs = append(errs, fmt.Errorf("dispose #%d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
