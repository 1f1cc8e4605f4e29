// Package tryfinally runs a body with a fresh disposal registry and
// guarantees the registry is cleaned up on every exit path.
//
// The body registers a disposer for every resource it creates:
//
//	err := tryfinally.Using(func(g *tryfinally.Garbage, path string) error {
//		f, err := os.Open(path)
//		if err != nil {
//			return err
//		}
//		tryfinally.AddCloser(g, f)
//		...
//	}).With("input.txt")
//
// A failure of the body, whether a returned error or a panic, is discarded:
// With never reports it. The error With returns, if any, comes from a
// disposer. Disposers run in registration order, each at most once, and
// the first failing disposer stops the cleanup unless WithIsolatedCleanup
// is set.
package tryfinally
