package lambdas

// ThrowingFunction maps T to R and may fail.
type ThrowingFunction[T, R any] func(T) (R, error)

// ThrowingConsumer accepts T and may fail.
type ThrowingConsumer[T any] func(T) error

// ThrowingStatement takes no input and may fail.
type ThrowingStatement func() error

// Statement takes no input and cannot fail.
type Statement func()

// Void is the value returned by functions that have nothing to return.
type Void struct{}

// Try runs s and returns its error. A panic inside s is recovered and
// returned as a *PanicError.
func Try(s ThrowingStatement) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = newPanicError(v)
		}
	}()
	return s()
}
