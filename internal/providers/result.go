package providers

// Result is the outcome of a single fallback-provider request. A request
// either produced data (Ok) or did not (Empty). Empty carries the cause when
// the request failed and a nil error when the upstream simply had nothing.
type Result[T any] struct {
	value T
	ok    bool
	err   error
}

// Ok wraps a successful response.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Empty marks a request that yielded no data.
func Empty[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// OK reports whether the request produced data.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the data, or the zero value for Empty.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure cause of an Empty result, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Failed reports whether the request itself failed, as opposed to
// returning an empty collection.
func (r Result[T]) Failed() bool {
	return !r.ok && r.err != nil
}
