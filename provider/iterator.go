package provider

import (
	"context"
	"errors"
)

// ErrEmpty is returned by First when the iterator ends without a value.
var ErrEmpty = errors.New("provider: iterator exhausted without a value")

// Iterator provides pull-based sequential access to a stream of values.
// The consumer calls Next() to retrieve values one at a time.
// Close must be called when done to release resources.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted
	// and (zero, false, err) when the stream failed.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// First pulls one value from it and closes it.
func First[T any](ctx context.Context, it Iterator[T]) (T, error) {
	defer func() { _ = it.Close() }()

	v, ok, err := it.Next(ctx)
	if err != nil {
		return v, err
	}
	if !ok {
		var zero T
		return zero, ErrEmpty
	}
	return v, nil
}
