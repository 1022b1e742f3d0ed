package provider

import (
	"context"
	"io"
	"sync"
)

// FromDeferred adapts d into an Iterator that yields at most one value.
//
// Next blocks until d settles. On success it returns (v, true, nil) once and
// (zero, false, nil) afterwards; on failure it returns (zero, false, err) once.
// If ctx ends first Next returns ctx.Err() and the value stays available to a
// later call.
//
// Closing before the value was taken releases it when d settles, provided the
// value implements io.Closer.
func FromDeferred[T any](d *Deferred[T]) Iterator[T] {
	return &singleIterator[T]{d: d}
}

type singleIterator[T any] struct {
	d *Deferred[T]

	mu       sync.Mutex
	consumed bool
	closed   bool
}

func (it *singleIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	it.mu.Lock()
	if it.consumed || it.closed {
		it.mu.Unlock()
		return zero, false, nil
	}
	it.mu.Unlock()

	select {
	case <-it.d.done:
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	if it.consumed || it.closed {
		return zero, false, nil
	}
	it.consumed = true
	if it.d.err != nil {
		return zero, false, it.d.err
	}
	return it.d.val, true, nil
}

func (it *singleIterator[T]) Close() error {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.closed {
		return nil
	}
	it.closed = true
	if it.consumed {
		return nil
	}

	release := func() error {
		if it.d.err != nil {
			return nil
		}
		if c, ok := any(it.d.val).(io.Closer); ok {
			return c.Close()
		}
		return nil
	}

	select {
	case <-it.d.done:
		return release()
	default:
		go func() {
			<-it.d.done
			_ = release()
		}()
		return nil
	}
}
