package provider

import (
	"context"
	"fmt"

	"github.com/kbukum/fetchkit/errors"
)

// Deferred is a value computed on its own goroutine. It settles exactly once,
// with either a value or an error.
type Deferred[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn on a new goroutine and returns a Deferred for its result.
// A panic in fn settles the Deferred with an INTERNAL_ERROR AppError.
func Go[T any](fn func() (T, error)) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{})}
	go func() {
		defer close(d.done)
		defer func() {
			if r := recover(); r != nil {
				d.err = errors.Internal(fmt.Errorf("deferred panicked: %v", r))
			}
		}()
		d.val, d.err = fn()
	}()
	return d
}

// Resolved returns an already settled Deferred holding v.
func Resolved[T any](v T) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{}), val: v}
	close(d.done)
	return d
}

// Rejected returns an already settled Deferred holding err.
func Rejected[T any](err error) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{}), err: err}
	close(d.done)
	return d
}

// Done is closed once the Deferred has settled.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Await blocks until the Deferred settles or ctx is done. Giving up on ctx
// does not stop the underlying work.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.val, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then returns a Deferred settled by fn applied to d's value. Errors from d
// pass through without calling fn.
func Then[T, U any](d *Deferred[T], fn func(T) (U, error)) *Deferred[U] {
	return Go(func() (U, error) {
		<-d.done
		if d.err != nil {
			var zero U
			return zero, d.err
		}
		return fn(d.val)
	})
}
