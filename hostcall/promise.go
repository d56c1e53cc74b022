package hostcall

import (
	"context"
	"sync"
)

// Promise is a settle-once asynchronous result. Resolve and Reject may be
// called from any goroutine; only the first settles the promise, every
// later call is a no-op. This mirrors the host's at-most-one-completion
// contract without relying on the host to honor it.
type Promise[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved returns an already-settled promise, used where a host entry
// point completes inline.
func Resolved[T any](v T) *Promise[T] {
	p := NewPromise[T]()
	p.Resolve(v)
	return p
}

// Rejected returns an already-failed promise.
func Rejected[T any](err error) *Promise[T] {
	p := NewPromise[T]()
	p.Reject(err)
	return p
}

func (p *Promise[T]) Resolve(v T) {
	p.once.Do(func() {
		p.val = v
		close(p.done)
	})
}

func (p *Promise[T]) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

// Done is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the promise settles or ctx is done. Cancelling ctx
// abandons the wait only; the underlying host call is not cancellable at
// this layer.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.val, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
