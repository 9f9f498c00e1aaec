// Package lazy provides a lazily initialized, shared resource whose
// initialization is single-flight and is not cached when it fails.
package lazy

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

const flightKey = "init"

// ErrNilInit is returned when a Value is built without an init function.
var ErrNilInit = errors.New("lazy: nil init function")

// InitFunc produces the resource. It runs at most once concurrently.
type InitFunc[T any] func(ctx context.Context) (T, error)

// Value holds a resource produced on first use.
//
// Concurrent callers of Get while nothing is cached share one call to the
// init function. A successful result is cached until Reset; a failed one is
// discarded so the next Get starts over.
type Value[T any] struct {
	init  InitFunc[T]
	group singleflight.Group

	mu     sync.RWMutex
	value  T
	loaded bool
}

// New returns a Value that calls init on first use.
func New[T any](init InitFunc[T]) *Value[T] {
	return &Value[T]{init: init}
}

// Get returns the cached resource or initializes it.
//
// The init function runs detached from the context cancellation of any single
// caller, because its result is shared; ctx values are still visible to it.
// A caller whose ctx is done stops waiting and gets ctx.Err().
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	if val, ok := v.cached(); ok {
		return val, nil
	}
	if v.init == nil {
		var zero T
		return zero, ErrNilInit
	}

	ch := v.group.DoChan(flightKey, func() (interface{}, error) {
		// A previous flight may have finished between cached() and DoChan.
		if val, ok := v.cached(); ok {
			return val, nil
		}
		val, err := v.init(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		v.mu.Lock()
		v.value, v.loaded = val, true
		v.mu.Unlock()
		return val, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		val, _ := res.Val.(T)
		return val, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Peek returns the cached resource without initializing it.
func (v *Value[T]) Peek() (T, bool) {
	return v.cached()
}

// Loaded reports whether a resource is cached.
func (v *Value[T]) Loaded() bool {
	_, ok := v.cached()
	return ok
}

// Reset drops the cached resource and returns it, if any, so the caller can
// release it. The next Get initializes again.
func (v *Value[T]) Reset() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	val, ok := v.value, v.loaded
	var zero T
	v.value, v.loaded = zero, false
	return val, ok
}

func (v *Value[T]) cached() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.loaded
}
