// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// options collects the configuration New applies before constructing a
// Queue[T]. It plays the role this queue family's Builder/Options pair
// played for the bounded ring-buffer queues: a small struct built up
// fluently (here, via functional options rather than method chaining,
// since there is no longer a producer/consumer-count or capacity axis to
// select an algorithm from) and consumed once at construction time.
type options[T any] struct {
	alloc   NodeAllocator[T]
	prewarm int
}

// Option configures a Queue[T] at construction time. See WithAllocator and
// WithPrewarm.
type Option[T any] func(*options[T])

// WithAllocator overrides the default heap-backed NodeAllocator. Use
// NewPooledAllocator to share a node freelist across multiple queues of
// the same element type.
func WithAllocator[T any](alloc NodeAllocator[T]) Option[T] {
	return func(o *options[T]) {
		o.alloc = alloc
	}
}

// WithPrewarm allocates n extra nodes into the producer's free-node cache
// at construction time, so that the first n calls to Push (or elements
// pushed via PushRange/PushRangeFunc/Emplace) perform no allocation at
// all — not even the lazy, amortized allocation the cache would otherwise
// perform the first time it runs dry.
//
// Panics if n is negative.
func WithPrewarm[T any](n int) Option[T] {
	if n < 0 {
		panic("lfq: WithPrewarm requires n >= 0")
	}
	return func(o *options[T]) {
		o.prewarm = n
	}
}
