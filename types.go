// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// Producer is the producer-side surface of Queue[T]: non-blocking append
// operations callable from exactly one goroutine at a time.
//
// The interface intentionally excludes a length query because accurate
// counts in lock-free algorithms require expensive cross-goroutine
// synchronization; track counts in application logic when needed.
type Producer[T any] interface {
	// Push copies v into the queue. Never blocks; only fails if a fresh
	// node had to be allocated and the allocator failed.
	Push(v T) error

	// PushMove moves *v into the queue, zeroing the caller's copy.
	PushMove(v *T) error

	// Emplace constructs the new element in place via build.
	Emplace(build func(*T) error) error

	// PushRange enqueues values as a single atomic publication.
	PushRange(values []T) error
}

// Consumer is the consumer-side surface of Queue[T]: non-blocking,
// non-allocating drain operations callable from exactly one goroutine at
// a time (possibly different from the producer's).
type Consumer[T any] interface {
	// Pop moves the front value into *out and removes it. Returns false
	// iff the queue was empty.
	Pop(out *T) bool

	// Front returns a pointer to the front value, or nil if empty.
	Front() *T

	// Empty reports whether the queue currently has no unconsumed
	// elements.
	Empty() bool

	// Clear drops all elements currently in the queue.
	Clear()

	// ConsumeAll drains the queue, invoking fn on each element in FIFO
	// order.
	ConsumeAll(fn func(T))
}

// pad is cache line padding to prevent false sharing between the
// producer-owned and consumer-owned fields of Queue[T].
type pad [64]byte
