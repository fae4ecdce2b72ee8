// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import "sync/atomic"

// nodePtr is an atomic pointer to a node[T], used both for a node's own
// next field and for Queue.beforeHead. Both are read and written across
// the producer/consumer boundary, so both must stay pointer-typed under
// an atomic that the garbage collector can see through at all times.
//
// This is a sync/atomic.Pointer rather than one of this package's
// explicit-ordering atomix wrappers (see the ambient test helpers for
// where atomix is used instead): atomix's ordering primitives
// in this dependency operate on integer handles (atomix.Uintptr indexes a
// caller-owned slice, as in the ring-buffer queues this package is
// descended from); a node pointer here is a live, GC-managed heap address,
// and parking a live pointer in an integer-typed atomic would hide it from
// the garbage collector's root scan between the store and the next load.
// atomic.Pointer keeps the value pointer-typed throughout, and Go's atomic
// package guarantees sequential consistency for all of Load/Store, which
// satisfies (and is strictly stronger than) every acquire/release/relaxed
// requirement here; the method names below document which ordering each
// call site actually relies on, even though the underlying operation is
// the same.
type nodePtr[T any] struct {
	p atomic.Pointer[node[T]]
}

// loadRelaxed reads the pointer within the traverser's own owned region,
// where no cross-goroutine synchronization is required (e.g. the producer
// walking nodes it already knows are reachable).
func (a *nodePtr[T]) loadRelaxed() *node[T] { return a.p.Load() }

// loadAcquire reads a pointer published by the other goroutine,
// synchronizing with the paired storeRelease.
func (a *nodePtr[T]) loadAcquire() *node[T] { return a.p.Load() }

// storeRelaxed writes a pointer that has not yet been published to the
// other goroutine (e.g. linking nodes inside a private range-push chain
// ahead of the chain's single publishing release store).
func (a *nodePtr[T]) storeRelaxed(v *node[T]) { a.p.Store(v) }

// storeRelease publishes a pointer to the other goroutine.
func (a *nodePtr[T]) storeRelease(v *node[T]) { a.p.Store(v) }

// node is one slot of the linked chain backing Queue[T]. A node is either
// live (it carries a data value a consumer has not yet popped), a sentinel
// (the node beforeHead currently points at), or cached (reclaimed by the
// consumer, not yet reused by the producer). data is only meaningful while
// the node is live; the sentinel and cached states leave it at its zero
// value.
//
// next is published by the producer with a release store to tail.next and
// observed by the consumer with an acquire load of beforeHead.next. Every
// other traversal of next happens within the goroutine that already owns
// the node and may use a relaxed load.
type node[T any] struct {
	data T
	next nodePtr[T]
}

// Node is the exported name for the node type a NodeAllocator[T]
// implementation allocates and deallocates. It is a type alias, not a
// distinct type: outside this package a *Node[T] can be stored, passed to
// another NodeAllocator, and forwarded to Deallocate, but its fields stay
// unexported, so composing or instrumenting an allocator (see
// countingAllocator in the test suite) never requires reaching into the
// queue's internal node representation.
type Node[T any] = node[T]

// clear drops the live value so it can be garbage collected and so the
// node satisfies invariant 4 (non-live data) once it enters the cache.
func (n *node[T]) clear() {
	var zero T
	n.data = zero
}
