// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import "sync"

// NodeAllocator is the externalized allocator collaborator the queue core
// falls back to on a genuine cache miss (the producer-local free-node
// cache, not this collaborator, is what keeps steady-state Push
// allocation-free; see queue.go).
//
// Allocate must be safe to call from whichever goroutine currently holds
// the producer role. Deallocate is called from the producer role when a
// freshly allocated node is released after a failed Emplace or
// PushRangeFunc, and from the single goroutine running Close, after both
// producer and consumer have stopped.
type NodeAllocator[T any] interface {
	// Allocate returns a fresh, unlinked node with its data at the zero
	// value.
	Allocate() (*Node[T], error)

	// Deallocate releases a node obtained from Allocate. The node's data
	// field is not necessarily zero; callers that need it cleared before
	// release already clear it themselves.
	Deallocate(*Node[T])
}

// heapAllocator is the default NodeAllocator: every node comes from a plain
// heap allocation and Deallocate simply lets the garbage collector reclaim
// it once unreachable. There is no general free-heap abstraction to wrap
// here, because Go already provides one.
type heapAllocator[T any] struct{}

// NewHeapAllocator returns the default NodeAllocator used when New is
// called without WithAllocator.
func NewHeapAllocator[T any]() NodeAllocator[T] {
	return heapAllocator[T]{}
}

func (heapAllocator[T]) Allocate() (*node[T], error) {
	return new(node[T]), nil
}

func (heapAllocator[T]) Deallocate(*node[T]) {
	// Nothing to do: the node becomes unreachable once the queue drops its
	// last pointer to it, and the garbage collector reclaims it.
}

// pooledAllocator is a NodeAllocator backed by sync.Pool, grounded in the
// node-freelist idiom used by lock-free linked-list queues in the retrieved
// dependency pack (a package-level sync.Pool of *node handed out by
// Enqueue and returned by Dequeue). It is opt-in via WithAllocator: callers
// who run many independent queues of the same element type can let nodes
// migrate between queues instead of each queue growing its own cache from
// scratch, at the cost of sync.Pool's own synchronization overhead on a
// cache miss.
type pooledAllocator[T any] struct {
	pool *sync.Pool
}

// NewPooledAllocator returns a NodeAllocator that recycles nodes through a
// shared sync.Pool. Passing the same *sync.Pool to multiple queues lets
// them share a node freelist.
func NewPooledAllocator[T any](pool *sync.Pool) NodeAllocator[T] {
	if pool.New == nil {
		pool.New = func() any { return new(node[T]) }
	}
	return pooledAllocator[T]{pool: pool}
}

func (a pooledAllocator[T]) Allocate() (*node[T], error) {
	return a.pool.Get().(*node[T]), nil
}

func (a pooledAllocator[T]) Deallocate(n *node[T]) {
	n.next.storeRelaxed(nil)
	a.pool.Put(n)
}
