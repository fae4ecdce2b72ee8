// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

// Queue is an unbounded single-producer single-consumer FIFO queue built
// from a lock-free linked list of nodes, with an attached free-node cache
// that recycles popped nodes back to the producer.
//
// Exactly one goroutine may call the producer-side methods (Push,
// PushMove, Emplace, PushRange, PushRangeFunc) at a time, and exactly one
// goroutine may call the consumer-side methods (Pop, Front, Empty, Clear,
// ConsumeAll) at a time. The producer and consumer may be different
// goroutines, or the same goroutine; either role may be handed off to a
// different goroutine provided the handoff is itself synchronized (a
// channel send/receive or equivalent full happens-before edge).
//
// Queue must not be copied after first use; share it by pointer.
type Queue[T any] struct {
	_ pad
	// tail, cacheHead, cacheTail: producer-owned. No cross-goroutine
	// synchronization is needed to read or write them because only the
	// producer goroutine ever touches them; they are plain *node[T], not
	// nodePtr[T].
	tail      *node[T]
	cacheHead *node[T]
	cacheTail *node[T]
	_         pad
	beforeHead nodePtr[T] // consumer writes (release), producer reads (acquire)
	_          pad
	alloc NodeAllocator[T]
}

// Queue[T] implements both halves of the producer/consumer split exposed
// as separate interfaces in types.go, so callers that only need one side
// of the contract can accept the narrower type.
var (
	_ Producer[int] = (*Queue[int])(nil)
	_ Consumer[int] = (*Queue[int])(nil)
)

// New constructs an empty Queue[T]. By default nodes are allocated from the
// heap one at a time as the cache runs dry; see WithAllocator and
// WithPrewarm to change that.
func New[T any](opts ...Option[T]) (*Queue[T], error) {
	cfg := options[T]{alloc: NewHeapAllocator[T]()}
	for _, opt := range opts {
		opt(&cfg)
	}

	sentinel, err := cfg.alloc.Allocate()
	if err != nil {
		return nil, wrapAllocErr(err)
	}

	q := &Queue[T]{alloc: cfg.alloc}
	q.cacheHead = sentinel

	// WithPrewarm builds a chain of extra, never-live nodes ahead of the
	// sentinel so the cache starts non-empty: the last node allocated
	// becomes the new tail/sentinel (the queue is still empty — tail ==
	// beforeHead — it just has cfg.prewarm recyclable nodes sitting in
	// front of that sentinel instead of one). There is no reclaim gap yet,
	// so cacheTail starts equal to beforeHead, exactly as it would once a
	// real consumer has drained up to the current tail.
	last := sentinel
	for i := 0; i < cfg.prewarm; i++ {
		n, err := cfg.alloc.Allocate()
		if err != nil {
			return q, wrapAllocErr(err)
		}
		last.next.storeRelaxed(n)
		last = n
	}
	q.tail = last
	q.cacheTail = last
	q.beforeHead.storeRelaxed(last)

	return q, nil
}

// Allocator returns the NodeAllocator this queue was constructed with.
func (q *Queue[T]) Allocator() NodeAllocator[T] {
	return q.alloc
}

// IsLockFree reports whether the underlying atomic pointer type is
// lock-free on this platform. Go's atomic.Pointer is always implemented
// without locks, so this is always true; the method exists for interface
// parity with the rest of this queue family, which exposes the same query.
func (q *Queue[T]) IsLockFree() bool {
	return true
}

// acquireNode returns a node ready to hold a new value: either recycled
// from the cache, or freshly allocated on a genuine cache miss. fromCache
// reports which, so a caller that fails to populate the node's data knows
// whether to return it to the cache or to the allocator.
func (q *Queue[T]) acquireNode() (n *node[T], fromCache bool, err error) {
	x := q.cacheHead
	if q.cacheTail == x {
		// Cache believed empty. Refill the snapshot with a single acquire
		// load of beforeHead: everything the consumer released before its
		// release store of beforeHead is now safe to read with relaxed
		// loads of next.
		q.cacheTail = q.beforeHead.loadAcquire()
		if q.cacheTail == x {
			// Still nothing reclaimed: a real cache miss.
			n, err = q.alloc.Allocate()
			if err != nil {
				return nil, false, wrapAllocErr(err)
			}
			return n, false, nil
		}
	}
	q.cacheHead = x.next.loadRelaxed()
	return x, true, nil
}

// releaseUnused returns an acquired-but-unpopulated node, used when a
// caller-supplied constructor fails. A node pulled from the cache goes
// back to the front of the cache (it was never published, so no allocator
// call is needed); a freshly allocated node goes back to the allocator.
func (q *Queue[T]) releaseUnused(n *node[T], fromCache bool) {
	n.clear()
	if fromCache {
		n.next.storeRelaxed(q.cacheHead)
		q.cacheHead = n
		return
	}
	q.alloc.Deallocate(n)
}

// publish links n after the current tail with a release store, making it
// and its data visible to the consumer, then advances tail.
func (q *Queue[T]) publish(n *node[T]) {
	n.next.storeRelaxed(nil)
	q.tail.next.storeRelease(n)
	q.tail = n
}

// Push copies v into the queue. Never blocks. Returns a non-nil error only
// if a fresh node had to be allocated and the allocator failed; the queue
// is left unchanged in that case.
func (q *Queue[T]) Push(v T) error {
	return q.Emplace(func(slot *T) error {
		*slot = v
		return nil
	})
}

// PushMove moves *v into the queue, leaving the caller's copy at its zero
// value.
func (q *Queue[T]) PushMove(v *T) error {
	if err := q.Push(*v); err != nil {
		return err
	}
	var zero T
	*v = zero
	return nil
}

// Emplace constructs the new element in place by invoking build against
// the acquired node's storage, mirroring emplace(args...) in the distilled
// spec. If build returns an error, the node is released (to the cache or
// the allocator, whichever it came from) and the queue is left unchanged.
func (q *Queue[T]) Emplace(build func(*T) error) error {
	n, fromCache, err := q.acquireNode()
	if err != nil {
		return err
	}

	if err := build(&n.data); err != nil {
		q.releaseUnused(n, fromCache)
		return err
	}

	q.publish(n)
	return nil
}

// PushRange enqueues values as a single atomic publication: the consumer
// either observes none of them or can reach all of them from the moment
// the publishing release store takes effect. An empty slice is a no-op —
// no allocation, no publication.
func (q *Queue[T]) PushRange(values []T) error {
	return PushRangeFunc(q, values, func(v T) (T, error) { return v, nil })
}

// PushRangeFunc is the generalized form of range-push: each input of type U
// is converted to T via convert before being staged into the private
// chain. If convert fails partway through, every node already staged has
// its data cleared and is released back to wherever it came from (the
// cache, if it was never actually removed from circulation, or the
// allocator for a node that required a real allocation — see
// releaseUnused), and the queue is left unchanged. An empty input slice
// is a no-op.
//
// This is a package-level function rather than a method because Go methods
// cannot introduce additional type parameters beyond the receiver's.
func PushRangeFunc[T, U any](q *Queue[T], values []U, convert func(U) (T, error)) error {
	if len(values) == 0 {
		return nil
	}

	type staged[T any] struct {
		n         *node[T]
		fromCache bool
	}
	chain := make([]staged[T], 0, len(values))

	abort := func(err error) error {
		for _, s := range chain {
			q.releaseUnused(s.n, s.fromCache)
		}
		return err
	}

	var insertHead, insertTail *node[T]
	for _, v := range values {
		n, fromCache, err := q.acquireNode()
		if err != nil {
			return abort(err)
		}
		chain = append(chain, staged[T]{n: n, fromCache: fromCache})

		converted, err := convert(v)
		if err != nil {
			return abort(err)
		}
		n.data = converted
		n.next.storeRelaxed(nil)

		if insertHead == nil {
			insertHead = n
		} else {
			insertTail.next.storeRelaxed(n)
		}
		insertTail = n
	}

	q.tail.next.storeRelease(insertHead)
	q.tail = insertTail
	return nil
}

// Pop moves the front value into *out and removes it. Returns false (and
// leaves *out untouched) iff the queue was empty.
func (q *Queue[T]) Pop(out *T) bool {
	b := q.beforeHead.loadRelaxed()
	x := b.next.loadAcquire()
	if x == nil {
		return false
	}
	*out = x.data
	x.clear()
	q.beforeHead.storeRelease(x)
	return true
}

// Front returns a pointer to the front value, or nil if the queue is
// empty. The pointer is valid only until the next consumer-side mutating
// call (Pop, Clear, ConsumeAll) on this queue.
func (q *Queue[T]) Front() *T {
	b := q.beforeHead.loadRelaxed()
	x := b.next.loadAcquire()
	if x == nil {
		return nil
	}
	return &x.data
}

// Empty reports whether the queue currently has no unconsumed elements.
func (q *Queue[T]) Empty() bool {
	b := q.beforeHead.loadRelaxed()
	return b.next.loadAcquire() == nil
}

// Clear drops all elements currently in the queue. A second immediate call
// is a no-op.
func (q *Queue[T]) Clear() {
	q.drain(nil)
}

// ConsumeAll drains the queue, invoking fn on each element in FIFO order
// before it is cleared. If fn panics, the node already popped stays
// released to the producer (best-effort: T's own operations are what can
// fail here, not the queue).
func (q *Queue[T]) ConsumeAll(fn func(T)) {
	q.drain(fn)
}

// drain walks from the current front to the last node reachable via
// acquire loads, invoking fn (if non-nil) on each live value before
// clearing it, then publishes the whole drained prefix to the producer in
// a single release store, amortizing the release fence across the entire
// drained run instead of paying it once per node. If fn panics, the
// deferred store still publishes the prefix, including the node fn
// panicked on (its data is cleared first).
func (q *Queue[T]) drain(fn func(T)) {
	start := q.beforeHead.loadRelaxed()
	b := start
	defer func() {
		if b != start {
			b.clear()
			q.beforeHead.storeRelease(b)
		}
	}()
	x := b.next.loadAcquire()
	for x != nil {
		b = x
		if fn != nil {
			fn(x.data)
		}
		x.clear()
		x = b.next.loadAcquire()
	}
}

// Close tears the queue down: it clears the data of every still-live node
// and returns every node in the whole chain (cache, reclaimed-but-not-yet-
// observed, and live) to the allocator. Close must only be called after
// both the producer and the consumer have stopped; it performs no atomics
// beyond the plain loads needed to walk the chain, because, by contract,
// there is no other goroutine left to synchronize with.
func (q *Queue[T]) Close() error {
	beforeHead := q.beforeHead.loadRelaxed()

	// [cacheHead, beforeHead): never live, just return to the allocator.
	for n := q.cacheHead; n != beforeHead; {
		next := n.next.loadRelaxed()
		q.alloc.Deallocate(n)
		n = next
	}
	// [beforeHead, tail]: beforeHead itself is the current sentinel (not
	// live); everything after it up to and including tail is live.
	for n := beforeHead; n != nil; {
		next := n.next.loadRelaxed()
		if n != beforeHead {
			n.clear()
		}
		q.alloc.Deallocate(n)
		n = next
	}
	return nil
}
