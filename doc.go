// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfq provides an unbounded single-producer single-consumer FIFO
// queue.
//
// Unlike the bounded, array-backed SPSC/MPSC/SPMC/MPMC ring buffers this
// package is descended from, Queue[T] is a lock-free linked list of nodes
// with no fixed capacity: Push never fails because the queue is full (it
// cannot be), and Pop never blocks waiting for an element to appear. A
// producer-local free-node cache recycles nodes the consumer has released
// back to the producer, so steady-state Push performs no allocation once
// the cache has been populated by an equal number of prior Pop calls (or
// by WithPrewarm at construction time).
//
// # Quick Start
//
//	q, err := lfq.New[Event]()
//	if err != nil {
//	    // only the single sentinel-node allocation can fail here
//	}
//
//	// Producer
//	if err := q.Push(ev); err != nil {
//	    // allocator exhausted; queue unchanged
//	}
//
//	// Consumer
//	var ev Event
//	if q.Pop(&ev) {
//	    process(ev)
//	}
//
// # Basic Usage
//
// All four producer-side operations append to the tail:
//
//	q.Push(v)                                   // copy v in
//	q.PushMove(&v)                               // move v in, zero the caller's copy
//	q.Emplace(func(slot *Event) error { ... })   // construct directly in the node
//	q.PushRange([]Event{a, b, c})                // one atomic publication of many
//
// All consumer-side operations observe or remove from the front:
//
//	q.Pop(&v)        // remove and return the front value
//	q.Front()        // peek, valid until the next mutating consumer call
//	q.Empty()        // true iff nothing unconsumed is published
//	q.Clear()        // drop everything
//	q.ConsumeAll(fn) // drain, calling fn on each value in order
//
// # Common Patterns
//
// Pipeline stage:
//
//	q, _ := lfq.New[Frame]()
//
//	go func() { // producer
//	    for f := range decoded {
//	        if err := q.Push(f); err != nil {
//	            log.Printf("lfq: dropping frame, allocator exhausted: %v", err)
//	        }
//	    }
//	}()
//
//	go func() { // consumer
//	    var f Frame
//	    for {
//	        if q.Pop(&f) {
//	            render(f)
//	            continue
//	        }
//	        runtime.Gosched()
//	    }
//	}()
//
// Free-list of pooled node storage, shared across queues of the same
// element type via a common sync.Pool:
//
//	pool := &sync.Pool{}
//	q, _ := lfq.New[int](lfq.WithAllocator[int](lfq.NewPooledAllocator[int](pool)))
//
// Pre-warmed cache for an allocation-free burst:
//
//	q, _ := lfq.New[Job](lfq.WithPrewarm[Job](1024))
//	// The next 1024 Push calls perform zero allocations.
//
// # Thread Safety
//
// Exactly one goroutine may call the producer-side methods at a time, and
// exactly one goroutine may call the consumer-side methods at a time. The
// producer and consumer may be the same goroutine or different ones; a
// role may be handed off to a different goroutine only across a
// synchronized boundary (channel send/receive, sync.WaitGroup, or
// equivalent). Violating single-producer/single-consumer discipline is
// undefined behavior, as it is for every other queue in this family.
//
// Queue[T] must not be copied after first use — share it by pointer, as
// with every other type in this package that embeds atomic fields.
//
// # Error Handling
//
// Push/PushMove/PushRange only fail when the configured NodeAllocator
// fails on a genuine cache miss; that error is wrapped in
// [ErrAllocation], checkable with errors.Is or the [IsAllocationFailure]
// helper. Emplace and PushRangeFunc fail the same way, and additionally
// return the error of their build or convert function unwrapped:
//
//	if err := q.Push(v); err != nil {
//	    if lfq.IsAllocationFailure(err) {
//	        // resource exhaustion, not a retry-me-later signal
//	    }
//	    return err
//	}
//
// This is a different failure taxonomy from this queue family's bounded
// variants, which return [code.hybscloud.com/iox]'s ErrWouldBlock as a
// semantic, non-failure control-flow signal when full or empty. Queue[T]
// is unbounded and never blocks, so there is no such signal to raise —
// Pop simply returns false on empty, and Push only returns a real error.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through acquire/release orderings on independent
// atomic variables, which is exactly how the producer/consumer handoff in
// this package is implemented. Concurrent tests that rely on that
// ordering are skipped under -race via the
// RaceEnabled build-tagged constant; this does not indicate the algorithm
// is unsafe, only that this particular tool cannot verify it.
//
// # Dependencies
//
// Queue[T]'s own atomic fields use sync/atomic's generic atomic.Pointer,
// which is required for GC-safety (see node.go). The rest of this
// package's ambient surface continues to draw on the dependencies the
// rest of this queue family uses: [code.hybscloud.com/atomix] for
// explicit-ordering counters in the test harness, and
// [code.hybscloud.com/iox] for backoff helpers in concurrent test polling
// loops. The test suite additionally uses pgregory.net/rapid for
// property-based FIFO-model checks and github.com/stretchr/testify for
// table-driven assertions in those same property tests; the sibling
// bench package uses code.hybscloud.com/spin for its hot-loop throughput
// benchmark, github.com/go-echarts/go-echarts/v2 to render the
// cache-recycling chart, and gopkg.in/check.v1 for an alternate-framework
// smoke suite.
package lfq
