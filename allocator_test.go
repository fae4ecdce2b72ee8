// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq_test

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spscq"
)

// countingAllocator wraps another NodeAllocator and counts calls with
// code.hybscloud.com/atomix counters, so tests can assert the no-leaks and
// zero-allocation invariants without reaching into package-private state.
type countingAllocator[T any] struct {
	inner       lfq.NodeAllocator[T]
	allocations atomix.Int64
	frees       atomix.Int64
	failNext    atomix.Bool
}

func newCountingAllocator[T any](inner lfq.NodeAllocator[T]) *countingAllocator[T] {
	return &countingAllocator[T]{inner: inner}
}

var errInjectedAllocFailure = errors.New("lfq_test: injected allocation failure")

func (a *countingAllocator[T]) Allocate() (*lfq.Node[T], error) {
	if a.failNext.Load() {
		a.failNext.Store(false)
		return nil, errInjectedAllocFailure
	}
	n, err := a.inner.Allocate()
	if err != nil {
		return nil, err
	}
	a.allocations.Add(1)
	return n, nil
}

func (a *countingAllocator[T]) Deallocate(n *lfq.Node[T]) {
	a.frees.Add(1)
	a.inner.Deallocate(n)
}

// failNextAllocation arranges for the very next call to Allocate to fail,
// exercising the allocation-failure error path without needing a real
// resource-exhaustion condition.
func (a *countingAllocator[T]) failNextAllocation() {
	a.failNext.Store(true)
}
