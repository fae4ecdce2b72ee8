// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq

import (
	"errors"
	"fmt"
)

// ErrAllocation wraps a failure returned by the configured NodeAllocator
// during Push, Emplace, or PushRange/PushRangeFunc. The queue is left
// unchanged whenever this error is returned.
//
// Unlike [code.hybscloud.com/iox]'s ErrWouldBlock family used by this
// queue family's bounded, backpressured variants, allocation failure here
// is not a semantic, retry-later control-flow signal: this queue is
// unbounded and never blocks, so there is no "full" condition to retry
// past. A failing NodeAllocator means real resource exhaustion (the
// underlying allocate() call genuinely failed), so ErrAllocation is an
// ordinary wrapped error, not routed through iox's non-failure
// classification helpers.
var ErrAllocation = errors.New("lfq: node allocation failed")

// wrapAllocErr wraps an allocator failure so callers can match both
// ErrAllocation and the underlying cause with errors.Is or errors.As.
// The result wraps two errors, so errors.Unwrap on it returns nil.
func wrapAllocErr(cause error) error {
	return fmt.Errorf("%w: %w", ErrAllocation, cause)
}

// IsAllocationFailure reports whether err (or any error it wraps) is an
// allocator failure from this package.
func IsAllocationFailure(err error) bool {
	return errors.Is(err, ErrAllocation)
}
