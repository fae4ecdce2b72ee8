// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfq_test

import (
	"testing"

	"code.hybscloud.com/spscq"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestQueuePropertyFIFO checks the FIFO and round-trip laws against a
// slice-backed reference model, driving a sequence of single-goroutine
// Push/Pop/PushRange/Clear/ConsumeAll operations generated by rapid.
func TestQueuePropertyFIFO(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q, err := lfq.New[int]()
		require.NoError(t, err)

		var model []int

		t.Repeat(map[string]func(*rapid.T){
			"push": func(t *rapid.T) {
				v := rapid.Int().Draw(t, "value")
				require.NoError(t, q.Push(v))
				model = append(model, v)
			},
			"pushRange": func(t *rapid.T) {
				n := rapid.IntRange(0, 8).Draw(t, "n")
				values := rapid.SliceOfN(rapid.Int(), n, n).Draw(t, "values")
				require.NoError(t, q.PushRange(values))
				model = append(model, values...)
			},
			"pop": func(t *rapid.T) {
				var got int
				ok := q.Pop(&got)
				if len(model) == 0 {
					require.False(t, ok, "Pop should fail on an empty queue")
					return
				}
				require.True(t, ok, "Pop should succeed on a non-empty queue")
				require.Equal(t, model[0], got, "Pop returned a value out of FIFO order")
				model = model[1:]
			},
			"front": func(t *rapid.T) {
				p := q.Front()
				if len(model) == 0 {
					require.Nil(t, p, "Front should be nil on an empty queue")
					return
				}
				require.NotNil(t, p)
				require.Equal(t, model[0], *p, "Front disagreed with the model's head")
			},
			"clear": func(t *rapid.T) {
				q.Clear()
				model = nil
			},
			"consumeAll": func(t *rapid.T) {
				var seen []int
				q.ConsumeAll(func(v int) { seen = append(seen, v) })
				require.Equal(t, model, seen, "ConsumeAll order disagreed with the model")
				model = nil
			},
			"": func(t *rapid.T) {
				require.Equal(t, len(model) == 0, q.Empty(), "Empty() disagreed with the model")
			},
		})
	})
}

// TestQueuePropertyPushPopRoundTrip checks that pushing a generated
// sequence of values and then popping them all returns each exact value
// in order, leaving the queue empty.
func TestQueuePropertyPushPopRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q, err := lfq.New[string]()
		require.NoError(t, err)

		values := rapid.SliceOfN(rapid.String(), 1, 32).Draw(t, "values")
		for _, v := range values {
			require.NoError(t, q.Push(v))
		}
		for _, want := range values {
			var got string
			require.True(t, q.Pop(&got))
			require.Equal(t, want, got)
		}
		require.True(t, q.Empty())
	})
}
