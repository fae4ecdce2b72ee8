// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"testing"

	"code.hybscloud.com/spscq"
	check "gopkg.in/check.v1"
)

// Test hooks gocheck into `go test`, the same way this queue family's
// other retrieved sibling wires a gocheck suite alongside plain testing.
func Test(t *testing.T) { check.TestingT(t) }

type QueueSmokeSuite struct{}

var _ = check.Suite(&QueueSmokeSuite{})

// TestPushPopEmpty is the basic end-to-end push/pop/empty scenario,
// restated with gocheck's assertion style rather than plain testing, to
// keep this alternate framework actually exercised.
func (s *QueueSmokeSuite) TestPushPopEmpty(c *check.C) {
	q, err := lfq.New[int]()
	c.Assert(err, check.IsNil)

	var v int
	c.Assert(q.Pop(&v), check.Equals, false)
	c.Assert(q.Empty(), check.Equals, true)

	c.Assert(q.Push(42), check.IsNil)
	c.Assert(q.Empty(), check.Equals, false)

	c.Assert(q.Pop(&v), check.Equals, true)
	c.Check(v, check.Equals, 42)
	c.Assert(q.Pop(&v), check.Equals, false)
	c.Assert(q.Empty(), check.Equals, true)
}

// TestAllocsPerPushIsFinite is a light smoke check that the benchmark
// helper itself runs and reports a sane, non-negative number, without
// asserting an exact allocation count (that belongs to the core package's
// own tests, not this demonstration package).
func (s *QueueSmokeSuite) TestAllocsPerPushIsFinite(c *check.C) {
	allocsPerOp, err := AllocsPerPush(1024)
	c.Assert(err, check.IsNil)
	c.Assert(allocsPerOp >= 0, check.Equals, true)
}
