// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench holds demonstration and benchmarking wiring for the lfq
// queue. None of it is required for correctness; it exists so the
// cache-recycling property can be seen rather than only asserted by a
// test.
package bench

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"code.hybscloud.com/spin"
	"code.hybscloud.com/spscq"
)

// PrewarmSizes is the set of cache pre-warm sizes RenderAllocationChart
// measures allocations-per-push against.
var PrewarmSizes = []int{0, 64, 256, 1024, 4096, 16384}

// AllocsPerPush pre-warms a fresh queue's node cache with prewarm nodes,
// then reports the heap allocations incurred per Push/Pop round trip over
// a large run, using testing.Benchmark so the measurement can be taken
// from ordinary code rather than only from `go test -bench`.
func AllocsPerPush(prewarm int) (allocsPerOp float64, err error) {
	q, err := lfq.New[int](lfq.WithPrewarm[int](prewarm))
	if err != nil {
		return 0, fmt.Errorf("bench: New: %w", err)
	}
	defer q.Close()

	result := testing.Benchmark(func(b *testing.B) {
		var v int
		for i := 0; i < b.N; i++ {
			if err := q.Push(i); err != nil {
				b.Fatalf("Push: %v", err)
			}
			q.Pop(&v)
		}
	})
	return float64(result.AllocsPerOp()), nil
}

// RenderAllocationChart runs AllocsPerPush across PrewarmSizes and writes
// an HTML bar chart to outPath: allocations per push, by pre-warm size.
// Once the pre-warm size reaches the steady-state working set a caller
// actually drives, the bar should flatten to zero — the cache-recycling
// property made visible.
func RenderAllocationChart(outPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "lfq node-cache recycling",
			Subtitle: "allocations per push, by pre-warm size",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "pre-warm size"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "allocs/op"}),
	)

	labels := make([]string, len(PrewarmSizes))
	data := make([]opts.BarData, len(PrewarmSizes))
	for i, n := range PrewarmSizes {
		labels[i] = fmt.Sprintf("%d", n)
		allocsPerOp, err := AllocsPerPush(n)
		if err != nil {
			return err
		}
		data[i] = opts.BarData{Value: allocsPerOp}
	}

	bar.SetXAxis(labels).AddSeries("allocs/op", data)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("bench: create %s: %w", outPath, err)
	}
	defer f.Close()
	return bar.Render(f)
}

// ThroughputOpsPerSec runs a real concurrent producer/consumer pair for
// duration, each busy-polling with code.hybscloud.com/spin's spin.Wait
// (a bounded-spin-then-yield helper, the same one this queue family's
// own concurrent benchmarks use for their hot Enqueue/Dequeue retry
// loops) rather than iox.Backoff's sleep-based backoff, which is
// appropriate for correctness-test polling but would distort a
// throughput measurement. It returns completed pops per second.
func ThroughputOpsPerSec(prewarm int, duration time.Duration) (opsPerSec float64, err error) {
	q, err := lfq.New[int](lfq.WithPrewarm[int](prewarm))
	if err != nil {
		return 0, fmt.Errorf("bench: New: %w", err)
	}
	defer q.Close()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	var completed int64

	wg.Add(2)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		i := 0
		for {
			select {
			case <-stop:
				return
			default:
			}
			if q.Push(i) == nil {
				i++
				sw.Reset()
			} else {
				sw.Once()
			}
		}
	}()
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		var v int
		for {
			select {
			case <-stop:
				return
			default:
			}
			if q.Pop(&v) {
				completed++
				sw.Reset()
			} else {
				sw.Once()
			}
		}
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()

	return float64(completed) / duration.Seconds(), nil
}
