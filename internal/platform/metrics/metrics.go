// Package metrics keeps cheap request counters good enough for a health
// dashboard; it is not a full metrics pipeline.
package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   int64
	errorRequests   int64
	totalDurationMs int64
}

func New() *Collector {
	return &Collector{}
}

// Record is safe on a nil receiver so callers can skip the enabled check.
func (c *Collector) Record(status int, duration time.Duration) {
	if c == nil {
		return
	}
	atomic.AddInt64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddInt64(&c.errorRequests, 1)
	}
	atomic.AddInt64(&c.totalDurationMs, duration.Milliseconds())
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadInt64(&c.totalRequests)
	errs := atomic.LoadInt64(&c.errorRequests)
	totalMs := atomic.LoadInt64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"totalRequests":   total,
		"errorRequests":   errs,
		"totalDurationMs": totalMs,
		"avgLatencyMs":    avg,
	}
}
