package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime counters for requests and background jobs.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	rateLimited     atomic.Uint64
	totalDurationMs atomic.Uint64
	jobsSucceeded   atomic.Uint64
	jobsFailed      atomic.Uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status == 429:
		c.rateLimited.Add(1)
		c.clientErrors.Add(1)
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	if ms := duration.Milliseconds(); ms > 0 {
		c.totalDurationMs.Add(uint64(ms))
	}
}

// RecordJob matches the jobs.Service completion hook.
func (c *Collector) RecordJob(jobType string, err error) {
	if err != nil {
		c.jobsFailed.Add(1)
		return
	}
	c.jobsSucceeded.Add(1)
}

func (c *Collector) Snapshot() map[string]any {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"clientErrorsTotal": c.clientErrors.Load(),
		"errorsTotal":       c.serverErrors.Load(),
		"rateLimitedTotal":  c.rateLimited.Load(),
		"avgDurationMs":     avg,
		"totalDurationMs":   totalMs,
		"jobsSucceeded":     c.jobsSucceeded.Load(),
		"jobsFailed":        c.jobsFailed.Load(),
	}
}
