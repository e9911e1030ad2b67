package bench

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// histogram bounds: 1us to 60s, 3 significant digits.
const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// metrics aggregates results across workers.
type metrics struct {
	total  atomic.Int64
	errors atomic.Int64

	mu        sync.Mutex
	histogram *hdrhistogram.Histogram

	startTime time.Time
	endTime   time.Time
}

func newMetrics() *metrics {
	return &metrics{
		histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3),
	}
}

func (m *metrics) start() { m.startTime = time.Now() }
func (m *metrics) stop()  { m.endTime = time.Now() }

func (m *metrics) record(duration time.Duration, err error) {
	m.total.Add(1)
	if err != nil {
		m.errors.Add(1)
		return
	}

	latencyUs := duration.Microseconds()
	if latencyUs < minLatencyUs {
		latencyUs = minLatencyUs
	}
	if latencyUs > maxLatencyUs {
		latencyUs = maxLatencyUs
	}

	m.mu.Lock()
	_ = m.histogram.RecordValue(latencyUs)
	m.mu.Unlock()
}

// Report is the aggregated outcome of a bench run.
type Report struct {
	Total   int64
	Errors  int64
	Elapsed time.Duration

	Min  time.Duration
	Mean time.Duration
	Max  time.Duration
	P50  time.Duration
	P90  time.Duration
	P95  time.Duration
	P99  time.Duration

	RPS float64
}

func (m *metrics) report() *Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	elapsed := m.endTime.Sub(m.startTime)
	r := &Report{
		Total:   m.total.Load(),
		Errors:  m.errors.Load(),
		Elapsed: elapsed,
	}

	if m.histogram.TotalCount() > 0 {
		us := func(v int64) time.Duration { return time.Duration(v) * time.Microsecond }
		r.Min = us(m.histogram.Min())
		r.Mean = time.Duration(m.histogram.Mean()) * time.Microsecond
		r.Max = us(m.histogram.Max())
		r.P50 = us(m.histogram.ValueAtQuantile(50))
		r.P90 = us(m.histogram.ValueAtQuantile(90))
		r.P95 = us(m.histogram.ValueAtQuantile(95))
		r.P99 = us(m.histogram.ValueAtQuantile(99))
	}

	if elapsed > 0 {
		r.RPS = float64(r.Total) / elapsed.Seconds()
	}
	return r
}
