// Package bench repeatedly executes one built request descriptor and
// reports latency percentiles. It exists for quick "how does this endpoint
// behave under N requests" checks, not as a load-testing harness.
package bench

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/abdul-hamid-achik/requests/packages/requests"
)

// Config controls a bench run. Exactly one of Requests or Duration bounds
// the run; when both are set, whichever limit is reached first wins.
type Config struct {
	// Requests is the total number of requests to send. Zero means
	// unbounded (Duration must then be set).
	Requests int

	// Duration stops the run after this much wall time. Zero means no time
	// bound (Requests must then be set).
	Duration time.Duration

	// Concurrency is the number of workers. Defaults to 1.
	Concurrency int

	// Rate caps requests per second across all workers. Zero means
	// unlimited.
	Rate float64
}

func (c *Config) validate() error {
	if c.Requests <= 0 && c.Duration <= 0 {
		return fmt.Errorf("either a request count or a duration is required")
	}
	if c.Requests < 0 || c.Duration < 0 || c.Concurrency < 0 || c.Rate < 0 {
		return fmt.Errorf("bench settings must not be negative")
	}
	return nil
}

// Run executes req repeatedly per cfg and returns the aggregated report.
// Individual request failures are counted, not returned; only setup errors
// and context cancellation abort the run early.
func Run(ctx context.Context, client *requests.Client, req *requests.Request, cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = requests.DefaultClient
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var limiter *rate.Limiter
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}

	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	// Tickets bound the total request count; an unbuffered stream would
	// block forever for duration-only runs, so those get a nil channel and
	// workers run until the deadline fires.
	var tickets chan struct{}
	if cfg.Requests > 0 {
		tickets = make(chan struct{}, cfg.Requests)
		for i := 0; i < cfg.Requests; i++ {
			tickets <- struct{}{}
		}
		close(tickets)
	}

	m := newMetrics()
	m.start()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if tickets != nil {
					if _, ok := <-tickets; !ok {
						return
					}
				}
				if ctx.Err() != nil {
					return
				}
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						return
					}
				}

				start := time.Now()
				resp, err := client.Do(ctx, req)
				elapsed := time.Since(start)
				if err == nil && resp.IsServerError() {
					err = fmt.Errorf("server error: %s", resp.Status)
				}
				// A run cut short by the deadline should not count the
				// interrupted request as an endpoint failure.
				if err != nil && ctx.Err() != nil {
					return
				}
				m.record(elapsed, err)
			}
		}()
	}

	wg.Wait()
	m.stop()
	return m.report(), nil
}
