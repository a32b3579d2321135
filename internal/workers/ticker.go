package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cloud-editor/internal/logger"
)

// Job is one tick of a [Ticker].
type Job func(ctx context.Context) error

// Ticker calls a job at a fixed interval. A zero or negative interval
// disables it: Run returns without starting anything.
type Ticker struct {
	name     string
	interval time.Duration
	job      Job

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewTicker(name string, interval time.Duration, job Job, logger *logger.Logger) *Ticker {
	return &Ticker{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

// Run stops a previous run, then starts calling the job every interval until
// ctx is canceled or Stop is called. Job errors are logged and do not stop
// the ticker.
func (t *Ticker) Run(ctx context.Context) {
	if t.interval <= 0 {
		return
	}

	t.Stop()

	t.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(t.interval)
		defer tick.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-tick.C:
				if err := t.job(jobCtx); err != nil {
					t.logger.Err(err).
						Str("func", "Ticker.Run").
						Str("worker", t.name).
						Msg("background job failed")
				}
			}
		}
	}()
}

// Stop cancels the running loop and waits for it. Safe to call when the
// ticker is not running.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	t.wg.Wait()
}
