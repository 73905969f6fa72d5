package collector

import (
	"context"
	"sync"
	"time"

	"codeberg.org/mutker/senecd/internal/device"
	"codeberg.org/mutker/senecd/internal/errors"
	"codeberg.org/mutker/senecd/internal/logger"
	"github.com/google/uuid"
)

// Collector polls a single device on a fixed interval and buffers each raw
// status record in arrival order for consumers to drain. A stopped
// Collector cannot be restarted; construct a new one instead.
type Collector struct {
	cfg     Config
	fetcher device.Fetcher
	queue   *fifo
	done    chan struct{}

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
}

func New(cfg Config, fetcher device.Fetcher) (*Collector, error) {
	errFactory := errors.New()

	if fetcher == nil {
		return nil, errFactory.WithMessage(errors.ErrInvalidArgument, "no fetcher provided")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Interval < RecommendedInterval {
		logger.Warn().
			Dur("interval", cfg.Interval).
			Dur("recommended", RecommendedInterval).
			Msg("Poll interval below the recommended minimum, this may disturb the device connection to the cloud")
	}

	return &Collector{
		cfg:     cfg,
		fetcher: fetcher,
		queue:   newFIFO(),
		done:    make(chan struct{}),
	}, nil
}

// Start launches the collection loop in its own goroutine. Calling Start a
// second time fails.
func (c *Collector) Start() error {
	errFactory := errors.New()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return errFactory.New(ErrAlreadyStarted)
	}
	c.started = true

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.run(ctx)

	return nil
}

// Stop requests a cooperative shutdown. An in-flight fetch is not
// interrupted; the loop exits once the current cycle completes or the
// interval sleep is woken. Safe to call more than once.
func (c *Collector) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Done is closed once the collection loop has exited. It never closes for
// a Collector that was not started.
func (c *Collector) Done() <-chan struct{} {
	return c.done
}

// AvailableData returns the number of buffered status records.
func (c *Collector) AvailableData() int {
	return c.queue.len()
}

// GetData returns the next status record in arrival order. With block set
// it waits until a record arrives; the wait also ends, returning nil, once
// the collector has stopped and the queue is drained. Without block it
// returns nil immediately on an empty queue.
func (c *Collector) GetData(block bool) device.RawStatus {
	return c.queue.pop(block)
}

// GetAllData drains the queue, returning records in arrival order. Records
// enqueued after the drain observes an empty queue are left for the next
// call.
func (c *Collector) GetAllData() []device.RawStatus {
	var all []device.RawStatus
	for {
		status := c.queue.pop(false)
		if status == nil {
			break
		}
		all = append(all, status)
	}

	return all
}

func (c *Collector) run(ctx context.Context) {
	defer close(c.done)
	defer c.queue.close()
	defer logger.Debug().Str("host", c.cfg.Host).Msg("collection loop stopped")

	logger.Debug().
		Str("host", c.cfg.Host).
		Dur("interval", c.cfg.Interval).
		Msg("collection loop started")

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}

		c.cycle(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// cycle performs one fetch and enqueues the result. Failures are contained
// here: they are logged and the cycle produces no data, the loop carries
// on.
func (c *Collector) cycle(ctx context.Context) {
	cycleID := uuid.NewString()

	status, err := c.collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// shutdown interrupted the fetch, not a cycle failure
			return
		}

		var domainErr errors.Error
		if errors.As(err, &domainErr) {
			logger.ErrorWithCode(domainErr).
				Str("cycle_id", cycleID).
				Str("host", c.cfg.Host).
				Msg("fetch cycle failed")
		} else {
			logger.Error().
				Err(err).
				Str("cycle_id", cycleID).
				Str("host", c.cfg.Host).
				Msg("fetch cycle failed")
		}

		return
	}

	c.queue.push(status)
	logger.Debug().
		Str("cycle_id", cycleID).
		Int("queued", c.queue.len()).
		Msg("data collected")
}

// collect invokes the fetcher synchronously with respect to the loop and
// enforces its contract: exactly one of status and error per call.
func (c *Collector) collect(ctx context.Context) (device.RawStatus, error) {
	errFactory := errors.New()

	status, err := c.fetcher.Fetch(ctx, c.cfg.Host)
	switch {
	case err != nil && status != nil:
		return nil, errFactory.WithData(ErrAdapterContract, "fetcher returned both data and an error")
	case err != nil:
		return nil, errFactory.Wrap(ErrFetchCycle, err)
	case status == nil:
		return nil, errFactory.WithData(ErrAdapterContract, "fetcher returned neither data nor an error")
	}

	return status, nil
}
