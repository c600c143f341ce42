package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/smarthome/building-dashboard/internal/api/metrics"
	"github.com/smarthome/building-dashboard/internal/core/domain"
	"github.com/smarthome/building-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLatency delays every command by d before it is applied, standing in
// for the round trip to the physical device.
func WithLatency(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.latency = d }
}

// WithClock replaces the wall clock used for latency and timings.
func WithClock(c clock.Clock) Option {
	return func(disp *Dispatcher) { disp.clock = c }
}

// WithBuffer sets the capacity of each worker channel.
func WithBuffer(n int) Option {
	return func(disp *Dispatcher) {
		if n > 0 {
			disp.buffer = n
		}
	}
}

// Dispatcher routes device commands to a fixed set of workers using consistent
// hashing on the device id, guaranteeing per-device command ordering.
type Dispatcher struct {
	workers []chan ports.DeviceCommand
	service ports.DeviceService
	log     zerolog.Logger
	latency time.Duration
	clock   clock.Clock
	buffer  int
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.DeviceService, log zerolog.Logger, opts ...Option) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.DeviceCommand, numWorkers),
		service: service,
		log:     log,
		clock:   clock.New(),
		buffer:  channelBuffer,
	}
	for _, opt := range opts {
		opt(d)
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DeviceCommand, d.buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go func(id int, ch <-chan ports.DeviceCommand) {
			defer d.wg.Done()
			d.runWorker(ctx, id, ch)
		}(i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands cmd to the worker responsible for its device. It never
// blocks: a full worker channel yields domain.ErrCommandQueueFull.
func (d *Dispatcher) Enqueue(cmd ports.DeviceCommand) error {
	idx := d.shardIndex(cmd.DeviceID)
	select {
	case d.workers[idx] <- cmd:
		metrics.DeviceQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		metrics.DeviceCommandsTotal.WithLabelValues(string(cmd.DeviceType), "dropped").Inc()
		return domain.ErrCommandQueueFull
	}
}

// shardIndex maps a device id deterministically to a worker index.
func (d *Dispatcher) shardIndex(deviceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(deviceID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DeviceCommand) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case cmd, ok := <-ch:
			if !ok {
				return
			}
			metrics.DeviceQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			d.process(ctx, workerID, cmd)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, workerID string, cmd ports.DeviceCommand) {
	start := d.clock.Now()

	if err := d.wait(ctx); err != nil {
		metrics.DeviceCommandsTotal.WithLabelValues(string(cmd.DeviceType), "dropped").Inc()
		return
	}

	if err := d.service.Apply(ctx, cmd); err != nil {
		metrics.DeviceCommandsTotal.WithLabelValues(string(cmd.DeviceType), "failed").Inc()
		d.log.Error().Err(err).
			Str("command", cmd.ID).
			Str("device", cmd.DeviceID).
			Str("worker_id", workerID).
			Msg("device command failed")
		return
	}

	metrics.DeviceCommandsTotal.WithLabelValues(string(cmd.DeviceType), "applied").Inc()
	metrics.DeviceCommandDuration.WithLabelValues(string(cmd.DeviceType)).Observe(d.clock.Since(start).Seconds())
}

func (d *Dispatcher) wait(ctx context.Context) error {
	if d.latency <= 0 {
		return nil
	}
	t := d.clock.Timer(d.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
