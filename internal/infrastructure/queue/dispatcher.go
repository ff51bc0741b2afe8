package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/core/ports"
	"github.com/pooja-dev3/erp-lead-admin-sub000/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes export tasks to a fixed set of workers using consistent
// hashing on the session id, so one user's exports run in request order.
type Dispatcher struct {
	workers   []chan ports.ExportTask
	processor ports.ExportProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.ExportProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.ExportTask, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ExportTask, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a task to the worker responsible for its session. It blocks
// while that worker's buffer is full, until ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, task ports.ExportTask) error {
	idx := d.shardIndex(shardKey(task))
	select {
	case d.workers[idx] <- task:
		d.observeDepth(idx)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func shardKey(task ports.ExportTask) string {
	if task.Session != nil {
		return task.Session.ID
	}
	return task.JobID
}

// shardIndex maps a session id deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) observeDepth(id int) {
	metrics.ExportQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(d.workers[id])))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ExportTask) {
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-ch:
			if !ok {
				return
			}
			d.observeDepth(id)
			if err := d.processor.Process(ctx, task); err != nil {
				d.log.Error().Err(err).
					Str("job_id", task.JobID).
					Str("resource", string(task.Resource)).
					Int("worker_id", id).
					Msg("export processing failed")
			}
		}
	}
}
