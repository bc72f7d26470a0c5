package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrQueueFull = errors.New("job queue is full")

// Job represents one deferred unit of work.
type Job struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Queue runs enqueued jobs sequentially on a single worker goroutine.
// A whole batch is one job, so jobs never overlap each other.
type Queue struct {
	jobs   chan Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewQueue creates a queue holding at most capacity pending jobs.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 64
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Queue{
		jobs:   make(chan Job, capacity),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the worker goroutine.
func (q *Queue) Start() {
	q.once.Do(func() {
		q.wg.Add(1)
		go q.run()
	})
	slog.Info("Job queue started", "capacity", cap(q.jobs))
}

// Stop stops the worker after the in-flight job finishes. Pending jobs
// left in the channel are discarded.
func (q *Queue) Stop() {
	slog.Info("Stopping job queue...")
	q.cancel()
	q.wg.Wait()
	slog.Info("Job queue stopped")
}

// Enqueue schedules a job without blocking the caller.
func (q *Queue) Enqueue(name string, fn func(ctx context.Context) error) error {
	select {
	case q.jobs <- Job{Name: name, Fn: fn}:
		slog.Debug("Job enqueued", "name", name)
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *Queue) run() {
	defer q.wg.Done()

	for {
		select {
		case <-q.ctx.Done():
			return
		case job := <-q.jobs:
			q.execute(job)
		}
	}
}

func (q *Queue) execute(job Job) {
	start := time.Now()
	slog.Debug("Job starting", "name", job.Name)

	if err := job.Fn(q.ctx); err != nil {
		slog.Error("Job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunPending executes all currently queued jobs on the caller's goroutine
// (useful for testing).
func (q *Queue) RunPending(ctx context.Context) {
	for {
		select {
		case job := <-q.jobs:
			if err := job.Fn(ctx); err != nil {
				slog.Error("Job failed", "name", job.Name, "error", err)
			}
		default:
			return
		}
	}
}
