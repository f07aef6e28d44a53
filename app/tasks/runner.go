package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ TaskRunnerInterface = (*Runner)(nil)

type Runner struct {
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewRunner(workerCount int) *Runner {
	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (r *Runner) Start() {
	for i := 0; i < r.workerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
	close(r.taskQueue)
}

func (r *Runner) EnqueueTask(task TaskInterface) error {
	select {
	case r.taskQueue <- task:
		return nil
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (r *Runner) worker(id int) {
	defer r.wg.Done()

	for {
		select {
		case task, ok := <-r.taskQueue:
			if !ok {
				return
			}
			r.executeTask(id, task)

		case <-r.ctx.Done():
			return
		}
	}
}

// executeTask runs a single task with a hard timeout. Failed tasks are
// logged and dropped, never re-enqueued.
func (r *Runner) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(r.ctx, time.Minute)
	defer cancel()

	if err := task.Execute(taskCtx); err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "feed", task.GetFeedURL(), "error", err)
	}
}
