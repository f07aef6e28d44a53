package tasks

// TaskRunnerInterface defines the interface for background task execution.
// Used by the main application and the API handlers to hand work to the
// worker pool.
// Example usage:
//
//	runner := NewRunner(workerCount)
//	runner.Start()
//	defer runner.Stop()
//	runner.EnqueueTask(NewIngestFeedTask(...))
type TaskRunnerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
