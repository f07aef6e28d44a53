package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/podscout/podscout/app/database"
)

type RegisterSourceTask struct {
	Task
	sources database.SourceStore
}

func NewRegisterSourceTask(feedURL string, sources database.SourceStore) *RegisterSourceTask {
	return &RegisterSourceTask{
		Task:    NewTask(TaskTypeRegisterSource, feedURL),
		sources: sources,
	}
}

func (t *RegisterSourceTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.sources.RegisterSource(ctx, t.FeedURL); err != nil {
		return fmt.Errorf("failed to register source: %w", err)
	}

	slog.Info("Task completed",
		"type", "RegisterSource",
		"feed", t.FeedURL,
		"duration", t.GetDuration())

	return nil
}
