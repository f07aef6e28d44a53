package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/podscout/podscout/app/feed"
)

type IngestFeedTask struct {
	Task
	ingestor *feed.Ingestor
}

func NewIngestFeedTask(feedURL string, ingestor *feed.Ingestor) *IngestFeedTask {
	return &IngestFeedTask{
		Task:     NewTask(TaskTypeIngestFeed, feedURL),
		ingestor: ingestor,
	}
}

func (t *IngestFeedTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	written, err := t.ingestor.Ingest(ctx, t.FeedURL)
	if err != nil {
		return fmt.Errorf("failed to ingest feed: %w", err)
	}

	slog.Info("Task completed",
		"type", "IngestFeed",
		"feed", t.FeedURL,
		"duration", t.GetDuration(),
		"written", written)

	return nil
}
