package api

import (
	"github.com/podscout/podscout/app/database"
	"github.com/podscout/podscout/app/feed"
	"github.com/podscout/podscout/app/tasks"
)

type Handler struct {
	episodeRepo database.EpisodeStore
	sourceRepo  database.SourceStore
	discoverer  *feed.Discoverer
	ingestor    *feed.Ingestor
	runner      tasks.TaskRunnerInterface
	version     string
}

type DiscoverRequest struct {
	URL string `json:"url" binding:"required"`
}

type IngestRequest struct {
	URL string `json:"url" binding:"required"`
}
