package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/podscout/podscout/app/database"
	"github.com/podscout/podscout/app/feed"
	"github.com/podscout/podscout/app/tasks"
)

func NewHandler(episodeRepo database.EpisodeStore, sourceRepo database.SourceStore,
	discoverer *feed.Discoverer, ingestor *feed.Ingestor,
	runner tasks.TaskRunnerInterface, version string) *Handler {
	return &Handler{
		episodeRepo: episodeRepo,
		sourceRepo:  sourceRepo,
		discoverer:  discoverer,
		ingestor:    ingestor,
		runner:      runner,
		version:     version,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if episodeCount, err := h.episodeRepo.GetEpisodeCount(c.Request.Context()); err == nil {
		health["episodes"] = episodeCount
	}

	if sourceCount, err := h.sourceRepo.GetSourceCount(c.Request.Context()); err == nil {
		health["sources"] = sourceCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	episodeCount, err := h.episodeRepo.GetEpisodeCount(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "get_episode_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	sourceCount, err := h.sourceRepo.GetSourceCount(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "get_source_count", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"service":  "PodScout",
		"version":  h.version,
		"episodes": episodeCount,
		"sources":  sourceCount,
	})
}

// APIDiscover scans a web page for podcast feeds. Unreachable pages are not
// an error to the caller, they simply yield an empty result.
func (h *Handler) APIDiscover(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid url parameter"})
		return
	}

	feeds := h.discoverer.Discover(c.Request.Context(), req.URL)
	if feeds == nil {
		feeds = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  req.URL,
		"feeds": feeds,
		"count": len(feeds),
	})
}

// APIIngestFeed fetches, validates and stores a single feed synchronously.
func (h *Handler) APIIngestFeed(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid url parameter"})
		return
	}

	written, err := h.ingestor.Ingest(c.Request.Context(), req.URL)
	if err != nil {
		var fetchErr *feed.FetchError
		var invalidErr *feed.InvalidFeedError

		status := http.StatusInternalServerError
		switch {
		case errors.As(err, &fetchErr):
			status = http.StatusBadGateway
		case errors.As(err, &invalidErr):
			status = http.StatusUnprocessableEntity
		}

		slog.Error("Feed ingestion failed", "feed", req.URL, "error", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feed":     req.URL,
		"episodes": written,
	})
}

func (h *Handler) APIListEpisodes(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}
	if limit > 100 {
		limit = 100
	}

	episodes, err := h.episodeRepo.ListEpisodes(c.Request.Context(), limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_episodes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]map[string]interface{}, 0, len(episodes))
	for _, episode := range episodes {
		items = append(items, map[string]interface{}{
			"id":          episode.ID,
			"title":       episode.Title,
			"description": episode.Description,
			"audio_url":   episode.AudioURL,
			"guid":        episode.GUID,
			"feed_url":    episode.FeedURL,
			"pub_date":    episode.PubDate.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"episodes": items,
		"count":    len(items),
	})
}

func (h *Handler) APIListSources(c *gin.Context) {
	sources, err := h.sourceRepo.ListSources(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "list_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	feeds := make([]map[string]interface{}, 0, len(sources))
	for _, source := range sources {
		info := map[string]interface{}{
			"id":           source.ID,
			"url":          source.URL,
			"last_updated": nil,
		}
		if source.LastUpdated != nil {
			info["last_updated"] = source.LastUpdated.Format(time.RFC3339)
		}
		feeds = append(feeds, info)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"feeds": feeds,
		"total": len(feeds),
	})
}

// APIRefresh enqueues one ingest task per registered source. Sources that
// cannot be enqueued are logged and skipped, the batch is never aborted.
func (h *Handler) APIRefresh(c *gin.Context) {
	sources, err := h.sourceRepo.ListSources(c.Request.Context())
	if err != nil {
		slog.Error("Database error", "operation", "list_sources", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	queued := 0
	for _, source := range sources {
		task := tasks.NewIngestFeedTask(source.URL, h.ingestor)
		if err := h.runner.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue IngestFeedTask", "feed", source.URL, "error", err)
			continue
		}
		queued++
	}

	c.JSON(http.StatusAccepted, gin.H{
		"queued": queued,
		"total":  len(sources),
	})
}
