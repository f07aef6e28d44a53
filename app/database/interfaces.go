package database

import (
	"context"
	"time"
)

// EpisodeUpsert carries one validated feed entry into the store. PubDate is
// nil when the feed did not provide a usable publication date; the store then
// falls back to the ingestion timestamp for new rows and keeps the previously
// stored date for existing ones.
type EpisodeUpsert struct {
	Title       string
	Description string
	AudioURL    string
	GUID        string
	PubDate     *time.Time
}

type EpisodeStore interface {
	SaveEpisodes(ctx context.Context, feedURL string, episodes []EpisodeUpsert, ingestedAt time.Time) (int, error)
	ListEpisodes(ctx context.Context, limit int) ([]Episode, error)
	GetEpisodeCount(ctx context.Context) (int, error)
}

type SourceStore interface {
	RegisterSource(ctx context.Context, url string) error
	ListSources(ctx context.Context) ([]Source, error)
	GetSourceCount(ctx context.Context) (int, error)
}
