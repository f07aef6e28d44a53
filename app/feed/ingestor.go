package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/podscout/podscout/app/database"
)

// Ingestor pulls a podcast feed into the store.
type Ingestor struct {
	fetcher   *Fetcher
	validator *Validator
	episodes  database.EpisodeStore
}

func NewIngestor(fetcher *Fetcher, validator *Validator, episodes database.EpisodeStore) *Ingestor {
	return &Ingestor{
		fetcher:   fetcher,
		validator: validator,
		episodes:  episodes,
	}
}

// Ingest fetches feedURL, validates it as a podcast feed and upserts its
// episodes together with the source's last_updated marker in one
// transaction. Returns the number of episodes written; failures are typed as
// *FetchError, *InvalidFeedError or *StorageError.
func (in *Ingestor) Ingest(ctx context.Context, feedURL string) (int, error) {
	data, err := in.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return 0, err
	}

	validation := in.validator.Validate(data)
	if !validation.Valid {
		return 0, &InvalidFeedError{URL: feedURL, Reason: validation.Reason}
	}

	episodes := make([]database.EpisodeUpsert, 0, len(validation.Entries))
	for _, entry := range validation.Entries {
		// The validator already drops incomplete entries; re-check before
		// handing them to the store's CHECK constraints.
		if entry.GUID == "" {
			slog.Warn("Skipping entry without guid", "feed", feedURL, "title", entry.Title)
			continue
		}
		if entry.AudioURL == "" {
			slog.Warn("Skipping entry without audio enclosure", "feed", feedURL, "guid", entry.GUID)
			continue
		}

		episodes = append(episodes, database.EpisodeUpsert{
			Title:       sanitizeText(entry.Title),
			Description: sanitizeText(entry.Description),
			AudioURL:    entry.AudioURL,
			GUID:        entry.GUID,
			PubDate:     entry.Published,
		})
	}

	written, err := in.episodes.SaveEpisodes(ctx, feedURL, episodes, time.Now())
	if err != nil {
		return 0, &StorageError{URL: feedURL, Err: err}
	}

	slog.Info("Feed ingested",
		"feed", feedURL,
		"entries", len(validation.Entries),
		"written", written)

	return written, nil
}
