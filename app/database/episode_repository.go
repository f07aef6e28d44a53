package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// EpisodeRepository handles database operations for podcast episodes
type EpisodeRepository struct {
	db *DB
}

// NewEpisodeRepository creates a new episode repository
func NewEpisodeRepository(db *DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

var _ EpisodeStore = (*EpisodeRepository)(nil)

// SaveEpisodes upserts all episodes keyed by guid and advances the source's
// last_updated marker, all inside a single transaction: either every write
// is applied or none are. New rows without a publication date get the
// ingestion timestamp; existing rows keep their stored date when the feed
// still provides none, so re-ingesting an unchanged feed leaves episode rows
// untouched.
func (r *EpisodeRepository) SaveEpisodes(ctx context.Context, feedURL string, episodes []EpisodeUpsert, ingestedAt time.Time) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	written := 0
	for _, ep := range episodes {
		pubDate := nullableTime(ep.PubDate)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO podcasts (title, description, audio_url, guid, feed_url, pub_date)
			VALUES (?, ?, ?, ?, ?, COALESCE(?, ?))
			ON CONFLICT (guid) DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				audio_url = EXCLUDED.audio_url,
				feed_url = EXCLUDED.feed_url,
				pub_date = COALESCE(?, pub_date)
		`, ep.Title, ep.Description, ep.AudioURL, ep.GUID, feedURL,
			pubDate, formatTime(ingestedAt), pubDate)
		if err != nil {
			if isConstraintErr(err) {
				return 0, fmt.Errorf("episode %q rejected by constraint: %w", ep.GUID, err)
			}
			return 0, fmt.Errorf("failed to upsert episode %q: %w", ep.GUID, err)
		}
		written++
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rss_sources (url, last_updated)
		VALUES (?, ?)
		ON CONFLICT (url) DO UPDATE SET last_updated = EXCLUDED.last_updated
	`, feedURL, formatTime(ingestedAt))
	if err != nil {
		return 0, fmt.Errorf("failed to update source %s: %w", feedURL, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return written, nil
}

// ListEpisodes returns the most recently published episodes, newest first
func (r *EpisodeRepository) ListEpisodes(ctx context.Context, limit int) ([]Episode, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+episodeColumns+`
		FROM podcasts
		ORDER BY pub_date DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		episode, err := scanEpisode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode row: %w", err)
		}
		episodes = append(episodes, episode)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating episode rows: %w", err)
	}

	return episodes, nil
}

// GetEpisodeCount returns the total number of stored episodes
func (r *EpisodeRepository) GetEpisodeCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM podcasts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get episode count: %w", err)
	}
	return count, nil
}

const episodeColumns = "id, title, description, audio_url, guid, feed_url, pub_date"

func scanEpisode(scanner interface{ Scan(dest ...any) error }) (Episode, error) {
	var episode Episode
	var pubDate string

	if err := scanner.Scan(
		&episode.ID, &episode.Title, &episode.Description,
		&episode.AudioURL, &episode.GUID, &episode.FeedURL, &pubDate,
	); err != nil {
		return Episode{}, err
	}

	t, err := parseTime(pubDate)
	if err != nil {
		return Episode{}, fmt.Errorf("invalid pub_date %q: %w", pubDate, err)
	}
	episode.PubDate = t

	return episode, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func isConstraintErr(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
