package database

import (
	"context"
	"database/sql"
	"fmt"
)

// SourceRepository handles database operations for registered feed sources
type SourceRepository struct {
	db *DB
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *DB) *SourceRepository {
	return &SourceRepository{db: db}
}

var _ SourceStore = (*SourceRepository)(nil)

// RegisterSource records a feed URL without touching last_updated, so a
// source can exist before its first successful ingestion. Registering an
// already known URL is a no-op.
func (r *SourceRepository) RegisterSource(ctx context.Context, url string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rss_sources (url)
		VALUES (?)
		ON CONFLICT (url) DO NOTHING
	`, url)
	if err != nil {
		return fmt.Errorf("failed to register source %s: %w", url, err)
	}
	return nil
}

// ListSources returns all registered sources in registration order
func (r *SourceRepository) ListSources(ctx context.Context) ([]Source, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, url, last_updated
		FROM rss_sources
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	var sources []Source
	for rows.Next() {
		var source Source
		var lastUpdated sql.NullString
		if err := rows.Scan(&source.ID, &source.URL, &lastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		if lastUpdated.Valid {
			t, err := parseTime(lastUpdated.String)
			if err != nil {
				return nil, fmt.Errorf("invalid last_updated %q: %w", lastUpdated.String, err)
			}
			source.LastUpdated = &t
		}
		sources = append(sources, source)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source rows: %w", err)
	}

	return sources, nil
}

// GetSourceCount returns the total number of registered sources
func (r *SourceRepository) GetSourceCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rss_sources").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get source count: %w", err)
	}
	return count, nil
}
