package database

import (
	"time"
)

// Episode represents a podcast episode record in the database
type Episode struct {
	ID          int64
	Title       string
	Description string
	AudioURL    string
	GUID        string
	FeedURL     string
	PubDate     time.Time
}

// Source represents a registered feed URL in the database
type Source struct {
	ID          int64
	URL         string
	LastUpdated *time.Time // nil until the first successful ingestion
}
