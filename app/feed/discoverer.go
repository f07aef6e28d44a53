package feed

import (
	"context"
	"log/slog"
)

// Discoverer finds podcast feeds advertised by or guessable from a web page.
type Discoverer struct {
	fetcher   *Fetcher
	validator *Validator
}

func NewDiscoverer(fetcher *Fetcher, validator *Validator) *Discoverer {
	return &Discoverer{
		fetcher:   fetcher,
		validator: validator,
	}
}

// Discover fetches pageURL, derives feed candidates from its HTML and
// returns the ones confirmed to be podcast feeds, in candidate order. An
// unreachable page yields an empty result. Unreachable candidates and
// candidates that are not podcast feeds are skipped; one bad candidate never
// aborts the scan.
func (d *Discoverer) Discover(ctx context.Context, pageURL string) []string {
	pageHTML, err := d.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		slog.Warn("Failed to fetch page", "url", pageURL, "error", err)
		return nil
	}

	var confirmed []string
	for _, candidate := range Candidates(pageURL, pageHTML) {
		data, err := d.fetcher.Fetch(ctx, candidate)
		if err != nil {
			slog.Debug("Skipping unreachable candidate", "url", candidate, "error", err)
			continue
		}

		validation := d.validator.Validate(data)
		if !validation.Valid {
			slog.Debug("Skipping candidate", "url", candidate, "reason", validation.Reason)
			continue
		}

		confirmed = append(confirmed, candidate)
	}

	return confirmed
}
