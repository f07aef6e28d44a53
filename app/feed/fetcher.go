package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxFeedSize is the largest response body accepted when fetching a page or
// feed, in bytes. Larger responses are rejected without being buffered in
// full.
const MaxFeedSize = 15_000_000

type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

func NewFetcher(httpClient *http.Client, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Fetch retrieves url and returns the response body. Every failure is
// reported as a *FetchError. Failed fetches are never retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	if resp.ContentLength > MaxFeedSize {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("declared size %d exceeds limit of %d bytes", resp.ContentLength, MaxFeedSize)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxFeedSize+1))
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(data) > MaxFeedSize {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("response exceeds limit of %d bytes", MaxFeedSize)}
	}

	return data, nil
}
