package feed

import (
	"fmt"
)

// FetchError reports a failure to retrieve a URL: a network error, a timeout,
// a non-2xx status, or an oversized response body.
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// InvalidFeedError reports data that was retrieved but could not be accepted
// as a podcast feed.
type InvalidFeedError struct {
	URL    string
	Reason string
}

func (e *InvalidFeedError) Error() string {
	return fmt.Sprintf("invalid feed %s: %s", e.URL, e.Reason)
}

// StorageError reports a failed ingestion transaction.
type StorageError struct {
	URL string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store feed %s: %v", e.URL, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
