package feed

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchSuccess(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("feed body"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.Client(), "TestAgent/1.0", 2*time.Second)
	data, err := fetcher.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(data) != "feed body" {
		t.Errorf("Expected body 'feed body', got %q", data)
	}
	if gotUserAgent != "TestAgent/1.0" {
		t.Errorf("Expected user agent header to be sent, got %q", gotUserAgent)
	}
}

func TestFetchNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.Client(), "TestAgent/1.0", 2*time.Second)
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status code 404, got %d", fetchErr.StatusCode)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.Client(), "TestAgent/1.0", 50*time.Millisecond)
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Expected timeout error")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded in error chain, got %v", err)
	}
}

func TestFetchRejectsDeclaredOversize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "20000000")
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.Client(), "TestAgent/1.0", 2*time.Second)
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Expected error for oversized declared length")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), MaxFeedSize+1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	fetcher := NewFetcher(srv.Client(), "TestAgent/1.0", 10*time.Second)
	_, err := fetcher.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("Expected error for oversized body")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	fetcher := NewFetcher(&http.Client{}, "TestAgent/1.0", 2*time.Second)
	_, err := fetcher.Fetch(context.Background(), url)
	if err == nil {
		t.Fatal("Expected error for unreachable host")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %T", err)
	}
	if fetchErr.URL != url {
		t.Errorf("Expected error to carry the URL %s, got %s", url, fetchErr.URL)
	}
}
