// Package fetcher defines the interface for retrieving weekly menu
// pages. Implement the Fetcher interface to serve documents from a
// cache, fixture files, or an alternate mirror.
package fetcher

import (
	"context"
	"time"
)

// Fetcher abstracts menu page retrieval.
type Fetcher interface {
	// FetchMenu retrieves the current week's menu page for the canteen
	// identified by slug.
	FetchMenu(ctx context.Context, slug string, opts Options) (Page, error)

	// Close releases any resources.
	Close() error

	// Type returns a string identifying the fetcher type.
	Type() string
}

// Options controls fetching behavior.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string
}

// Page represents a fetched menu document.
type Page struct {
	URL         string
	HTML        string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}
