package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/mensaplan/mensaplan/internal/logger"
)

// baseURL is the provider's weekly menu page pattern. The "-w" suffix
// selects the current week.
const baseURL = "https://www.studierendenwerk-aachen.de/speiseplaene/%s-w.html"

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// StaticConfig holds configuration for the static fetcher.
type StaticConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultStaticConfig returns sensible defaults.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// StaticFetcher retrieves menu pages over plain HTTP using Colly.
// It implements the Fetcher interface.
type StaticFetcher struct {
	config StaticConfig
}

// NewStatic creates a new static fetcher.
func NewStatic(cfg StaticConfig) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultStaticConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultStaticConfig().Timeout
	}
	return &StaticFetcher{config: cfg}
}

// MenuURL returns the weekly menu page URL for a canteen slug.
func MenuURL(slug string) string {
	return fmt.Sprintf(baseURL, slug)
}

// FetchMenu retrieves the current week's menu page for a canteen.
func (f *StaticFetcher) FetchMenu(ctx context.Context, slug string, opts Options) (Page, error) {
	targetURL := MenuURL(slug)
	logger.Debug("fetching menu page", "url", targetURL)

	result := Page{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	// A fresh collector per request keeps the fetcher stateless.
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = f.config.UserAgent
	}
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
	)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	c.SetRequestTimeout(timeout)

	if len(opts.Headers) > 0 {
		c.OnRequest(func(r *colly.Request) {
			for k, v := range opts.Headers {
				r.Headers.Set(k, v)
			}
		})
	}

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
		logger.Debug("menu page received",
			"status", r.StatusCode,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			result.StatusCode = r.StatusCode
		}
		fetchErr = fmt.Errorf("fetch error: %w", err)
		logger.Debug("menu page fetch error", "status", result.StatusCode, "error", err)
	})

	if err := c.Visit(targetURL); err != nil {
		return result, fmt.Errorf("failed to visit %s: %w", targetURL, err)
	}
	if fetchErr != nil {
		return result, fetchErr
	}

	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}
