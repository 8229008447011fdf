package mensa

import (
	"context"
	"fmt"
	"time"

	"github.com/mensaplan/mensaplan/pkg/fetcher"
)

// Config holds Client configuration.
type Config struct {
	UserAgent string
	Timeout   time.Duration

	// Fetcher overrides the default static HTTP fetcher.
	Fetcher fetcher.Fetcher
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

// Option configures a Client.
type Option func(*Config)

// WithFetcher injects a custom page fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}

// WithUserAgent sets the HTTP user agent.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// Client fetches and parses weekly canteen menus. The zero-config
// client fetches the provider's live pages; inject a Fetcher to serve
// documents from elsewhere (tests, caches).
type Client struct {
	fetcher fetcher.Fetcher
	config  Config
}

// New creates a Client.
func New(opts ...Option) *Client {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := cfg.Fetcher
	if f == nil {
		f = fetcher.NewStatic(fetcher.StaticConfig{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
	}

	return &Client{fetcher: f, config: cfg}
}

// GetMenu fetches the current week's menu page of the given canteen
// and extracts it. Retrieval failures surface as errors; extraction
// behaves as documented on ParseMenu.
func (c *Client) GetMenu(ctx context.Context, canteen Canteen) (*Result, error) {
	page, err := c.fetcher.FetchMenu(ctx, canteen.Slug(), fetcher.Options{
		UserAgent: c.config.UserAgent,
		Timeout:   c.config.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu page: %w", err)
	}
	return ParseMenu(page.HTML, canteen)
}

// Close releases fetcher resources.
func (c *Client) Close() error {
	if c.fetcher != nil {
		return c.fetcher.Close()
	}
	return nil
}
