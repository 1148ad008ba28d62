// Package imagesearch aggregates stock-photo search results from
// Unsplash, Pexels and Pixabay for the vision board. Providers without
// an API key are skipped; a single failing provider does not fail the
// search.
package imagesearch

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"wedding-planner/internal/config"
	"wedding-planner/internal/logging"
)

// ErrNoProviders is returned when no provider has an API key configured.
var ErrNoProviders = errors.New("no image search providers configured")

// Image is one search result normalized across providers.
type Image struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description"`
	Credit       string `json:"credit"`
	CreditURL    string `json:"creditUrl"`
	Source       string `json:"source"`
}

type provider interface {
	name() string
	search(ctx context.Context, query string, perPage int) ([]Image, error)
}

// Client fans a query out to all configured providers.
type Client struct {
	providers   []provider
	perProvider int
	timeout     time.Duration
}

// New builds a Client from configuration. Providers are enabled by the
// presence of their API key.
func New(cfg config.ImageSearchConfig) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	c := &Client{
		perProvider: cfg.PerProvider,
		timeout:     cfg.Timeout,
	}
	if cfg.UnsplashKey != "" {
		c.providers = append(c.providers, &unsplashProvider{key: cfg.UnsplashKey, baseURL: unsplashBaseURL, client: httpClient})
	}
	if cfg.PexelsKey != "" {
		c.providers = append(c.providers, &pexelsProvider{key: cfg.PexelsKey, baseURL: pexelsBaseURL, client: httpClient})
	}
	if cfg.PixabayKey != "" {
		c.providers = append(c.providers, &pixabayProvider{key: cfg.PixabayKey, baseURL: pixabayBaseURL, client: httpClient})
	}
	return c
}

// Search queries every configured provider concurrently and merges the
// results, deduplicated by image URL. Provider failures are logged and
// skipped; Search fails only when no provider is configured.
func (c *Client) Search(ctx context.Context, query string) ([]Image, error) {
	if len(c.providers) == 0 {
		return nil, ErrNoProviders
	}

	var (
		mu      sync.Mutex
		results []Image
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range c.providers {
		p := p
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()

			images, err := p.search(pctx, query, c.perProvider)
			if err != nil {
				logging.FromContext(ctx).Warn("image search provider failed",
					"provider", p.name(), "error", err)
				return nil
			}

			mu.Lock()
			results = append(results, images...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dedupe(results), nil
}

func dedupe(images []Image) []Image {
	seen := make(map[string]bool, len(images))
	out := []Image{}
	for _, img := range images {
		if img.URL == "" || seen[img.URL] {
			continue
		}
		seen[img.URL] = true
		out = append(out, img)
	}
	return out
}
