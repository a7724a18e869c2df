// Package http provides an HTTP-based implementation of
// latexworkshop.CatalogService backed by the CTAN JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	latexworkshop "github.com/Jeff-Tian/LaTeX-Workshop"
)

// DefaultCatalogURL is the CTAN endpoint listing every package together
// with its one-line caption.
const DefaultCatalogURL = "https://ctan.org/json/2.0/packages"

// DefaultFetchTimeout is the default timeout for catalog requests. The
// full package list weighs a few megabytes, so it is generous.
const DefaultFetchTimeout = 30 * time.Second

// Ensure CatalogService implements latexworkshop.CatalogService at compile time.
var _ latexworkshop.CatalogService = (*CatalogService)(nil)

// CatalogService retrieves the CTAN package catalog over HTTP.
type CatalogService struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// Option configures a CatalogService.
type Option func(*CatalogService)

// WithTimeout sets the timeout for catalog requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *CatalogService) {
		s.timeout = d
	}
}

// WithURL sets the catalog endpoint. Defaults to DefaultCatalogURL.
func WithURL(url string) Option {
	return func(s *CatalogService) {
		s.url = url
	}
}

// NewCatalogService creates a new HTTP-based CatalogService.
func NewCatalogService(opts ...Option) *CatalogService {
	s := &CatalogService{
		url:     DefaultCatalogURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// FetchPackages downloads the package list and turns it into a
// completion table keyed by package name.
func (s *CatalogService) FetchPackages(ctx context.Context) (latexworkshop.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, s.url)
	}

	var entries []latexworkshop.CatalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, latexworkshop.Errorf(latexworkshop.EINVALID, "malformed catalog response: %v", err)
	}

	return latexworkshop.BuildCatalog(entries)
}
