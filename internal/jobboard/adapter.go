// Package jobboard integrates the external job board APIs. One Adapter per
// provider fetches a page of listings for a keyword/location query and
// normalizes the provider's JSON into the canonical posting shape.
package jobboard

import (
	"context"
	"net/http"
	"strings"

	"jobradar/internal/domain/posting"
	"jobradar/internal/pkg/config"
)

// Query is one keyword/location search request, 1-based page.
type Query struct {
	Keywords string
	Location string
	Page     int
}

// Page is the result of one adapter fetch: normalized postings plus the
// provider-reported total for the query.
type Page struct {
	Postings   []posting.JobPosting
	TotalCount int
}

// Adapter fetches one provider. Implementations skip silently (empty Page,
// nil error) when credentials are not configured; transport and decode
// failures are returned and contained by the Aggregator, never surfaced to
// its caller.
type Adapter interface {
	Source() posting.Source
	Fetch(ctx context.Context, q Query) (Page, error)
}

// NewHTTPClient builds the outbound client shared by all adapters. The
// timeout is a config knob; zero leaves the client without one.
func NewHTTPClient(cfg config.BoardsConfig) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

// NewAdapters wires every configured provider in a fixed order.
func NewAdapters(cfg config.BoardsConfig, client *http.Client) []Adapter {
	return []Adapter{
		NewAdzunaAdapter(cfg, client),
		NewReedAdapter(cfg, client),
		NewZipRecruiterAdapter(cfg, client),
	}
}

// queryKeywordList is the derived keyword list attached to stored postings.
func queryKeywordList(keywords string) []string {
	if keywords == "" {
		return nil
	}
	return strings.Fields(keywords)
}
