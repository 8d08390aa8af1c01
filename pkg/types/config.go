// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "siraj/0.1"). Per prd013-snapshot-fetch R2.3.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EngineConfig holds settings for the search engine.
// Per prd011-search-engine R5.1-R5.3.
type EngineConfig struct {
	// MaxResults is the default result cap when FilterState does not set
	// one (default 1000).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// SortBy is the default sort key for new sessions (default relevance).
	SortBy SortKey `json:"sort_by,omitempty" yaml:"sort_by,omitempty"`

	// Order is the default sort direction for new sessions.
	Order SortOrder `json:"order,omitempty" yaml:"order,omitempty"`
}

// StoreConfig holds settings for the corpus store.
// Per prd012-corpus-store R1.1.
type StoreConfig struct {
	// DataDir is the base data directory (contains corpora/, index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// FetchConfig holds settings for downloading corpus snapshots.
// Per prd013-snapshot-fetch R1.1-R1.4.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// FactsURL, VersesURL, and NarrationsURL are the snapshot endpoints.
	// An empty URL disables fetching for that corpus.
	FactsURL      string `json:"facts_url,omitempty" yaml:"facts_url,omitempty"`
	VersesURL     string `json:"verses_url,omitempty" yaml:"verses_url,omitempty"`
	NarrationsURL string `json:"narrations_url,omitempty" yaml:"narrations_url,omitempty"`

	// APIToken authenticates snapshot downloads when the host requires it.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`

	// MaxRetries bounds retry attempts on rate-limited downloads (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// Config groups all component configurations.
type Config struct {
	Engine EngineConfig `json:"engine" yaml:"engine"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
}
