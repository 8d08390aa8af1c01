// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads corpus snapshot files over HTTP into the data
// directory, from where the store ingests them. The engine itself never
// performs network I/O; fetching happens before a search begins.
// Implements: prd013-snapshot-fetch (R1-R3).
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirajlabs/siraj/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// Fetcher downloads corpus snapshots.
type Fetcher struct {
	Client *http.Client
	Config types.FetchConfig
}

// NewFetcher builds a fetcher with a timeout-bounded client.
func NewFetcher(cfg types.FetchConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Fetcher{
		Client: &http.Client{Timeout: timeout},
		Config: cfg,
	}
}

// snapshotURL returns the configured endpoint for a corpus, or "" when
// fetching is disabled for it.
func (f *Fetcher) snapshotURL(corpus types.CorpusType) string {
	switch corpus {
	case types.CorpusFact:
		return f.Config.FactsURL
	case types.CorpusVerse:
		return f.Config.VersesURL
	case types.CorpusNarration:
		return f.Config.NarrationsURL
	}
	return ""
}

// Download fetches the snapshot for corpus and writes it to dst. The file
// is written atomically via a temp file so a failed download never
// clobbers a previously ingested snapshot (R1.3).
func (f *Fetcher) Download(ctx context.Context, corpus types.CorpusType, dst string) error {
	url := f.snapshotURL(corpus)
	if url == "" {
		return fmt.Errorf("no snapshot URL configured for corpus %s", corpus)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.Config.UserAgent)
	if f.Config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+f.Config.APIToken)
	}

	resp, err := f.doWithRetry(ctx, req, f.Config.MaxRetries)
	if err != nil {
		return fmt.Errorf("downloading %s snapshot: %w", corpus, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s snapshot endpoint returned HTTP %d", corpus, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}
	return os.Rename(tmp.Name(), dst)
}

// doWithRetry executes the request and retries on HTTP 429 with
// exponential backoff starting at RetryBaseDelay. After exhausting
// retries the last 429 response is returned so the caller can inspect it.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := f.Client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
