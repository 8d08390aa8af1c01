// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"errors"
	"fmt"

	"github.com/sirajlabs/siraj/pkg/types"
)

// ErrSuperseded is returned by Session.Commit when a newer commit was
// issued before this one finished. The stale output is discarded rather
// than raced into the caller.
var ErrSuperseded = errors.New("search superseded by a newer commit")

// CorpusError wraps a corpus-read failure. The whole search call fails:
// relevance ranking and percentage statistics are only meaningful with
// full corpus participation, so partial results are never returned.
type CorpusError struct {
	Corpus types.CorpusType
	Err    error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus %s unavailable: %v", e.Corpus, e.Err)
}

func (e *CorpusError) Unwrap() error { return e.Err }
