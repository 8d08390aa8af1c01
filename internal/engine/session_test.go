// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/sirajlabs/siraj/pkg/types"
)

func TestSessionEditsDoNotSearch(t *testing.T) {
	reader := fullCorpora(3, 3, 3)
	s := NewSession(New(reader, types.EngineConfig{}), types.FilterState{Corpora: types.AllCorpora()})

	s.SetQuery("honey")
	s.SetFilters(types.FilterState{Corpora: []types.CorpusType{types.CorpusFact}})
	s.EditFilters(func(f *types.FilterState) {
		f.YearMin = 600
	})

	if reader.totalCalls() != 0 {
		t.Fatalf("edits performed %d corpus reads, want 0", reader.totalCalls())
	}

	query, filters := s.Pending()
	if query != "honey" {
		t.Errorf("pending query = %q, want honey", query)
	}
	if filters.YearMin != 600 || len(filters.Corpora) != 1 {
		t.Errorf("pending filters = %+v, want year-min 600 and one corpus", filters)
	}
}

func TestSessionCommitRunsPendingState(t *testing.T) {
	reader := fullCorpora(4, 0, 0)
	s := NewSession(New(reader, types.EngineConfig{}), types.FilterState{
		Corpora: []types.CorpusType{types.CorpusFact},
	})

	out, err := s.Commit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out.ActualCount != 4 {
		t.Errorf("ActualCount = %d, want 4", out.ActualCount)
	}
	if reader.factCalls != 1 {
		t.Errorf("factCalls = %d, want 1", reader.factCalls)
	}
}

// gatedReader blocks the first facts fetch until released, letting a test
// interleave a second commit while the first is still in flight.
type gatedReader struct {
	mockReader
	gate    chan struct{}
	started chan struct{}
	once    bool
}

func (g *gatedReader) FetchFacts(ctx context.Context, hints types.FilterState) ([]types.FactRecord, error) {
	if !g.once {
		g.once = true
		close(g.started)
		<-g.gate
	}
	return g.mockReader.FetchFacts(ctx, hints)
}

func TestSessionSupersededCommit(t *testing.T) {
	reader := &gatedReader{
		mockReader: *fullCorpora(2, 0, 0),
		gate:       make(chan struct{}),
		started:    make(chan struct{}),
	}
	s := NewSession(New(reader, types.EngineConfig{}), types.FilterState{
		Corpora: []types.CorpusType{types.CorpusFact},
	})

	type result struct {
		out Output
		err error
	}
	first := make(chan result, 1)
	go func() {
		out, err := s.Commit(context.Background())
		first <- result{out, err}
	}()

	// Wait until the first commit is blocked inside the corpus read, then
	// run a second commit to completion.
	<-reader.started
	out2, err := s.Commit(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out2.ActualCount != 2 {
		t.Errorf("second commit ActualCount = %d, want 2", out2.ActualCount)
	}

	close(reader.gate)
	got := <-first
	if !errors.Is(got.err, ErrSuperseded) {
		t.Fatalf("first commit err = %v, want ErrSuperseded", got.err)
	}
}
