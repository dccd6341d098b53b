package retriever

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"samvidhan-ai-be/pkg/embedding"
)

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2}},
	}, nil
}

type stubSearcher struct {
	passages   []RetrievedPassage
	err        error
	lastLimit  int
	lastDomain string
}

func (s *stubSearcher) SearchSimilar(ctx context.Context, vector []float32, limit int, domain string) ([]RetrievedPassage, error) {
	s.lastLimit = limit
	s.lastDomain = domain
	if s.err != nil {
		return nil, s.err
	}
	return s.passages, nil
}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSearchReturnsPassages(t *testing.T) {
	searcher := &stubSearcher{passages: []RetrievedPassage{
		{Text: "Whoever cheats...", Act: "Bharatiya Nyaya Sanhita", Section: "318", Domain: "CRIMINAL"},
	}}
	r := New(&stubEmbedder{}, searcher, discard())

	got := r.Search(context.Background(), "what is cheating", "CRIMINAL", 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 passage, got %d", len(got))
	}
	if searcher.lastLimit != 5 || searcher.lastDomain != "CRIMINAL" {
		t.Errorf("search called with limit=%d domain=%q", searcher.lastLimit, searcher.lastDomain)
	}
}

func TestSearchEmbeddingErrorReturnsEmpty(t *testing.T) {
	r := New(&stubEmbedder{err: errors.New("provider down")}, &stubSearcher{}, discard())

	got := r.Search(context.Background(), "query", "", 3)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestSearchIndexErrorReturnsEmpty(t *testing.T) {
	r := New(&stubEmbedder{}, &stubSearcher{err: errors.New("pgvector unavailable")}, discard())

	got := r.Search(context.Background(), "query", "", 3)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestFindRelatedCasesDistinctActs(t *testing.T) {
	searcher := &stubSearcher{passages: []RetrievedPassage{
		{Act: "Kesavananda Bharati v. State of Kerala", Domain: CaseLawDomain},
		{Act: "Kesavananda Bharati v. State of Kerala", Domain: CaseLawDomain},
	}}
	r := New(&stubEmbedder{}, searcher, discard())

	cases := r.FindRelatedCases(context.Background(), "basic structure doctrine")
	if len(cases) != 1 {
		t.Fatalf("expected 1 distinct case, got %v", cases)
	}
	if searcher.lastDomain != CaseLawDomain {
		t.Errorf("expected domain %q, got %q", CaseLawDomain, searcher.lastDomain)
	}
	if searcher.lastLimit != 2 {
		t.Errorf("expected limit 2, got %d", searcher.lastLimit)
	}
}

func TestFindRelatedCasesUnknownName(t *testing.T) {
	searcher := &stubSearcher{passages: []RetrievedPassage{{Act: ""}}}
	r := New(&stubEmbedder{}, searcher, discard())

	cases := r.FindRelatedCases(context.Background(), "query")
	if len(cases) != 1 || cases[0] != "Unknown Judgment" {
		t.Fatalf("expected placeholder name, got %v", cases)
	}
}
