package retriever

import (
	"context"
	"log"

	"samvidhan-ai-be/pkg/embedding"
)

// RetrievedPassage is one statute/case-law chunk returned by similarity
// search. Immutable, scoped to a single request.
type RetrievedPassage struct {
	Text    string
	Act     string
	Section string
	Domain  string
}

// CaseLawDomain tags judgment chunks in the index.
const CaseLawDomain = "CASE_LAW"

// ChunkSearcher is the slice of the statute-chunk repository the retriever
// needs: nearest-neighbor search with an optional domain equality filter.
type ChunkSearcher interface {
	SearchSimilar(ctx context.Context, vector []float32, limit int, domain string) ([]RetrievedPassage, error)
}

// Retriever wraps the pgvector index behind a degrade-gracefully contract:
// it never propagates transport or index errors, it returns an empty slice
// and the pipeline proceeds without grounding context.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	chunks            ChunkSearcher
	logger            *log.Logger
}

func New(embeddingProvider embedding.EmbeddingProvider, chunks ChunkSearcher, logger *log.Logger) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		chunks:            chunks,
		logger:            logger,
	}
}

// Search embeds the query and returns up to k passages, restricted to the
// given domain when one is supplied. Results keep the index's relevance
// ranking; no dedup or re-ranking happens here.
func (r *Retriever) Search(ctx context.Context, query string, domain string, k int) []RetrievedPassage {
	if k <= 0 {
		k = 3
	}

	res, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		r.logger.Printf("[RETRIEVER] query embedding failed, proceeding without context: %v", err)
		return []RetrievedPassage{}
	}

	passages, err := r.chunks.SearchSimilar(ctx, res.Embedding.Values, k, domain)
	if err != nil {
		r.logger.Printf("[RETRIEVER] similarity search failed, proceeding without context: %v", err)
		return []RetrievedPassage{}
	}
	return passages
}

// FindRelatedCases searches the CASE_LAW domain and returns distinct
// judgment names for cross-referencing.
func (r *Retriever) FindRelatedCases(ctx context.Context, query string) []string {
	results := r.Search(ctx, query, CaseLawDomain, 2)

	var cases []string
	seen := make(map[string]bool)
	for _, p := range results {
		name := p.Act
		if name == "" {
			name = "Unknown Judgment"
		}
		if !seen[name] {
			seen[name] = true
			cases = append(cases, name)
		}
	}
	return cases
}
