package bootstrap

import (
	"context"

	"samvidhan-ai-be/internal/repository/contract"
	"samvidhan-ai-be/pkg/rag/retriever"
)

// chunkSearcherAdapter exposes the statute chunk repository through the
// retriever's search interface.
type chunkSearcherAdapter struct {
	chunks contract.StatuteChunkRepository
}

func newChunkSearcher(chunks contract.StatuteChunkRepository) retriever.ChunkSearcher {
	return &chunkSearcherAdapter{chunks: chunks}
}

func (a *chunkSearcherAdapter) SearchSimilar(ctx context.Context, vector []float32, limit int, domain string) ([]retriever.RetrievedPassage, error) {
	rows, err := a.chunks.SearchSimilar(ctx, vector, limit, domain)
	if err != nil {
		return nil, err
	}

	passages := make([]retriever.RetrievedPassage, 0, len(rows))
	for _, row := range rows {
		passages = append(passages, retriever.RetrievedPassage{
			Text:    row.Text,
			Act:     row.Act,
			Section: row.Section,
			Domain:  row.Domain,
		})
	}
	return passages, nil
}
