package embedding

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newOllamaTestServer(t *testing.T, dim int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vec := make([]float64, dim)
		for i := range vec {
			vec[i] = 0.5
		}
		_ = json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: vec})
	}))
}

func TestOllamaGenerateAcceptsColumnWidth(t *testing.T) {
	srv := newOllamaTestServer(t, Dimension)
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "")
	res, err := provider.Generate("murder punishment", "RETRIEVAL_QUERY")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Embedding.Values) != Dimension {
		t.Fatalf("got %d values, want %d", len(res.Embedding.Values), Dimension)
	}

	var magnitude float64
	for _, v := range res.Embedding.Values {
		magnitude += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(magnitude)-1.0) > 1e-4 {
		t.Errorf("vector not normalized, magnitude %f", math.Sqrt(magnitude))
	}
}

func TestOllamaGenerateRejectsWrongDimension(t *testing.T) {
	srv := newOllamaTestServer(t, 768)
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "nomic-embed-text")
	if _, err := provider.Generate("murder punishment", "RETRIEVAL_QUERY"); err == nil {
		t.Fatal("expected a 768-dim response to be rejected")
	}
}
