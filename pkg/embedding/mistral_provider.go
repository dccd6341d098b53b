package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MistralProvider implements EmbeddingProvider for the Mistral embeddings API
// (mistral-embed, 1024 dimensions).
type MistralProvider struct {
	APIKey string
	Model  string
	Client *http.Client
}

func NewMistralProvider(apiKey string) EmbeddingProvider {
	return &MistralProvider{
		APIKey: apiKey,
		Model:  "mistral-embed",
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type mistralEmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type mistralEmbeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

func (p *MistralProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// TaskType is ignored; mistral-embed uses a single embedding space.

	reqBody := mistralEmbeddingRequest{
		Model: p.Model,
		Input: []string{text},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", "https://api.mistral.ai/v1/embeddings", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mistral embedding error: %s", string(bodyBytes))
	}

	var mistralResp mistralEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &mistralResp); err != nil {
		return nil, err
	}
	if len(mistralResp.Data) == 0 {
		return nil, fmt.Errorf("mistral embedding returned no data")
	}
	if got := len(mistralResp.Data[0].Embedding); got != Dimension {
		return nil, fmt.Errorf("mistral returned a %d-dim embedding, column expects %d", got, Dimension)
	}

	values := make([]float32, len(mistralResp.Data[0].Embedding))
	for i, v := range mistralResp.Data[0].Embedding {
		values[i] = float32(v)
	}

	// Normalize for accurate cosine similarity in pgvector
	normalizedValues := normalizeVector(values)

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: normalizedValues,
		},
	}, nil
}
