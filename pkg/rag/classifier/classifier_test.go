package classifier

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"samvidhan-ai-be/pkg/llm"
)

// stubProvider returns a fixed response or error for every call.
type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, opts...)
}

func newTestClassifier(p llm.LLMProvider) *Classifier {
	return New(p, log.New(io.Discard, "", 0))
}

func TestClassifyLabels(t *testing.T) {
	tests := []struct {
		response string
		want     Label
	}{
		{"legal", LabelLegal},
		{"casual", LabelCasual},
		{"filter", LabelFilter},
		{"  Casual \n", LabelCasual},
		{"LEGAL", LabelLegal},
	}

	for _, tt := range tests {
		c := newTestClassifier(&stubProvider{response: tt.response})
		if got := c.Classify(context.Background(), "anything"); got != tt.want {
			t.Errorf("response %q classified as %q, want %q", tt.response, got, tt.want)
		}
	}
}

func TestClassifyUnknownDefaultsToLegal(t *testing.T) {
	c := newTestClassifier(&stubProvider{response: "I think this is a legal question about property."})
	if got := c.Classify(context.Background(), "anything"); got != LabelLegal {
		t.Errorf("got %q, want %q", got, LabelLegal)
	}
}

func TestClassifyErrorDefaultsToLegal(t *testing.T) {
	c := newTestClassifier(&stubProvider{err: errors.New("connection refused")})
	if got := c.Classify(context.Background(), "anything"); got != LabelLegal {
		t.Errorf("got %q, want %q", got, LabelLegal)
	}
}

func TestClassifyMakesExactlyOneCall(t *testing.T) {
	p := &stubProvider{response: "legal"}
	c := newTestClassifier(p)
	c.Classify(context.Background(), "What is Section 420 IPC?")
	if p.calls != 1 {
		t.Errorf("made %d LLM calls, want 1", p.calls)
	}
}
