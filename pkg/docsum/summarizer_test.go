package docsum

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"samvidhan-ai-be/pkg/llm"
)

type stubLLM struct {
	response   string
	err        error
	lastPrompt string
	lastOpts   llm.Options
}

func (s *stubLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	s.lastPrompt = messages[len(messages)-1].Content
	s.lastOpts = llm.Options{}
	for _, opt := range opts {
		opt(&s.lastOpts)
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

const validSummaryJSON = `{
	"document_overview": {
		"title": "State vs. Sharma",
		"type": "Court Judgment",
		"parties": "State of Maharashtra vs. R. Sharma",
		"date": "2024-03-12"
	},
	"core_arguments": ["Appellant denies inducement", "State relies on documentary evidence"],
	"final_verdict": {
		"decision": "Appeal dismissed.",
		"reasoning": "Inducement was proven through correspondence."
	},
	"acts_cited": [
		{"act": "Bharatiya Nyaya Sanhita", "sections": ["Section 318"], "relevance": "Cheating offence charged"}
	],
	"key_timeline": [
		{"date": "2023", "event": "Complaint filed"},
		{"date": "2024", "event": "Trial court conviction"}
	],
	"key_points": ["Documentary evidence outweighed the oral retraction"]
}`

func newTestSummarizer(provider *stubLLM) *Summarizer {
	return New(provider, log.New(io.Discard, "", 0))
}

func TestSummarizeTextParsesValidSchema(t *testing.T) {
	provider := &stubLLM{response: validSummaryJSON}
	s := newTestSummarizer(provider)

	summary, err := s.SummarizeText(context.Background(), "judgment text here")
	if err != nil {
		t.Fatal(err)
	}
	if summary.DocumentOverview.Title != "State vs. Sharma" {
		t.Errorf("unexpected overview %+v", summary.DocumentOverview)
	}
	if summary.FinalVerdict.Decision != "Appeal dismissed." {
		t.Errorf("unexpected verdict %+v", summary.FinalVerdict)
	}
	if len(summary.ActsCited) != 1 || summary.ActsCited[0].Act != "Bharatiya Nyaya Sanhita" {
		t.Errorf("unexpected acts %+v", summary.ActsCited)
	}
	if len(summary.KeyTimeline) != 2 || len(summary.KeyPoints) != 1 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if !provider.lastOpts.JSONMode {
		t.Error("expected JSON-mode completion")
	}
}

func TestSummarizeTextStripsCodeFences(t *testing.T) {
	provider := &stubLLM{response: "```json\n" + validSummaryJSON + "\n```"}
	s := newTestSummarizer(provider)

	summary, err := s.SummarizeText(context.Background(), "judgment text")
	if err != nil {
		t.Fatal(err)
	}
	if summary.DocumentOverview.Title != "State vs. Sharma" {
		t.Errorf("fenced output not parsed, got %+v", summary.DocumentOverview)
	}
}

func TestSummarizeTextWrapsMalformedOutput(t *testing.T) {
	provider := &stubLLM{response: "This judgment is about cheating and was dismissed."}
	s := newTestSummarizer(provider)

	summary, err := s.SummarizeText(context.Background(), "judgment text")
	if err != nil {
		t.Fatal(err)
	}
	if summary.FinalVerdict.Reasoning != "This judgment is about cheating and was dismissed." {
		t.Errorf("expected raw output in verdict reasoning, got %+v", summary.FinalVerdict)
	}
	if summary.DocumentOverview.Title != "Legal Document Analysis" {
		t.Errorf("expected placeholder overview, got %+v", summary.DocumentOverview)
	}
}

func TestSummarizeTextWrapsWrongContainerType(t *testing.T) {
	provider := &stubLLM{response: `{
		"document_overview": "should be an object",
		"core_arguments": [],
		"final_verdict": {"decision": "", "reasoning": ""},
		"acts_cited": [],
		"key_timeline": [],
		"key_points": []
	}`}
	s := newTestSummarizer(provider)

	summary, err := s.SummarizeText(context.Background(), "text")
	if err != nil {
		t.Fatal(err)
	}
	if summary.FinalVerdict.Decision != "Analysis Complete" {
		t.Error("string where object expected must fall back to wrapped output")
	}
}

func TestSummarizeTextTruncatesWrappedReasoning(t *testing.T) {
	provider := &stubLLM{response: "not json " + strings.Repeat("x", 2000)}
	s := newTestSummarizer(provider)

	summary, err := s.SummarizeText(context.Background(), "text")
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.FinalVerdict.Reasoning) != maxWrappedReasoning {
		t.Errorf("expected reasoning capped at %d chars, got %d", maxWrappedReasoning, len(summary.FinalVerdict.Reasoning))
	}
}

func TestSummarizeTextCompletionErrorPropagates(t *testing.T) {
	provider := &stubLLM{err: errors.New("api down")}
	s := newTestSummarizer(provider)

	if _, err := s.SummarizeText(context.Background(), "text"); err == nil {
		t.Fatal("expected completion failure to surface as an error")
	}
}

func TestSummarizeTextTruncatesLongDocuments(t *testing.T) {
	provider := &stubLLM{response: validSummaryJSON}
	s := newTestSummarizer(provider)

	long := strings.Repeat("x", maxPromptChars+5000)
	if _, err := s.SummarizeText(context.Background(), long); err != nil {
		t.Fatal(err)
	}
	if len(provider.lastPrompt) > maxPromptChars+200 {
		t.Errorf("prompt not truncated, length %d", len(provider.lastPrompt))
	}
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	if _, err := ExtractText([]byte("plain text, not a pdf")); err == nil {
		t.Fatal("expected error for non-pdf bytes")
	}
}
