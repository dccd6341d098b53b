package synthesizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"samvidhan-ai-be/pkg/llm"
	"samvidhan-ai-be/pkg/rag/classifier"
	"samvidhan-ai-be/pkg/rag/mapping"
	"samvidhan-ai-be/pkg/rag/memory"
	"samvidhan-ai-be/pkg/rag/retriever"
)

type stubLLM struct {
	response string
	err      error

	chatCalls    int
	lastMessages []llm.Message
	lastOptions  llm.Options
}

func (s *stubLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	s.chatCalls++
	s.lastMessages = messages
	s.lastOptions = llm.Options{}
	for _, opt := range opts {
		opt(&s.lastOptions)
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type stubClassifier struct {
	label classifier.Label
}

func (s *stubClassifier) Classify(ctx context.Context, query string) classifier.Label {
	return s.label
}

type stubSearcher struct {
	passages     []retriever.RetrievedPassage
	relatedCases []string
	searchCalls  int
}

func (s *stubSearcher) Search(ctx context.Context, query string, domain string, k int) []retriever.RetrievedPassage {
	s.searchCalls++
	return s.passages
}

func (s *stubSearcher) FindRelatedCases(ctx context.Context, query string) []string {
	return s.relatedCases
}

func newTestSynthesizer(provider *stubLLM, label classifier.Label, searcher *stubSearcher) (*Synthesizer, memory.HistoryStore) {
	history := memory.NewInMemoryStore()
	s := New(provider, &stubClassifier{label: label}, searcher, history, mapping.NewTable(), log.New(io.Discard, "", 0))
	return s, history
}

const validLegalJSON = `{
	"law": "Section 318 of the Bharatiya Nyaya Sanhita punishes cheating.",
	"examples": "Selling a fake gold chain as real gold.",
	"simple_answer": "Cheating someone out of property is a crime.",
	"citations": [{"id": 1, "title": "BNS Section 318", "source": "Bharatiya Nyaya Sanhita", "section": "318", "url": ""}]
}`

func TestLegalBranchAttachesComparison(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	searcher := &stubSearcher{passages: []retriever.RetrievedPassage{
		{Text: "Whoever cheats...", Act: "Bharatiya Nyaya Sanhita", Section: "318"},
	}}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, searcher)

	res := s.Answer(context.Background(), "sess-1", "What is Section 420 IPC?", "")

	if res.Kind != KindLegal || res.Answer == nil {
		t.Fatalf("expected legal result, got %+v", res)
	}
	if res.Answer.Comparison == nil {
		t.Fatal("expected comparison for section 420")
	}
	if res.Answer.Comparison.BNSSection != "318" {
		t.Errorf("expected BNS 318, got %q", res.Answer.Comparison.BNSSection)
	}
	if len(res.Answer.Citations) == 0 {
		t.Error("expected non-empty citations")
	}
	if !provider.lastOptions.JSONMode {
		t.Error("expected JSON-mode completion for legal branch")
	}
	if provider.lastOptions.MaxTokens != legalMaxTokens {
		t.Errorf("expected max tokens %d, got %d", legalMaxTokens, provider.lastOptions.MaxTokens)
	}
}

func TestLegalBranchComparisonSkipsUnmappedSections(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	res := s.Answer(context.Background(), "sess-11", "compare section 9999 with ipc 302", "")

	if res.Answer.Comparison == nil {
		t.Fatal("expected comparison from the second, mapped section")
	}
	if res.Answer.Comparison.BNSSection != "101" {
		t.Errorf("expected BNS 101 for IPC 302, got %q", res.Answer.Comparison.BNSSection)
	}
}

func TestCasualBranchSkipsRetrieval(t *testing.T) {
	provider := &stubLLM{response: "Hey there! Happy to help with any legal question."}
	searcher := &stubSearcher{}
	s, history := newTestSynthesizer(provider, classifier.LabelCasual, searcher)

	res := s.Answer(context.Background(), "sess-2", "Hi", "")

	if res.Kind != KindCasual {
		t.Fatalf("expected casual result, got %+v", res)
	}
	if res.Answer != nil {
		t.Error("casual result must not carry a structured answer")
	}
	if searcher.searchCalls != 0 {
		t.Errorf("casual branch must not hit the vector store, got %d calls", searcher.searchCalls)
	}

	turns, _ := history.Get(context.Background(), "sess-2")
	if len(turns) != 2 {
		t.Errorf("expected user+assistant turns recorded, got %d", len(turns))
	}
}

func TestCasualBranchFallbackGreeting(t *testing.T) {
	provider := &stubLLM{err: errors.New("api down")}
	s, _ := newTestSynthesizer(provider, classifier.LabelCasual, &stubSearcher{})

	res := s.Answer(context.Background(), "sess-3", "hello", "")
	if res.Casual != fallbackGreeting {
		t.Errorf("expected fallback greeting, got %q", res.Casual)
	}
}

func TestFilterBranchIsDeterministic(t *testing.T) {
	provider := &stubLLM{}
	searcher := &stubSearcher{}
	s, _ := newTestSynthesizer(provider, classifier.LabelFilter, searcher)

	withFilter := s.Answer(context.Background(), "sess-4", "what filter is on?", "CRIMINAL")
	if !strings.Contains(withFilter.Casual, "CRIMINAL") {
		t.Errorf("expected active filter named, got %q", withFilter.Casual)
	}

	without := s.Answer(context.Background(), "sess-4", "what filter is on?", "")
	if !strings.Contains(without.Casual, "No domain filter") {
		t.Errorf("expected no-filter wording, got %q", without.Casual)
	}

	if provider.chatCalls != 0 {
		t.Errorf("filter branch must not call the model, got %d calls", provider.chatCalls)
	}
	if searcher.searchCalls != 0 {
		t.Errorf("filter branch must not hit the vector store, got %d calls", searcher.searchCalls)
	}
}

func TestLegalBranchMalformedJSONReturnsErrorShape(t *testing.T) {
	provider := &stubLLM{response: "Sorry, here is your answer: section 420 is cheating"}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	res := s.Answer(context.Background(), "sess-5", "explain theft law", "")

	if res.Kind != KindLegal || res.Answer == nil {
		t.Fatalf("expected legal result, got %+v", res)
	}
	if res.Answer.Citations == nil || len(res.Answer.Citations) != 0 {
		t.Errorf("expected empty citations on parse failure, got %v", res.Answer.Citations)
	}
	if res.Answer.SimpleAnswer == "" {
		t.Error("error-shaped answer must carry a user-facing message")
	}
}

func TestLegalBranchCompletionErrorReturnsErrorShape(t *testing.T) {
	provider := &stubLLM{err: errors.New("timeout")}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	res := s.Answer(context.Background(), "sess-6", "bail rules", "")
	if res.Answer == nil || res.Answer.SimpleAnswer == "" {
		t.Fatalf("expected error-shaped answer, got %+v", res)
	}
}

func TestLegalBranchEmptyContextStillWellFormed(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	res := s.Answer(context.Background(), "sess-7", "obscure statute question", "")
	if res.Answer == nil {
		t.Fatal("expected structured answer")
	}
	if !strings.Contains(provider.lastMessages[1].Content, "No reference passages") {
		t.Error("expected empty-context marker in prompt")
	}
}

func TestLegalBranchHistoryIsAbbreviated(t *testing.T) {
	long := strings.Repeat("a", 500)
	provider := &stubLLM{response: `{"law": "` + long + `", "examples": "x", "simple_answer": "` + long + `", "citations": []}`}
	s, history := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	s.Answer(context.Background(), "sess-8", "long answer please", "")

	turns, _ := history.Get(context.Background(), "sess-8")
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	assistant := turns[1].Content
	if len(assistant) > 2*(historyFieldLimit+10)+20 {
		t.Errorf("history record not abbreviated, length %d", len(assistant))
	}
}

func TestLegalBranchFollowUpCarriesHistory(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	searcher := &stubSearcher{}
	s, history := newTestSynthesizer(provider, classifier.LabelLegal, searcher)

	_ = history.Append(context.Background(), "sess-9",
		memory.Turn{Role: memory.RoleUser, Content: "What is Section 302 IPC?"},
		memory.Turn{Role: memory.RoleAssistant, Content: "Law: Section 302 IPC is murder, now BNS 101."},
	)

	s.Answer(context.Background(), "sess-9", "What is its punishment?", "")

	prompt := provider.lastMessages[1].Content
	if !strings.Contains(prompt, "Previous conversation:") {
		t.Fatalf("legal prompt missing history block:\n%s", prompt)
	}
	if !strings.Contains(prompt, "302") {
		t.Errorf("legal prompt lost the earlier exchange:\n%s", prompt)
	}
	if !strings.Contains(prompt, "What is its punishment?") {
		t.Errorf("legal prompt missing the current question:\n%s", prompt)
	}
}

func TestLegalBranchTrimsHistoryToWindow(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	s, history := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	for i := 0; i < 20; i++ {
		_ = history.Append(context.Background(), "sess-10",
			memory.Turn{Role: memory.RoleUser, Content: fmt.Sprintf("question %d", i)},
			memory.Turn{Role: memory.RoleAssistant, Content: fmt.Sprintf("answer %d", i)},
		)
	}

	s.Answer(context.Background(), "sess-10", "latest question", "")

	prompt := provider.lastMessages[1].Content
	if strings.Contains(prompt, "question 0") {
		t.Error("oldest turns must be trimmed from the legal prompt")
	}
	if !strings.Contains(prompt, "answer 19") {
		t.Error("newest turns must survive trimming")
	}
}

func TestLookupSkipsHistory(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, &stubSearcher{})

	s.Lookup(context.Background(), "one-off search", "")

	if strings.Contains(provider.lastMessages[1].Content, "Previous conversation:") {
		t.Error("direct lookup must not carry conversational history")
	}
}

func TestParseStructuredAnswerMissingKey(t *testing.T) {
	_, err := parseStructuredAnswer(`{"law": "x", "examples": "y"}`)
	if err == nil {
		t.Fatal("expected error for missing simple_answer")
	}
}

func TestParseStructuredAnswerNormalizesCitations(t *testing.T) {
	answer, err := parseStructuredAnswer(`{"law": "x", "examples": "y", "simple_answer": "z"}`)
	if err != nil {
		t.Fatal(err)
	}
	if answer.Citations == nil {
		t.Error("citations must be normalized to an empty slice")
	}
}

func TestLookupDetectsDominantDomain(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	searcher := &stubSearcher{passages: []retriever.RetrievedPassage{
		{Act: "IT Act 2000", Section: "43A", Domain: "CYBER"},
		{Act: "IT Act 2000", Section: "66", Domain: "CYBER"},
		{Act: "Bharatiya Nyaya Sanhita", Section: "318", Domain: "CRIMINAL"},
	}}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, searcher)

	answer := s.Lookup(context.Background(), "data breach compensation", "")
	if answer.LegalDomain != "CYBER" {
		t.Errorf("detected domain = %q, want CYBER", answer.LegalDomain)
	}
}

func TestLookupPrefersExplicitDomainFilter(t *testing.T) {
	provider := &stubLLM{response: validLegalJSON}
	searcher := &stubSearcher{passages: []retriever.RetrievedPassage{
		{Act: "IT Act 2000", Section: "43A", Domain: "CYBER"},
	}}
	s, _ := newTestSynthesizer(provider, classifier.LabelLegal, searcher)

	answer := s.Lookup(context.Background(), "data breach compensation", "CONSUMER")
	if answer.LegalDomain != "CONSUMER" {
		t.Errorf("detected domain = %q, want the active filter", answer.LegalDomain)
	}
}
