package synthesizer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"samvidhan-ai-be/pkg/llm"
	"samvidhan-ai-be/pkg/rag/classifier"
	"samvidhan-ai-be/pkg/rag/mapping"
	"samvidhan-ai-be/pkg/rag/memory"
	"samvidhan-ai-be/pkg/rag/retriever"
	"samvidhan-ai-be/pkg/rag/sectionref"
)

const (
	maxContextPassages = 5
	casualHistoryTurns = 6
	legalHistoryTurns  = 14
	casualMaxTokens    = 100
	legalMaxTokens     = 2000
	legalTemperature   = 0.2
	historyFieldLimit  = 200
)

// QueryClassifier routes a query to one of the synthesizer's branches.
type QueryClassifier interface {
	Classify(ctx context.Context, query string) classifier.Label
}

// PassageSearcher is the retrieval surface the legal branch needs.
type PassageSearcher interface {
	Search(ctx context.Context, query string, domain string, k int) []retriever.RetrievedPassage
	FindRelatedCases(ctx context.Context, query string) []string
}

// Synthesizer turns a classified query into either a casual reply or a
// structured legal answer. Every external call inside Answer has a
// defined fallback, so Answer itself never fails.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	classifier  QueryClassifier
	searcher    PassageSearcher
	history     memory.HistoryStore
	mappings    *mapping.Table
	logger      *log.Logger
}

func New(
	llmProvider llm.LLMProvider,
	queryClassifier QueryClassifier,
	searcher PassageSearcher,
	history memory.HistoryStore,
	mappings *mapping.Table,
	logger *log.Logger,
) *Synthesizer {
	return &Synthesizer{
		llmProvider: llmProvider,
		classifier:  queryClassifier,
		searcher:    searcher,
		history:     history,
		mappings:    mappings,
		logger:      logger,
	}
}

// Answer runs the full pipeline for one query. sessionID scopes the
// conversational memory; domainFilter optionally restricts retrieval.
func (s *Synthesizer) Answer(ctx context.Context, sessionID string, query string, domainFilter string) *Result {
	label := s.classifier.Classify(ctx, query)
	s.logger.Printf("[SYNTH] session=%s label=%s filter=%q", sessionID, label, domainFilter)

	switch label {
	case classifier.LabelCasual:
		return s.answerCasual(ctx, sessionID, query)
	case classifier.LabelFilter:
		return s.answerFilterStatus(ctx, sessionID, query, domainFilter)
	default:
		return s.answerLegal(ctx, sessionID, query, domainFilter)
	}
}

func (s *Synthesizer) answerCasual(ctx context.Context, sessionID string, query string) *Result {
	turns, err := s.history.Get(ctx, sessionID)
	if err != nil {
		s.logger.Printf("[SYNTH] history read failed: %v", err)
		turns = nil
	}
	if len(turns) > casualHistoryTurns {
		turns = turns[len(turns)-casualHistoryTurns:]
	}

	userContent := query
	if transcript := buildTranscript(turns); transcript != "" {
		userContent = fmt.Sprintf("Recent conversation:\n%s\nUser: %s", transcript, query)
	}

	reply, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: casualSystemPrompt},
		{Role: "user", Content: userContent},
	}, llm.WithMaxTokens(casualMaxTokens))
	if err != nil || reply == "" {
		s.logger.Printf("[SYNTH] casual completion failed, using greeting: %v", err)
		reply = fallbackGreeting
	}

	s.appendHistory(ctx, sessionID, query, reply)
	return &Result{Kind: KindCasual, Casual: reply}
}

// answerFilterStatus answers "what am I filtering on" without touching
// the model or the index.
func (s *Synthesizer) answerFilterStatus(ctx context.Context, sessionID string, query string, domainFilter string) *Result {
	var reply string
	if domainFilter != "" {
		reply = fmt.Sprintf("You currently have the %s domain filter active, so answers are drawn from that area of law. Remove the filter to search across all domains.", domainFilter)
	} else {
		reply = "No domain filter is active right now. Your questions are answered across all areas of Indian law. You can pick a domain to narrow the results."
	}

	s.appendHistory(ctx, sessionID, query, reply)
	return &Result{Kind: KindCasual, Casual: reply}
}

func (s *Synthesizer) answerLegal(ctx context.Context, sessionID string, query string, domainFilter string) *Result {
	turns, err := s.history.Get(ctx, sessionID)
	if err != nil {
		s.logger.Printf("[SYNTH] history read failed: %v", err)
		turns = nil
	}
	if len(turns) > legalHistoryTurns {
		turns = turns[len(turns)-legalHistoryTurns:]
	}

	answer := s.lookup(ctx, query, domainFilter, turns)
	s.appendHistory(ctx, sessionID, query, summarizeForHistory(answer))
	return &Result{Kind: KindLegal, Answer: answer}
}

// Lookup runs the legal branch for a one-off query without touching
// conversational state. Used by direct search, where there is no session.
func (s *Synthesizer) Lookup(ctx context.Context, query string, domainFilter string) *StructuredAnswer {
	return s.lookup(ctx, query, domainFilter, nil)
}

func (s *Synthesizer) lookup(ctx context.Context, query string, domainFilter string, turns []memory.Turn) *StructuredAnswer {
	passages := s.searcher.Search(ctx, query, domainFilter, maxContextPassages)

	var b strings.Builder
	fmt.Fprintf(&b, "Context passages:\n%s\n\n", buildContextBlock(passages))
	if transcript := buildTranscript(turns); transcript != "" {
		fmt.Fprintf(&b, "Previous conversation:\n%s\n", transcript)
	}
	fmt.Fprintf(&b, "Question: %s", query)
	userContent := b.String()
	raw, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: legalSystemPrompt},
		{Role: "user", Content: userContent},
	}, llm.WithTemperature(legalTemperature), llm.WithMaxTokens(legalMaxTokens), llm.WithJSONMode())

	var answer *StructuredAnswer
	if err != nil {
		s.logger.Printf("[SYNTH] legal completion failed: %v", err)
		answer = errorAnswer()
	} else {
		answer, err = parseStructuredAnswer(raw)
		if err != nil {
			s.logger.Printf("[SYNTH] answer parse failed: %v", err)
			answer = errorAnswer()
		}
	}

	if len(answer.Citations) == 0 {
		answer.Citations = citationsFromPassages(passages)
	}
	// First mentioned section with a table entry wins; queries citing
	// an unmapped section first still get a comparison.
	for _, ref := range sectionref.ParseAll(query) {
		if entry := s.mappings.Lookup(ref.Number); entry != nil {
			answer.Comparison = entry
			break
		}
	}
	answer.RelatedCases = s.searcher.FindRelatedCases(ctx, query)
	if domainFilter != "" {
		answer.LegalDomain = domainFilter
	} else {
		answer.LegalDomain = dominantDomain(passages)
	}

	return answer
}

// dominantDomain picks the most frequent domain tag among the retrieved
// passages; ties break toward the earlier (closer) passage.
func dominantDomain(passages []retriever.RetrievedPassage) string {
	counts := make(map[string]int, len(passages))
	best, bestCount := "", 0
	for _, p := range passages {
		if p.Domain == "" {
			continue
		}
		counts[p.Domain]++
		if counts[p.Domain] > bestCount {
			best, bestCount = p.Domain, counts[p.Domain]
		}
	}
	return best
}

// appendHistory records one exchange. History is advisory, a failing
// store never fails the request.
func (s *Synthesizer) appendHistory(ctx context.Context, sessionID string, query string, reply string) {
	if err := s.history.Append(ctx, sessionID,
		memory.Turn{Role: memory.RoleUser, Content: query},
		memory.Turn{Role: memory.RoleAssistant, Content: reply},
	); err != nil {
		s.logger.Printf("[SYNTH] history append failed: %v", err)
	}
}

// summarizeForHistory abbreviates an answer before it enters history, so
// prompts built from history stay bounded regardless of answer length.
func summarizeForHistory(answer *StructuredAnswer) string {
	return fmt.Sprintf("Law: %s Summary: %s",
		truncateField(answer.Law, historyFieldLimit),
		truncateField(answer.SimpleAnswer, historyFieldLimit))
}

func citationsFromPassages(passages []retriever.RetrievedPassage) []Citation {
	citations := make([]Citation, 0, len(passages))
	for i, p := range passages {
		citations = append(citations, Citation{
			Id:      i + 1,
			Title:   fmt.Sprintf("%s, Section %s", p.Act, p.Section),
			Source:  p.Act,
			Section: p.Section,
		})
	}
	return citations
}
