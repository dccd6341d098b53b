package classifier

import (
	"context"
	"log"
	"strings"

	"samvidhan-ai-be/pkg/llm"
)

// Label is the routing category for an incoming query.
type Label string

const (
	LabelLegal  Label = "legal"
	LabelCasual Label = "casual"
	LabelFilter Label = "filter"
)

const classifyPrompt = `You are a query router for a legal assistant.
Classify the user query into exactly one category and reply with ONLY that single word:

- legal: any question about law, statutes, sections, offences, rights, procedures, cases or legal advice
- casual: greetings, small talk, thanks, questions about the assistant itself
- filter: questions about which legal domain filter is currently active or how filtering works

Examples:
Query: "What is Section 420 IPC?" -> legal
Query: "Hi" -> casual
Query: "thanks, that helped!" -> casual
Query: "which domain filter is on right now?" -> filter
Query: "can my landlord evict me without notice?" -> legal

Query: "%QUERY%"
Answer with one word only: legal, casual or filter.`

// Classifier routes queries using one LLM completion with a fixed prompt.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func New(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify returns the label for a query. Any failure of the underlying call,
// and any response that is not exactly one of the known labels, falls back to
// LabelLegal: under-classification routes to the richer legal path rather
// than dropping the query. Classify never returns an error.
func (c *Classifier) Classify(ctx context.Context, query string) Label {
	prompt := strings.Replace(classifyPrompt, "%QUERY%", query, 1)

	response, err := c.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(5),
	)
	if err != nil {
		c.logger.Printf("[CLASSIFIER] call failed, defaulting to legal: %v", err)
		return LabelLegal
	}

	switch Label(strings.ToLower(strings.TrimSpace(response))) {
	case LabelCasual:
		return LabelCasual
	case LabelFilter:
		return LabelFilter
	case LabelLegal:
		return LabelLegal
	default:
		c.logger.Printf("[CLASSIFIER] unexpected label %q, defaulting to legal", strings.TrimSpace(response))
		return LabelLegal
	}
}
