package docsum

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"samvidhan-ai-be/pkg/llm"
)

const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 4000
)

const summarySystemPrompt = `You are a legal document analyzer specializing in Indian law.
Analyze the provided legal document and create a comprehensive, well-structured summary.

CRITICAL: Return ONLY valid JSON in this exact format:
{
    "document_overview": {
        "title": "Document title or case name",
        "type": "Type of document (e.g., Court Judgment, Legal Notice, Contract)",
        "parties": "Parties involved (if applicable)",
        "date": "Date of document (if mentioned)"
    },
    "core_arguments": [
        "First main argument or claim",
        "Second main argument or claim"
    ],
    "final_verdict": {
        "decision": "The court's decision or document conclusion",
        "reasoning": "Key reasoning behind the decision"
    },
    "acts_cited": [
        {
            "act": "Name of the Act",
            "sections": ["Section 1", "Section 2"],
            "relevance": "Why this act was cited"
        }
    ],
    "key_timeline": [
        {
            "date": "Date",
            "event": "What happened"
        }
    ],
    "key_points": [
        "Important point 1",
        "Important point 2"
    ]
}

IMPORTANT:
- Extract ALL acts and sections mentioned
- Be thorough but concise
- Use clear, simple language
- If any section is not applicable, use empty arrays [] or "Not specified"
- Return ONLY the JSON, no additional text`

// DocumentOverview identifies the document being summarized.
type DocumentOverview struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Parties string `json:"parties"`
	Date    string `json:"date"`
}

// FinalVerdict carries the operative result and the reasoning behind it.
type FinalVerdict struct {
	Decision  string `json:"decision"`
	Reasoning string `json:"reasoning"`
}

// ActCitation records one cited act with the sections invoked under it.
type ActCitation struct {
	Act       string   `json:"act"`
	Sections  []string `json:"sections"`
	Relevance string   `json:"relevance"`
}

// TimelineEvent is one dated step in the case history.
type TimelineEvent struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// StructuredSummary is the rigid summary schema. When the model's output
// cannot be coerced into it, the raw text lands in FinalVerdict.Reasoning.
type StructuredSummary struct {
	DocumentOverview DocumentOverview `json:"document_overview"`
	CoreArguments    []string         `json:"core_arguments"`
	FinalVerdict     FinalVerdict     `json:"final_verdict"`
	ActsCited        []ActCitation    `json:"acts_cited"`
	KeyTimeline      []TimelineEvent  `json:"key_timeline"`
	KeyPoints        []string         `json:"key_points"`
}

// Summarizer produces a StructuredSummary from an uploaded document via
// one completion call. Parse failures degrade to a wrapped-text summary,
// extraction and completion failures surface as errors.
type Summarizer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func New(llmProvider llm.LLMProvider, logger *log.Logger) *Summarizer {
	return &Summarizer{llmProvider: llmProvider, logger: logger}
}

// SummarizeText summarizes already-extracted text.
func (s *Summarizer) SummarizeText(ctx context.Context, text string) (*StructuredSummary, error) {
	userPrompt := fmt.Sprintf(
		"Analyze this legal document and provide a structured summary:\n\n%s\n\nRemember: Return ONLY valid JSON in the specified format.",
		truncateForPrompt(text),
	)
	reply, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: userPrompt},
	}, llm.WithTemperature(summaryTemperature), llm.WithMaxTokens(summaryMaxTokens), llm.WithJSONMode())
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	cleaned := stripCodeFences(reply)
	summary, parseErr := parseSummary(cleaned)
	if parseErr != nil {
		s.logger.Printf("[DOCSUM] summary parse failed, wrapping raw output: %v", parseErr)
		return wrapRaw(cleaned), nil
	}
	return summary, nil
}

// stripCodeFences removes a markdown code block wrapper some models add
// despite the JSON-only instruction.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.ReplaceAll(trimmed, "```json", "")
		trimmed = strings.ReplaceAll(trimmed, "```", "")
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.ReplaceAll(trimmed, "```", "")
	}
	return strings.TrimSpace(trimmed)
}

// parseSummary accepts the model output only when the three load-bearing
// keys are present with the right container type. A key that came back as
// a string where an object or list belongs means the model drifted from
// the schema, wrapping beats presenting half-parsed structure as
// authoritative.
func parseSummary(raw string) (*StructuredSummary, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	for key, container := range map[string]any{
		"document_overview": &map[string]json.RawMessage{},
		"core_arguments":    &[]json.RawMessage{},
		"final_verdict":     &map[string]json.RawMessage{},
	} {
		v, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("response missing required key %q", key)
		}
		if err := json.Unmarshal(v, container); err != nil {
			return nil, fmt.Errorf("key %q has the wrong container type", key)
		}
	}

	var summary StructuredSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("response does not match summary schema: %w", err)
	}
	return summary.normalized(), nil
}

// normalized replaces nil slices with empty ones so the JSON response
// always carries arrays, not nulls.
func (s *StructuredSummary) normalized() *StructuredSummary {
	if s.CoreArguments == nil {
		s.CoreArguments = []string{}
	}
	if s.ActsCited == nil {
		s.ActsCited = []ActCitation{}
	}
	if s.KeyTimeline == nil {
		s.KeyTimeline = []TimelineEvent{}
	}
	if s.KeyPoints == nil {
		s.KeyPoints = []string{}
	}
	return s
}

const maxWrappedReasoning = 1000

func wrapRaw(text string) *StructuredSummary {
	reasoning := strings.TrimSpace(text)
	if len(reasoning) > maxWrappedReasoning {
		reasoning = reasoning[:maxWrappedReasoning]
	}
	return &StructuredSummary{
		DocumentOverview: DocumentOverview{
			Title:   "Legal Document Analysis",
			Type:    "Legal Document",
			Parties: "See summary below",
			Date:    "Not specified",
		},
		CoreArguments: []string{
			"Please see the detailed summary below for core arguments and analysis.",
		},
		FinalVerdict: FinalVerdict{
			Decision:  "Analysis Complete",
			Reasoning: reasoning,
		},
		ActsCited:   []ActCitation{},
		KeyTimeline: []TimelineEvent{},
		KeyPoints: []string{
			"The model produced a response that could not be parsed into the expected format.",
			"Please review the reasoning section in Final Verdict for the complete analysis.",
		},
	}
}
