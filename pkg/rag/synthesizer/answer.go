package synthesizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"samvidhan-ai-be/pkg/rag/mapping"
)

// Citation points at one statute or judgment passage that grounded the
// answer. Ids are 1-based in presentation order.
type Citation struct {
	Id      int    `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Section string `json:"section"`
	Url     string `json:"url,omitempty"`
}

// StructuredAnswer is the legal-branch payload. Citations is always
// non-nil so the wire shape stays `[]` rather than `null`.
type StructuredAnswer struct {
	Law          string                  `json:"law"`
	Examples     string                  `json:"examples"`
	SimpleAnswer string                  `json:"simple_answer"`
	Citations    []Citation              `json:"citations"`
	Comparison   *mapping.SectionMapping `json:"comparison,omitempty"`
	RelatedCases []string                `json:"related_cases,omitempty"`
	LegalDomain  string                  `json:"legal_domain_detected,omitempty"`
}

// Result is the synthesizer's tagged output. Exactly one of Casual or
// Answer is populated, keyed by Kind.
type Result struct {
	Kind   ResultKind        `json:"kind"`
	Casual string            `json:"casual,omitempty"`
	Answer *StructuredAnswer `json:"answer,omitempty"`
}

type ResultKind string

const (
	KindCasual ResultKind = "casual"
	KindLegal  ResultKind = "legal"
)

var requiredAnswerKeys = []string{"law", "examples", "simple_answer"}

// parseStructuredAnswer validates the model's JSON output against the
// fixed answer schema. It is the only place raw model text is parsed;
// callers turn an error into the one fallback answer.
func parseStructuredAnswer(raw string) (*StructuredAnswer, error) {
	trimmed := strings.TrimSpace(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	for _, key := range requiredAnswerKeys {
		v, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("response missing required key %q", key)
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, fmt.Errorf("key %q is not a string", key)
		}
	}

	var answer StructuredAnswer
	if err := json.Unmarshal([]byte(trimmed), &answer); err != nil {
		return nil, fmt.Errorf("response does not match answer schema: %w", err)
	}
	if answer.Citations == nil {
		answer.Citations = []Citation{}
	}
	return &answer, nil
}

// errorAnswer is the fixed-shape payload returned whenever the legal
// branch cannot produce a grounded answer.
func errorAnswer() *StructuredAnswer {
	return &StructuredAnswer{
		Law:          "I was unable to process your legal query at this time.",
		Examples:     "",
		SimpleAnswer: "Something went wrong while preparing your answer. Please try rephrasing your question or ask again in a moment.",
		Citations:    []Citation{},
	}
}
