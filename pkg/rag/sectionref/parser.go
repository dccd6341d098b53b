package sectionref

import (
	"regexp"
	"strings"
)

// SectionReference is a statute section mention found in free text.
type SectionReference struct {
	Keyword string // "section", "ipc" or "bns" as written by the user
	Number  string // e.g. "420", "124A"
}

var sectionPattern = regexp.MustCompile(`(?i)\b(section|ipc|bns)\s*\.?\s*(\d+[A-Za-z]?)\b`)

// Parse returns the first section reference in the query, or nil if none.
// It scans the raw user text, never LLM output.
func Parse(query string) *SectionReference {
	match := sectionPattern.FindStringSubmatch(query)
	if match == nil {
		return nil
	}
	return &SectionReference{
		Keyword: strings.ToLower(match[1]),
		Number:  strings.ToUpper(match[2]),
	}
}

// ParseAll returns every distinct section number referenced in the query,
// in order of appearance.
func ParseAll(query string) []SectionReference {
	matches := sectionPattern.FindAllStringSubmatch(query, -1)
	if matches == nil {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	refs := make([]SectionReference, 0, len(matches))
	for _, m := range matches {
		number := strings.ToUpper(m[2])
		if seen[number] {
			continue
		}
		seen[number] = true
		refs = append(refs, SectionReference{
			Keyword: strings.ToLower(m[1]),
			Number:  number,
		})
	}
	return refs
}
