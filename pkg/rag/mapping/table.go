package mapping

import (
	"sort"
	"strings"
)

// SectionMapping cross-references an IPC section with its BNS successor.
type SectionMapping struct {
	Title      string `json:"title"`
	IPCSection string `json:"ipc_section"`
	BNSSection string `json:"bns_section"`
	Meaning    string `json:"legal_meaning"`
	Punishment string `json:"punishment"`
	KeyChanges string `json:"key_changes"`
}

// Table resolves IPC section numbers to their BNS mapping entries.
// Loaded once at startup, read-only afterwards.
type Table struct {
	entries map[string]*SectionMapping
	aliases map[string]string
}

func NewTable() *Table {
	return &Table{
		entries: ipcBnsEntries,
		aliases: ipcAliases,
	}
}

// Lookup resolves a section number in two phases: direct/alias lookup by IPC
// number, then a scan of BNS section fields including range splitting (an
// entry whose BNS field is "101-102" or "63/64" matches either number).
// An unknown section returns nil; absence is an expected outcome, not an error.
func (t *Table) Lookup(code string) *SectionMapping {
	code = normalizeSection(code)
	if code == "" {
		return nil
	}

	if entry, ok := t.entries[code]; ok {
		return entry
	}
	if canonical, ok := t.aliases[code]; ok {
		return t.entries[canonical]
	}

	// Phase 2: match against BNS numbering
	for _, entry := range t.entries {
		for _, part := range splitSections(entry.BNSSection) {
			if part == code {
				return entry
			}
		}
	}
	return nil
}

// Sections returns every canonical IPC section number in the table,
// sorted for stable display.
func (t *Table) Sections() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeSection(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// splitSections breaks a compound section field like "375/376" or "101-102"
// into its individual numbers.
func splitSections(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == '/' || r == '-' || r == ',' || r == ' '
	})
	for i, p := range parts {
		parts[i] = normalizeSection(p)
	}
	return parts
}
