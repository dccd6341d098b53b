package sectionref

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantNil     bool
		wantKeyword string
		wantNumber  string
	}{
		{
			name:        "section keyword",
			query:       "What is Section 420 IPC?",
			wantKeyword: "section",
			wantNumber:  "420",
		},
		{
			name:        "ipc keyword",
			query:       "explain ipc 302 to me",
			wantKeyword: "ipc",
			wantNumber:  "302",
		},
		{
			name:        "bns keyword",
			query:       "is BNS 318 the same offence?",
			wantKeyword: "bns",
			wantNumber:  "318",
		},
		{
			name:        "lettered section",
			query:       "punishment under section 124a",
			wantKeyword: "section",
			wantNumber:  "124A",
		},
		{
			name:        "no space before number",
			query:       "what does section420 cover",
			wantKeyword: "section",
			wantNumber:  "420",
		},
		{
			name:    "no reference",
			query:   "can my landlord evict me without notice?",
			wantNil: true,
		},
		{
			name:    "bare number",
			query:   "what happened in 1947?",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Parse(tt.query)
			if tt.wantNil {
				if ref != nil {
					t.Errorf("Parse(%q) = %+v, want nil", tt.query, ref)
				}
				return
			}
			if ref == nil {
				t.Fatalf("Parse(%q) = nil, want reference", tt.query)
			}
			if ref.Keyword != tt.wantKeyword {
				t.Errorf("Keyword = %q, want %q", ref.Keyword, tt.wantKeyword)
			}
			if ref.Number != tt.wantNumber {
				t.Errorf("Number = %q, want %q", ref.Number, tt.wantNumber)
			}
		})
	}
}

func TestParseFirstMatchWins(t *testing.T) {
	ref := Parse("compare section 302 with section 307")
	if ref == nil {
		t.Fatal("expected a reference")
	}
	if ref.Number != "302" {
		t.Errorf("Number = %q, want %q (first match)", ref.Number, "302")
	}
}

func TestParseAll(t *testing.T) {
	refs := ParseAll("compare ipc 302 and section 307, then ipc 302 again")
	if len(refs) != 2 {
		t.Fatalf("len = %d, want 2 (duplicates removed)", len(refs))
	}
	if refs[0].Number != "302" || refs[1].Number != "307" {
		t.Errorf("numbers = %q,%q, want 302,307", refs[0].Number, refs[1].Number)
	}
}
