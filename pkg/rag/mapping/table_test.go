package mapping

import (
	"sort"
	"testing"
)

func TestLookupDirect(t *testing.T) {
	table := NewTable()

	entry := table.Lookup("420")
	if entry == nil {
		t.Fatal("Lookup(420) returned nil")
	}
	if entry.BNSSection != "318" {
		t.Errorf("BNSSection = %q, want %q", entry.BNSSection, "318")
	}
}

func TestLookupAlias(t *testing.T) {
	table := NewTable()

	canonical := table.Lookup("420")
	aliased := table.Lookup("415")
	if aliased == nil {
		t.Fatal("Lookup(415) returned nil")
	}
	if aliased != canonical {
		t.Error("alias 415 did not resolve to the canonical 420 entry")
	}

	if table.Lookup("376") != table.Lookup("375") {
		t.Error("alias 376 did not resolve to the 375 entry")
	}
}

func TestLookupByBNSRange(t *testing.T) {
	tests := []struct {
		query   string
		wantIPC string
	}{
		{"63", "375/376"},  // slash range "63/64"
		{"64", "375/376"},
		{"85", "498A"},     // hyphen range "85-86"
		{"86", "498A"},
		{"189", "143"},
	}

	table := NewTable()
	for _, tt := range tests {
		entry := table.Lookup(tt.query)
		if entry == nil {
			t.Errorf("Lookup(%q) = nil, want entry with IPC %q", tt.query, tt.wantIPC)
			continue
		}
		if entry.IPCSection != tt.wantIPC {
			t.Errorf("Lookup(%q).IPCSection = %q, want %q", tt.query, entry.IPCSection, tt.wantIPC)
		}
	}
}

func TestLookupMatchesReferenceNumbers(t *testing.T) {
	tests := []struct {
		ipc     string
		wantBNS string
	}{
		{"420", "318"},
		{"302", "101"},
		{"307", "109"},
		{"124A", "150"},
		{"143", "189"},
	}

	table := NewTable()
	for _, tt := range tests {
		entry := table.Lookup(tt.ipc)
		if entry == nil {
			t.Errorf("Lookup(%q) = nil", tt.ipc)
			continue
		}
		if entry.BNSSection != tt.wantBNS {
			t.Errorf("Lookup(%q).BNSSection = %q, want %q", tt.ipc, entry.BNSSection, tt.wantBNS)
		}
	}
}

func TestLookupIdempotent(t *testing.T) {
	table := NewTable()

	first := table.Lookup("302")
	second := table.Lookup("302")
	if first != second {
		t.Error("repeated lookups returned different entries")
	}
}

func TestLookupUnknown(t *testing.T) {
	table := NewTable()

	if entry := table.Lookup("9999"); entry != nil {
		t.Errorf("Lookup(9999) = %+v, want nil", entry)
	}
	if entry := table.Lookup(""); entry != nil {
		t.Errorf("Lookup(\"\") = %+v, want nil", entry)
	}
}

func TestSectionsSortedAndComplete(t *testing.T) {
	table := NewTable()

	sections := table.Sections()
	if len(sections) == 0 {
		t.Fatal("Sections() returned nothing")
	}
	if !sort.StringsAreSorted(sections) {
		t.Errorf("Sections() not sorted: %v", sections)
	}
	for _, s := range sections {
		if table.Lookup(s) == nil {
			t.Errorf("Sections() lists %q but Lookup(%q) = nil", s, s)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	table := NewTable()

	if table.Lookup("124a") != table.Lookup("124A") {
		t.Error("lookup should be case-insensitive for lettered sections")
	}
}
