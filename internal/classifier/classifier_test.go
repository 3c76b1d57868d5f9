// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.
package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dev-shamim-ahamed/vpn/internal/asndb"
)

func fixtureKeywords() *KeywordSet {
	return NewKeywordSet([]string{"vpn", "hosting", "cloud"})
}

func foundResult(asn uint, org string) asndb.Result {
	return asndb.Result{
		Status: asndb.StatusFound,
		Record: asndb.Record{ASN: asn, Organization: org},
	}
}

func TestClassifyKeywordMatch(t *testing.T) {
	tests := []struct {
		name string
		org  string
		want Verdict
	}{
		{"exact keyword", "SomeVPN Ltd", VPNUser},
		{"case insensitive", "EXAMPLE HOSTING SERVICES", VPNUser},
		{"substring match", "Acme CloudPlatform Inc", VPNUser},
		{"no keyword", "Deutsche Telekom AG", RealUser},
		{"residential isp", "Comcast Cable Communications", RealUser},
		{"empty organization", "", RealUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(true, true, foundResult(64512, tt.org), fixtureKeywords())
			if got != tt.want {
				t.Errorf("Classify(org=%q) = %v, want %v", tt.org, got, tt.want)
			}
		})
	}
}

func TestClassifyNoASData(t *testing.T) {
	// Not-found and bad-input both collapse to "no AS data", which
	// defaults clean.
	for _, status := range []asndb.Status{asndb.StatusNotFound, asndb.StatusBadInput} {
		got := Classify(true, true, asndb.Result{Status: status}, fixtureKeywords())
		if got != RealUser {
			t.Errorf("Classify(status=%v) = %v, want RealUser", status, got)
		}
	}
}

func TestClassifyDatabaseNotReady(t *testing.T) {
	// Database error wins over everything, even a missing IP or a
	// record that would otherwise match.
	if got := Classify(false, true, foundResult(64512, "SomeVPN Ltd"), fixtureKeywords()); got != DatabaseError {
		t.Errorf("Classify(db not ready) = %v, want DatabaseError", got)
	}
	if got := Classify(false, false, asndb.Result{}, fixtureKeywords()); got != DatabaseError {
		t.Errorf("Classify(db not ready, no IP) = %v, want DatabaseError", got)
	}
}

func TestClassifyLocalhost(t *testing.T) {
	if got := Classify(true, false, asndb.Result{}, fixtureKeywords()); got != Localhost {
		t.Errorf("Classify(no IP) = %v, want Localhost", got)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	res := foundResult(64512, "Example Hosting GmbH")
	first := Classify(true, true, res, fixtureKeywords())
	for i := 0; i < 10; i++ {
		if got := Classify(true, true, res, fixtureKeywords()); got != first {
			t.Fatalf("Classify() changed between calls: %v then %v", first, got)
		}
	}
}

func TestVerdictDisplayDistinct(t *testing.T) {
	seen := make(map[string]Verdict)
	for _, v := range []Verdict{RealUser, VPNUser, Localhost, DatabaseError} {
		display := v.Display()
		if display == "" {
			t.Errorf("Verdict %v has empty display string", v)
		}
		if prev, dup := seen[display]; dup {
			t.Errorf("Verdicts %v and %v share display string %q", prev, v, display)
		}
		seen[display] = v
	}
}

func TestKeywordSetNormalization(t *testing.T) {
	set := NewKeywordSet([]string{"  VPN  ", "", "Hosting"})
	if set.Len() != 2 {
		t.Fatalf("expected 2 keywords, got %d", set.Len())
	}
	if !set.Match("nordvpn exit") {
		t.Error("expected trimmed lower-cased keyword to match")
	}
}

func TestDefaultKeywordSet(t *testing.T) {
	set := DefaultKeywordSet()
	if set.Len() == 0 {
		t.Fatal("default keyword set is empty")
	}
	if !set.Match("M247 Europe SRL") {
		t.Error("expected default set to flag a known hosting organization")
	}
	if set.Match("Google LLC") {
		t.Error("default set must not flag Google LLC (public DNS, not hosting exit)")
	}
}

func TestLoadKeywordSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "keywords:\n  - vpn\n  - Hosting\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	set, err := LoadKeywordSet(path)
	if err != nil {
		t.Fatalf("LoadKeywordSet() error: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("expected 2 keywords, got %d", set.Len())
	}
	if !set.Match("Example Hosting GmbH") {
		t.Error("expected loaded keyword to match")
	}
}

func TestLoadKeywordSetMissingFile(t *testing.T) {
	if _, err := LoadKeywordSet(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing keywords file")
	}
}

func TestLoadKeywordSetEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	if err := os.WriteFile(path, []byte("keywords: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeywordSet(path); err == nil {
		t.Fatal("expected error for empty keyword list")
	}
}
