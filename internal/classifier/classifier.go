// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.

// Package classifier turns an ASN lookup outcome into a scan verdict.
package classifier

import (
	"strings"

	"github.com/dev-shamim-ahamed/vpn/internal/asndb"
)

// Verdict is the four-way outcome of a scan.
type Verdict int

const (
	RealUser Verdict = iota
	VPNUser
	Localhost
	DatabaseError
)

func (v Verdict) String() string {
	switch v {
	case RealUser:
		return "real_user"
	case VPNUser:
		return "vpn_user"
	case Localhost:
		return "localhost"
	case DatabaseError:
		return "database_error"
	}
	return "unknown"
}

// Display returns the user-facing label for the verdict, as rendered in
// the /scan JSON response.
func (v Verdict) Display() string {
	switch v {
	case RealUser:
		return "✅ Real user"
	case VPNUser:
		return "🚨 VPN / hosting user"
	case Localhost:
		return "🏠 Localhost — no public IP to scan"
	case DatabaseError:
		return "⚠️ ASN database not available"
	}
	return "unknown"
}

// Classify is a pure function of its inputs; repeated calls with the same
// arguments always produce the same verdict.
//
// Precedence: an unloaded database wins over everything, then a missing
// IP, then the keyword test. Bad input and not-found collapse into "no AS
// data", which defaults to RealUser — unknown IPs are assumed clean.
func Classify(dbReady bool, hasIP bool, res asndb.Result, keywords *KeywordSet) Verdict {
	if !dbReady {
		return DatabaseError
	}
	if !hasIP {
		return Localhost
	}

	org := ""
	if res.Status == asndb.StatusFound {
		org = res.Record.Organization
	}
	if keywords.Match(org) {
		return VPNUser
	}
	return RealUser
}

// KeywordSet holds the case-insensitive substrings matched against AS
// organization names. Read-only after construction.
type KeywordSet struct {
	keywords []string
}

// NewKeywordSet lower-cases and keeps the given keywords, dropping empty
// entries.
func NewKeywordSet(keywords []string) *KeywordSet {
	set := &KeywordSet{keywords: make([]string, 0, len(keywords))}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			set.keywords = append(set.keywords, kw)
		}
	}
	return set
}

// Match reports whether any keyword is a substring of org,
// case-insensitively. An empty org never matches.
func (s *KeywordSet) Match(org string) bool {
	if org == "" {
		return false
	}
	org = strings.ToLower(org)
	for _, kw := range s.keywords {
		if strings.Contains(org, kw) {
			return true
		}
	}
	return false
}

// Len reports the number of keywords in the set.
func (s *KeywordSet) Len() int {
	return len(s.keywords)
}
