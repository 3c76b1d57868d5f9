// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.

// Package clientip picks the single candidate IP for a scan out of the
// values a request carries: an explicit ?ip= override, the forwarded-for
// chain, or the transport peer address.
package clientip

import (
	"net"
	"strings"
)

const mappedV4Prefix = "::ffff:"

// Resolve returns the candidate IP for a request, or ok=false when the
// request has no usable public address (loopback, empty values).
//
// queryIP is a deliberate debug override: when set it is used verbatim,
// with no normalization beyond trimming. Malformed values are passed
// through so the database lookup can report them as bad input instead of
// this layer guessing at validity.
func Resolve(queryIP, forwardedFor, remoteAddr string) (string, bool) {
	if ip := strings.TrimSpace(queryIP); ip != "" {
		return ip, true
	}

	candidate := strings.TrimSpace(forwardedFor)
	if candidate == "" {
		candidate = strings.TrimSpace(remoteAddr)
		if host, _, err := net.SplitHostPort(candidate); err == nil {
			candidate = host
		}
	}
	if candidate == "" {
		return "", false
	}

	// Forwarded-for lists hops client-first; only the first entry is the
	// client.
	if idx := strings.IndexByte(candidate, ','); idx >= 0 {
		candidate = strings.TrimSpace(candidate[:idx])
	}

	if strings.HasPrefix(candidate, mappedV4Prefix) {
		candidate = candidate[len(mappedV4Prefix):]
	}

	if candidate == "" || candidate == "127.0.0.1" || candidate == "::1" {
		return "", false
	}

	return candidate, true
}
