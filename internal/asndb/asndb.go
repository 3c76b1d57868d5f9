// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.
package asndb

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"
)

// Status describes the outcome of a single lookup. Bad input and absent
// ranges are ordinary outcomes here, not errors: the classifier treats
// both the same as "no AS data".
type Status int

// StatusNotFound is the zero value, so an absent Result already means
// "no AS data".
const (
	StatusNotFound Status = iota
	StatusFound
	StatusBadInput
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusBadInput:
		return "bad_input"
	}
	return "unknown"
}

// Record is the AS metadata for one IP range.
type Record struct {
	ASN          uint   `json:"asn"`
	Organization string `json:"organization"`
}

// Result is the typed outcome of Lookup. Record is the zero value unless
// Status is StatusFound.
type Result struct {
	Status Status
	Record Record
}

// DB wraps a read-only GeoLite2-ASN database. Safe for concurrent lookups
// after Open returns.
type DB struct {
	reader *geoip2.Reader
}

// Metadata reports build information of the loaded dataset, for the
// health endpoint.
type Metadata struct {
	BuildTime time.Time `json:"build_time"`
	NodeCount uint      `json:"node_count"`
}

// Open loads the ASN database at path. Callers are expected to treat a
// failure as a degraded-but-running state, not a fatal one.
func Open(path string) (*DB, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ASN database %s: %w", path, err)
	}

	meta := reader.Metadata()
	slog.Info("ASN database loaded",
		"path", path,
		"build_time", time.Unix(int64(meta.BuildEpoch), 0).UTC().Format(time.RFC3339),
		"node_count", meta.NodeCount,
	)

	return &DB{reader: reader}, nil
}

// Lookup resolves ip to its AS record. Malformed strings yield
// StatusBadInput and IPs outside every known range yield StatusNotFound;
// neither is surfaced as an error.
func (d *DB) Lookup(ip string) Result {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Result{Status: StatusBadInput}
	}

	asn, err := d.reader.ASN(parsed)
	if err != nil {
		slog.Warn("ASN lookup failed", "ip", ip, "error", err)
		return Result{Status: StatusNotFound}
	}
	if asn == nil || (asn.AutonomousSystemNumber == 0 && asn.AutonomousSystemOrganization == "") {
		return Result{Status: StatusNotFound}
	}

	return Result{
		Status: StatusFound,
		Record: Record{
			ASN:          asn.AutonomousSystemNumber,
			Organization: asn.AutonomousSystemOrganization,
		},
	}
}

// Metadata returns build information of the loaded dataset.
func (d *DB) Metadata() Metadata {
	meta := d.reader.Metadata()
	return Metadata{
		BuildTime: time.Unix(int64(meta.BuildEpoch), 0).UTC(),
		NodeCount: meta.NodeCount,
	}
}

// Close releases the underlying memory-mapped file.
func (d *DB) Close() error {
	return d.reader.Close()
}
