// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.

// Package metrics exposes Prometheus counters for scan outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dev-shamim-ahamed/vpn/internal/asndb"
	"github.com/dev-shamim-ahamed/vpn/internal/classifier"
)

// Metrics holds the scan counters. A nil *Metrics is a valid no-op
// recorder so handlers never need to guard their calls.
type Metrics struct {
	scansTotal   *prometheus.CounterVec
	lookupsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them on the given registerer.
// Passing nil uses prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		scansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vpnscan",
			Name:      "scans_total",
			Help:      "Scan requests by verdict.",
		}, []string{"verdict"}),
		lookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vpnscan",
			Name:      "asn_lookups_total",
			Help:      "ASN database lookups by outcome.",
		}, []string{"status"}),
	}

	for _, collector := range []prometheus.Collector{m.scansTotal, m.lookupsTotal} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordScan counts one completed scan.
func (m *Metrics) RecordScan(verdict classifier.Verdict) {
	if m == nil {
		return
	}
	m.scansTotal.WithLabelValues(verdict.String()).Inc()
}

// RecordLookup counts one ASN database lookup.
func (m *Metrics) RecordLookup(status asndb.Status) {
	if m == nil {
		return
	}
	m.lookupsTotal.WithLabelValues(status.String()).Inc()
}
