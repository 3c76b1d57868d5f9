// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-shamim-ahamed/vpn/internal/asndb"
	"github.com/dev-shamim-ahamed/vpn/internal/classifier"
	"github.com/dev-shamim-ahamed/vpn/internal/clientip"
	"github.com/dev-shamim-ahamed/vpn/internal/metrics"
)

// ASNLookup is the slice of the database the scan handler needs.
type ASNLookup interface {
	Lookup(ip string) asndb.Result
}

// ScanHandler serves GET /scan. DB stays nil for the whole process
// lifetime when the dataset failed to load at startup; every scan then
// answers DatabaseError. No retry on request.
type ScanHandler struct {
	DB       ASNLookup
	Keywords *classifier.KeywordSet
	Metrics  *metrics.Metrics
}

func NewScanHandler(db ASNLookup, keywords *classifier.KeywordSet, m *metrics.Metrics) *ScanHandler {
	return &ScanHandler{DB: db, Keywords: keywords, Metrics: m}
}

// Scan classifies the caller's IP. Always 200; every outcome, including
// database-not-ready, is a descriptive payload rather than an error
// status.
func (h *ScanHandler) Scan(c *gin.Context) {
	ip, hasIP := clientip.Resolve(
		c.Query("ip"),
		c.GetHeader("X-Forwarded-For"),
		c.Request.RemoteAddr,
	)

	dbReady := h.DB != nil

	var res asndb.Result
	if dbReady && hasIP {
		res = h.DB.Lookup(ip)
		h.Metrics.RecordLookup(res.Status)
	}

	verdict := classifier.Classify(dbReady, hasIP, res, h.Keywords)
	h.Metrics.RecordScan(verdict)

	traceID, _ := c.Get("trace_id")
	slog.Info("Scan completed",
		"trace_id", traceID,
		"ip", ip,
		"verdict", verdict.String(),
		"lookup_status", res.Status.String(),
		"asn", res.Record.ASN,
		"organization", res.Record.Organization,
	)

	c.JSON(http.StatusOK, gin.H{"result": verdict.Display()})
}
