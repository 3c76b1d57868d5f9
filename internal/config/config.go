// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under BUSL-1.1 — See LICENSE for terms.
package config

import (
	"os"
)

type Config struct {
	ASNDatabasePath string
	KeywordsPath    string
	Port            string
	AppVersion      string
	Testing         bool
}

const defaultASNDatabasePath = "data/GeoLite2-ASN.mmdb"

func Load() (*Config, error) {
	dbPath := os.Getenv("ASN_DB_PATH")
	if dbPath == "" {
		dbPath = defaultASNDatabasePath
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// Optional; empty means the built-in keyword list is used.
	keywordsPath := os.Getenv("KEYWORDS_PATH")

	return &Config{
		ASNDatabasePath: dbPath,
		KeywordsPath:    keywordsPath,
		Port:            port,
		AppVersion:      "1.4.2",
		Testing:         false,
	}, nil
}
