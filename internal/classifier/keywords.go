// Copyright (c) 2024-2026 IT Help San Diego Inc.
// Licensed under AGPL-3.0 — See LICENSE for terms.
package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultKeywords covers the hosting providers, VPN brands, and cloud
// vendors whose AS organization names show up on VPN and datacenter exit
// IPs. Substring match, so "host" also covers "hosting", "hosted", etc.
var defaultKeywords = []string{
	"vpn",
	"host",
	"hosting",
	"datacenter",
	"data center",
	"server",
	"cloud",
	"proxy",
	"colocation",
	"colo",
	"dedicated",
	"amazon",
	"aws",
	"google cloud",
	"microsoft",
	"azure",
	"oracle",
	"alibaba",
	"tencent",
	"digitalocean",
	"linode",
	"akamai",
	"vultr",
	"choopa",
	"ovh",
	"hetzner",
	"contabo",
	"leaseweb",
	"scaleway",
	"online s.a.s",
	"upcloud",
	"kamatera",
	"ionos",
	"godaddy",
	"namecheap",
	"m247",
	"datacamp",
	"cdn77",
	"g-core",
	"gcore",
	"stark industries",
	"aeza",
	"quadranet",
	"psychz",
	"colocrossing",
	"frantech",
	"buyvm",
	"nordvpn",
	"expressvpn",
	"surfshark",
	"mullvad",
	"31173 services",
	"proton ag",
	"privax",
	"windscribe",
	"tefincom",
	"packethub",
	"clouvider",
	"zenlayer",
	"hydra communications",
	"edis",
	"terrahost",
	"melbikomas",
}

type keywordsFile struct {
	Keywords []string `yaml:"keywords"`
}

// DefaultKeywordSet returns the built-in keyword list.
func DefaultKeywordSet() *KeywordSet {
	return NewKeywordSet(defaultKeywords)
}

// LoadKeywordSet reads a YAML keyword file of the form:
//
//	keywords:
//	  - vpn
//	  - hosting
//
// The file replaces the built-in list entirely, so deployments (and
// tests) can substitute a minimal fixture.
func LoadKeywordSet(path string) (*KeywordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords file %s: %w", path, err)
	}

	var parsed keywordsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse keywords file %s: %w", path, err)
	}
	if len(parsed.Keywords) == 0 {
		return nil, fmt.Errorf("keywords file %s contains no keywords", path)
	}

	return NewKeywordSet(parsed.Keywords), nil
}
