// Copyright (C) 2025 the equipe403 maintainers
// See root-dir/LICENSE for more information

package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type CommonHTTP struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type TicketmasterConfig struct {
	BaseURL  string     `yaml:"base_url"` // e.g. https://app.ticketmaster.com
	APIKey   string     `yaml:"api_key"`
	PageSize int        `yaml:"page_size"` // default 200
	HTTP     CommonHTTP `yaml:"http"`
}

type SymplaConfig struct {
	BaseURL string     `yaml:"base_url"` // e.g. https://api.sympla.com.br
	Token   string     `yaml:"token"`    // sent as s_token header
	HTTP    CommonHTTP `yaml:"http"`
}

type SourceConfig struct {
	Type         string             `yaml:"type"` // "ticketmaster" | "sympla"
	Ticketmaster TicketmasterConfig `yaml:"ticketmaster"`
	Sympla       SymplaConfig       `yaml:"sympla"`
}

type DiscoveryConfig struct {
	// DefaultRadiusKm applies when a request does not carry its own
	// radius.
	DefaultRadiusKm float64 `yaml:"default_radius_km"`
}

type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	if c.Source.Type == "" {
		return c, errors.New("source.type is required")
	}
	if c.Discovery.DefaultRadiusKm <= 0 {
		c.Discovery.DefaultRadiusKm = 50
	}
	return c, nil
}
