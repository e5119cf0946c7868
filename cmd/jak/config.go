package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rgonek/jira-agent-kit/converter"
	"github.com/rgonek/jira-agent-kit/mdconverter"
)

// fileConfig is the on-disk YAML configuration.
type fileConfig struct {
	// BulletMarker is the unordered list marker for rendered markup ("-" or "*").
	BulletMarker string `yaml:"bullet_marker"`
	// HeadingOffset shifts every heading level on render.
	HeadingOffset int `yaml:"heading_offset"`
	// LanguageMap rewrites code block language identifiers in both directions.
	LanguageMap map[string]string `yaml:"language_map"`
	// MediaBaseURL resolves internal media ids to linkable URLs.
	MediaBaseURL string `yaml:"media_base_url"`
	// MaxAllowedDisplay caps allowed-value listings in field errors.
	MaxAllowedDisplay int `yaml:"max_allowed_display"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func (c fileConfig) converterConfig() converter.Config {
	cfg := converter.Config{
		HeadingOffset: c.HeadingOffset,
		LanguageMap:   c.LanguageMap,
		MediaBaseURL:  c.MediaBaseURL,
	}
	if c.BulletMarker != "" {
		cfg.BulletMarker = rune(c.BulletMarker[0])
	}
	return cfg
}

func (c fileConfig) mdconverterConfig() mdconverter.Config {
	return mdconverter.Config{
		LanguageMap: c.LanguageMap,
	}
}
