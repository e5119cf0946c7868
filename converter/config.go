package converter

import "fmt"

// Config holds all converter configuration options.
type Config struct {
	// BulletMarker is the marker used for bullet list items (-, * or +).
	BulletMarker rune `json:"bulletMarker,omitempty" yaml:"bulletMarker,omitempty"`
	// HeadingOffset is added to every heading level before clamping to 1-6.
	HeadingOffset int `json:"headingOffset,omitempty" yaml:"headingOffset,omitempty"`
	// LanguageMap rewrites code block language tags (e.g. "c#" -> "csharp").
	LanguageMap map[string]string `json:"languageMap,omitempty" yaml:"languageMap,omitempty"`
	// MediaBaseURL, when set, turns internal media ids into image links.
	MediaBaseURL string `json:"mediaBaseURL,omitempty" yaml:"mediaBaseURL,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.BulletMarker == 0 {
		c.BulletMarker = '-'
	}
	if c.LanguageMap == nil {
		c.LanguageMap = map[string]string{"c#": "csharp"}
	}
	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.BulletMarker != '-' && c.BulletMarker != '*' && c.BulletMarker != '+' {
		return fmt.Errorf("invalid bulletMarker %q: must be one of -, *, +", c.BulletMarker)
	}
	if c.HeadingOffset < 0 || c.HeadingOffset > 5 {
		return fmt.Errorf("headingOffset must be between 0 and 5, got %d", c.HeadingOffset)
	}
	for from, to := range c.LanguageMap {
		if from == "" || to == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}
	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
