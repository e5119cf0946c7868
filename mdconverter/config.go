package mdconverter

import "fmt"

// Config holds parser configuration options.
type Config struct {
	// LanguageMap rewrites code fence language tags before they are stored
	// as the code block's language attribute (e.g. "c#" -> "csharp").
	LanguageMap map[string]string `json:"languageMap,omitempty" yaml:"languageMap,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.LanguageMap == nil {
		c.LanguageMap = map[string]string{"c#": "csharp"}
	}
	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	if c.LanguageMap != nil {
		cloned.LanguageMap = make(map[string]string, len(c.LanguageMap))
		for key, value := range c.LanguageMap {
			cloned.LanguageMap[key] = value
		}
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	for from, to := range c.LanguageMap {
		if from == "" || to == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}
	return nil
}
