// Package config provides configuration types and defaults for texindex.
package config

// IndexDef names one index of a multi-index document.
type IndexDef struct {
	// Shortcut is the key used in entries and commands (e.g. "aut").
	Shortcut string `mapstructure:"shortcut"`
	// Name is the display name (e.g. "Index of Authors").
	Name string `mapstructure:"name"`
}

// Config holds the document-level options the output paths depend on.
type Config struct {
	// UseIndices enables multi-index processing (\sindex, type attributes).
	UseIndices bool `mapstructure:"use_indices"`
	// Indices lists the defined indices of a multi-index document.
	Indices []IndexDef `mapstructure:"indices"`
	// Encoding selects the output encoding for sort-key validation:
	// "utf8" (default) or "ascii".
	Encoding string `mapstructure:"encoding"`
}

// Defaults returns the configuration for a plain single-index document.
func Defaults() Config {
	return Config{
		UseIndices: false,
		Indices:    []IndexDef{{Shortcut: "idx", Name: "Index"}},
		Encoding:   "utf8",
	}
}

// FindShortcut resolves an index shortcut, returning nil when the name is
// not registered. Callers degrade to an "unknown index type" display
// string rather than failing.
func (c Config) FindShortcut(shortcut string) *IndexDef {
	for i := range c.Indices {
		if c.Indices[i].Shortcut == shortcut {
			return &c.Indices[i]
		}
	}
	return nil
}
