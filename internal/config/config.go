/*
Package config loads the YAML configuration for the pwl command-line front
end: where the word-list file lives and how aggressively Suggest searches.

Use Cases:
  - cmd/pwl reads a project's .pwl.yml (or a path given via --config) before
    constructing a pwl.Dictionary.
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a pwl configuration file.
type Config struct {
	// DictionaryPath is the word-list file a Dictionary is backed by.
	DictionaryPath string `yaml:"dictionary_path"`
	// MaxSuggestions bounds how many suggestions Suggest returns; 0 uses the
	// package default.
	MaxSuggestions int `yaml:"max_suggestions"`
	// MaxErrors bounds the edit distance Suggest tolerates when no prior
	// suggestions are supplied; 0 uses the package default.
	MaxErrors int `yaml:"max_errors"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{DictionaryPath: ".pwl_words.txt"}
}

// Load reads and parses the YAML configuration file at path. A missing file
// is not an error: Default is returned instead, since the CLI is expected to
// work unconfigured.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
