// Package config loads the optional shared config file for both tools.
// Command-line flags always win over file values.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user's home directory.
const FileName = ".claudekit.yaml"

// Config holds the user-level defaults.
type Config struct {
	// Lang is the default output locale for claudemd ("zh" or "en").
	Lang string `yaml:"lang,omitempty"`
	// TemplatesFile overrides the promptgen custom-template store path.
	TemplatesFile string `yaml:"templates_file,omitempty"`
}

// Path returns the config file location. Falls back to the working
// directory when the home directory cannot be resolved.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// Load reads the config file at path. A missing file yields the zero
// Config; a malformed file yields the zero Config and the parse error so
// callers can warn and continue.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, nil
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
