package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const match3File = "match3.yaml"

// SearchPaths lists where LoadMatch3 looks for match3.yaml when no file is
// named, most specific first: the user's ~/.match3/configs, then ./configs.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".match3", "configs", match3File))
	}
	return append(paths, filepath.Join("configs", match3File))
}

// LoadMatch3 loads the match-3 configuration. A non-empty customPath must
// exist and be valid. Otherwise the first readable, valid file of SearchPaths
// wins, and the embedded default is used when none is.
func LoadMatch3(customPath string) (Match3Config, error) {
	if customPath != "" {
		return loadMatch3File(customPath)
	}
	for _, path := range SearchPaths() {
		if cfg, err := loadMatch3File(path); err == nil {
			return cfg, nil
		}
	}
	cfg, err := parseMatch3(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil
	}
	return cfg, nil
}

func loadMatch3File(path string) (Match3Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Match3Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseMatch3(data)
	if err != nil {
		return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseMatch3 decodes YAML over the hardcoded defaults and validates the result.
// Fields missing from the file keep their default values.
func parseMatch3(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	cfg.Presets = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultMatch3Config().Presets
	}
	if err := cfg.Validate(); err != nil {
		return Match3Config{}, err
	}
	return cfg, nil
}
