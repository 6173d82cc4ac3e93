package config

import (
	"fmt"
	"os"

	"github.com/riskibarqy/football-warehouse/internal/domain/reference"
	"gopkg.in/yaml.v3"
)

type canonicalNamesFile struct {
	Players map[int64]string `yaml:"players"`
}

// LoadNameOverrides returns the built-in player corrections, extended by the
// YAML file at path when one is configured. Entries in the file win.
func LoadNameOverrides(path string) (reference.NameOverrides, error) {
	base := reference.DefaultPlayerOverrides()
	if path == "" {
		return base, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read canonical names file: %w", err)
	}

	var file canonicalNamesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse canonical names file %s: %w", path, err)
	}
	for id, name := range file.Players {
		if name == "" {
			return nil, fmt.Errorf("canonical names file %s: empty name for player %d", path, id)
		}
	}

	return base.Merge(file.Players), nil
}
