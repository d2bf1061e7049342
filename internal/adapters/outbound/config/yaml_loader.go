package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/logcheck/logcheck/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-directory configuration file.
const FileName = ".logcheck.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .logcheck.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .logcheck.yaml from dir.
// Returns DefaultConfig if the file does not exist. Keys left out of the
// file keep their default values.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}
