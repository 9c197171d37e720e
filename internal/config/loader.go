package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"traitlin/internal/defs"
)

// Load reads traitlin.yaml from the mod root and returns a Config with
// defaults applied for missing fields. A missing file yields pure
// defaults; invalid YAML is reported and yields pure defaults too, so a
// broken config file never blocks a run.
func Load(modRoot string) *Config {
	cfg := NewDefaultConfig()

	path := filepath.Join(modRoot, defs.ConfigYAML)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read config, using defaults", "path", path, "error", err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("invalid config, using defaults",
			"path", path, "error", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		return NewDefaultConfig()
	}

	applyDefaults(cfg)
	return cfg
}
