package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"traitlin/internal/defs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, defs.ConfigYAML), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return dir
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg := Load(t.TempDir())

	if cfg.Encoding != DefaultEncoding {
		t.Errorf("Encoding = %q, want default %q", cfg.Encoding, DefaultEncoding)
	}
	if cfg.Combine.Separator != DefaultSeparator {
		t.Errorf("Separator = %q, want default %q", cfg.Combine.Separator, DefaultSeparator)
	}
	if cfg.Output.Traits != defs.TraitsFile {
		t.Errorf("Output.Traits = %q, want %q", cfg.Output.Traits, defs.TraitsFile)
	}
	if cfg.Output.Localisation != DefaultOutputLocalisation {
		t.Errorf("Output.Localisation = %q", cfg.Output.Localisation)
	}
}

func TestLoadValid(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
encoding: latin-1
bases:
  extra:
    - /opt/game
combine:
  separator: " - "
output:
  localisation: localisation/flat.csv
`)
	cfg := Load(dir)

	if cfg.Encoding != "latin-1" {
		t.Errorf("Encoding = %q", cfg.Encoding)
	}
	if len(cfg.Bases.Extra) != 1 || cfg.Bases.Extra[0] != "/opt/game" {
		t.Errorf("Bases.Extra = %v", cfg.Bases.Extra)
	}
	if cfg.Combine.Separator != " - " {
		t.Errorf("Separator = %q", cfg.Combine.Separator)
	}
	// Fields the file omits keep their defaults.
	if cfg.Output.Traits != defs.TraitsFile {
		t.Errorf("Output.Traits = %q, want default", cfg.Output.Traits)
	}
	if cfg.Output.Localisation != "localisation/flat.csv" {
		t.Errorf("Output.Localisation = %q", cfg.Output.Localisation)
	}
}

func TestLoadInvalidYAMLUsesDefaults(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "encoding: [unclosed\n")
	cfg := Load(dir)

	if cfg.Encoding != DefaultEncoding {
		t.Errorf("Encoding = %q, want default after invalid YAML", cfg.Encoding)
	}
}

// Not parallel: swaps the default logger.
func TestLoadInvalidYAMLLogsParserPosition(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	dir := writeConfig(t, "encoding: [unclosed\n")
	Load(dir)

	log := buf.String()
	if !strings.Contains(log, ErrInvalidYAML.Error()) {
		t.Errorf("log missing sentinel: %q", log)
	}
	// The underlying yaml error carries the position of the problem.
	if !strings.Contains(log, "line") {
		t.Errorf("log missing yaml parser detail: %q", log)
	}
}
