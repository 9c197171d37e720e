// Package fsio reads and writes mod files under the legacy 8-bit
// encoding the game engine uses for its text files.
package fsio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable indicates raw bytes that do not decode under the
// configured charmap. Callers treat such a file as empty.
var ErrUndecodable = errors.New("fsio: file does not decode under the configured encoding")

// CharmapFor resolves a configured encoding name. The empty name selects
// Windows-1252, the engine default.
func CharmapFor(name string) (*charmap.Charmap, error) {
	switch strings.ToLower(name) {
	case "", "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("fsio: unknown encoding %q", name)
	}
}

// OS reads and writes real files through a charmap. It satisfies the
// aggregator's Source interface.
type OS struct {
	cm *charmap.Charmap
}

// NewOS creates an OS transcoding through the given charmap.
func NewOS(cm *charmap.Charmap) *OS {
	return &OS{cm: cm}
}

// ReadText decodes the file at path. A byte with no mapping in the
// charmap yields ErrUndecodable.
func (o *OS) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	decoded, err := o.cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", ErrUndecodable
	}
	text := string(decoded)
	// The charmap decoder substitutes unmapped bytes instead of failing.
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", ErrUndecodable
	}
	return text, nil
}

// ListDir returns the names of regular files directly under dir.
func (o *OS) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// WriteText encodes text back to the charmap and writes it, creating
// parent directories as needed. Runes outside the charmap are replaced
// rather than failing the write.
func (o *OS) WriteText(path, text string) error {
	enc := encoding.ReplaceUnsupported(o.cm.NewEncoder())
	data, err := enc.Bytes([]byte(text))
	if err != nil {
		return fmt.Errorf("fsio: encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
