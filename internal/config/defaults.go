package config

import "traitlin/internal/defs"

// Default configuration values.
const (
	// DefaultEncoding is the charmap the engine uses for text files.
	DefaultEncoding = "windows-1252"

	// DefaultSeparator joins the two display strings of a composite.
	DefaultSeparator = " "

	// DefaultOutputLocalisation is where composite localisation goes,
	// relative to the mod root.
	DefaultOutputLocalisation = "localisation/linearised_traits.csv"
)

// NewDefaultConfig returns a Config with every field defaulted. The
// traits output defaults to the input file itself; the generation marker
// makes the overwrite safe against accidental re-runs.
func NewDefaultConfig() *Config {
	return &Config{
		Encoding: DefaultEncoding,
		Combine:  CombineConfig{Separator: DefaultSeparator},
		Output: OutputConfig{
			Traits:       defs.TraitsFile,
			Localisation: DefaultOutputLocalisation,
		},
	}
}

// applyDefaults fills fields the YAML file left empty.
func applyDefaults(cfg *Config) {
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultEncoding
	}
	if cfg.Combine.Separator == "" {
		cfg.Combine.Separator = DefaultSeparator
	}
	if cfg.Output.Traits == "" {
		cfg.Output.Traits = defs.TraitsFile
	}
	if cfg.Output.Localisation == "" {
		cfg.Output.Localisation = DefaultOutputLocalisation
	}
}
