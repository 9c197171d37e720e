package config

import "traitlin/internal/fsio"

// Validate checks field values that defaults cannot repair.
func Validate(cfg *Config) error {
	if _, err := fsio.CharmapFor(cfg.Encoding); err != nil {
		return &ValidationError{
			Field:   "encoding",
			Message: "must be windows-1252 or iso-8859-1",
			Value:   cfg.Encoding,
		}
	}
	for _, base := range cfg.Bases.Extra {
		if base == "" {
			return &ValidationError{
				Field:   "bases.extra",
				Message: "base path must not be empty",
				Value:   cfg.Bases.Extra,
			}
		}
	}
	return nil
}
