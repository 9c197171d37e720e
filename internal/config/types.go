// Package config loads the optional traitlin.yaml file at the mod root
// and applies defaults and validation.
package config

// Config is the full traitlin configuration.
type Config struct {
	// Encoding names the legacy charmap of the mod's text files.
	Encoding string `yaml:"encoding"`

	// Bases configures the localisation sources beyond the mod itself.
	Bases BasesConfig `yaml:"bases"`

	// Combine configures the composite combination rule.
	Combine CombineConfig `yaml:"combine"`

	// Output configures where linearised files are written, relative to
	// the mod root.
	Output OutputConfig `yaml:"output"`
}

// BasesConfig lists extra base paths whose localisation supplements the
// mod's own. They are scanned after the mod, in the given order, so the
// mod always wins key collisions.
type BasesConfig struct {
	Extra []string `yaml:"extra"`
}

// CombineConfig configures the default combination strategy.
type CombineConfig struct {
	// Separator joins the personality and background display strings.
	Separator string `yaml:"separator"`
}

// OutputConfig holds the output file paths.
type OutputConfig struct {
	Traits       string `yaml:"traits"`
	Localisation string `yaml:"localisation"`
}
