package defs

// Well-known paths inside a mod or game base path.
const (
	// TraitsFile is the trait definition file, relative to a base path.
	TraitsFile = "common/traits.txt"

	// LocalisationDir is the directory scanned for localisation CSV files,
	// relative to a base path.
	LocalisationDir = "localisation"

	// LocalisationExt is the file extension of localisation files.
	LocalisationExt = ".csv"

	// ConfigYAML is the optional traitlin configuration file at the mod root.
	ConfigYAML = "traitlin.yaml"
)

// GenerationMarker is the literal first line of every file traitlin writes.
// Its presence at the start of a traits file means the file is already
// linearised; running the tool on it again would square the trait count.
const GenerationMarker = "### generated by traitlin - do not linearise again ###"

// NoBackground is the single background trait emitted into linearised
// output. The game requires both sections to exist, so the background
// section collapses to this one placeholder.
const NoBackground = "no_background"
