package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"traitlin/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "traitlin",
	Short: "Linearise two-axis trait definitions into flat trait lists",
	Long: `traitlin expands the personality and background sections of a mod's
common/traits.txt into one flat list of composite traits, one per
(personality, background) pair, together with the matching composite
localisation entries.

The game engine only supports flat trait lists; traitlin performs the
combinatorial expansion once, offline, and marks its output so it is
never expanded twice.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("traitlin %s\n", version.GetFullVersion()))
}
