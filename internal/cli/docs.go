package cli

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"traitlin/internal/ui"
)

//go:embed guide.md
var formatGuide string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the trait and localisation format guide",
	RunE:  runDocs,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, _ []string) error {
	if ui.NewHeadlessManager().IsHeadless() {
		fmt.Fprint(cmd.OutOrStdout(), formatGuide)
		return nil
	}
	rendered, err := glamour.Render(formatGuide, "auto")
	if err != nil {
		// Styling is cosmetic; fall back to the raw markdown.
		fmt.Fprint(cmd.OutOrStdout(), formatGuide)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
