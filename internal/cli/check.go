package cli

import "github.com/spf13/cobra"

var checkCmd = &cobra.Command{
	Use:   "check [mod-path]",
	Short: "Run the full pipeline without writing anything",
	Long: `Parse, aggregate and linearise exactly like the linearise command, but
never write output. Useful in CI to catch malformed trait files, broken
localisation files and orphan keys.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addPipelineFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, err := runPipeline(cmd, args)
	return err
}
