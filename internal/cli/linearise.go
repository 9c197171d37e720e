package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"traitlin/internal/fsio"
	"traitlin/internal/localisation"
	"traitlin/internal/traits"
)

var lineariseCmd = &cobra.Command{
	Use:     "linearise [mod-path]",
	Aliases: []string{"linearize"},
	Short:   "Expand personality x background traits and write the output files",
	Long: `Parse the mod's common/traits.txt, aggregate localisation from the mod
and every extra base path, compute the full cross product and write the
linearised traits file plus the composite localisation CSV.

By default the traits output replaces common/traits.txt in place. The
generation marker written at the top of the file makes a second run
refuse the already-linearised input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLinearise,
}

func init() {
	rootCmd.AddCommand(lineariseCmd)
	addPipelineFlags(lineariseCmd)
	lineariseCmd.Flags().Bool("force", false, "Overwrite existing output without confirmation")
	lineariseCmd.Flags().Bool("dry-run", false, "Run the full pipeline but write nothing")
}

func runLinearise(cmd *cobra.Command, args []string) error {
	st, err := runPipeline(cmd, args)
	if err != nil {
		return err
	}
	if getBoolFlag(cmd, "dry-run") {
		st.reporter.Infof("dry run, nothing written")
		return nil
	}

	outTraits := filepath.Join(st.modRoot, st.cfg.Output.Traits)
	outLoc := filepath.Join(st.modRoot, st.cfg.Output.Localisation)

	if !getBoolFlag(cmd, "force") && !st.headless.IsHeadless() {
		var existing []string
		for _, p := range []string{outTraits, outLoc} {
			if fsio.Exists(p) {
				existing = append(existing, p)
			}
		}
		if len(existing) > 0 {
			ok, err := confirmOverwrite(existing)
			if err != nil {
				return err
			}
			if !ok {
				st.reporter.Infof("cancelled, nothing written")
				return nil
			}
		}
	}

	flat := make([]traits.Trait, len(st.composites))
	for i, c := range st.composites {
		flat[i] = c.Trait()
	}
	if err := st.src.WriteText(outTraits, traits.Format(flat)); err != nil {
		return fmt.Errorf("write %s: %w", outTraits, err)
	}
	if err := st.src.WriteText(outLoc, localisation.Format(st.loc.Entries)); err != nil {
		return fmt.Errorf("write %s: %w", outLoc, err)
	}
	st.reporter.Successf("wrote %s and %s", outTraits, outLoc)
	return nil
}

// confirmOverwrite asks before replacing existing output files.
func confirmOverwrite(paths []string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Overwrite %s?", strings.Join(paths, ", "))).
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return ok, nil
}
