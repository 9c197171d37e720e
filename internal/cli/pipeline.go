package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"traitlin/internal/config"
	"traitlin/internal/defs"
	"traitlin/internal/fsio"
	"traitlin/internal/linearise"
	"traitlin/internal/localisation"
	"traitlin/internal/traits"
	"traitlin/internal/ui"
)

// pipelineState carries everything the parse/aggregate/linearise stages
// produced, for the command that decides what to do with it.
type pipelineState struct {
	modRoot    string
	cfg        *config.Config
	reporter   ui.Reporter
	headless   *ui.HeadlessManager
	src        *fsio.OS
	doc        *traits.Document
	composites []linearise.Composite
	loc        linearise.Result
}

// addPipelineFlags registers the flags shared by linearise and check.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("base", nil, "Extra base path scanned for localisation, repeatable; the mod itself always comes first")
	cmd.Flags().String("separator", "", "String joining the personality and background display texts (default: space)")
	cmd.Flags().String("out-traits", "", "Traits output path relative to the mod root (default: common/traits.txt)")
	cmd.Flags().String("out-localisation", "", "Localisation output path relative to the mod root (default: localisation/linearised_traits.csv)")
	cmd.Flags().Bool("non-interactive", false, "Disable prompts and animated progress")
	cmd.Flags().Bool("no-color", false, "Disable coloured output")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// runPipeline executes parse -> aggregate -> linearise for the mod named
// by args and reports all recoverable diagnostics. The three fatal
// conditions (marker present, structural parse failure, a section with
// one trait or fewer) come back as errors with nothing written.
func runPipeline(cmd *cobra.Command, args []string) (*pipelineState, error) {
	modRoot := "."
	if len(args) == 1 {
		modRoot = args[0]
	}

	cfg := config.Load(modRoot)
	if s := getStringFlag(cmd, "separator"); s != "" {
		cfg.Combine.Separator = s
	}
	if s := getStringFlag(cmd, "out-traits"); s != "" {
		cfg.Output.Traits = s
	}
	if s := getStringFlag(cmd, "out-localisation"); s != "" {
		cfg.Output.Localisation = s
	}
	if extra, err := cmd.Flags().GetStringArray("base"); err == nil {
		cfg.Bases.Extra = append(cfg.Bases.Extra, extra...)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	theme := ui.NewTheme(getBoolFlag(cmd, "no-color"))
	headless := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		headless.ForceHeadless(true)
	}
	reporter := ui.NewReporter(theme)
	prog := ui.NewProgress(theme, headless)

	cm, err := fsio.CharmapFor(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	src := fsio.NewOS(cm)

	traitsPath := filepath.Join(modRoot, defs.TraitsFile)
	spin := prog.Spinner("parsing " + traitsPath)
	text, err := src.ReadText(traitsPath)
	if err != nil {
		spin.Stop()
		return nil, fmt.Errorf("read %s: %w", traitsPath, err)
	}
	doc, err := traits.Parse(text)
	spin.Stop()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", traitsPath, err)
	}
	if err := doc.CheckLinearisable(); err != nil {
		return nil, err
	}

	bases := append([]string{modRoot}, cfg.Bases.Extra...)
	agg := localisation.NewAggregator(src, reporter)
	bar := prog.Start("aggregating localisation", len(bases))
	agg.SetProgress(bar)
	table := agg.Aggregate(cmd.Context(), bases)
	bar.Done()

	comb := linearise.NewDefaultCombiner(cfg.Combine.Separator)
	composites := linearise.Traits(doc, comb)
	loc := linearise.Localisation(table, doc, comb)

	for _, key := range loc.Orphans {
		reporter.Warnf("no localisation found for %q", key)
	}
	reporter.Successf("%d personalities x %d backgrounds -> %d composite traits, %d orphan keys",
		len(doc.Personalities), len(doc.Backgrounds), len(composites), len(loc.Orphans))

	return &pipelineState{
		modRoot:    modRoot,
		cfg:        cfg,
		reporter:   reporter,
		headless:   headless,
		src:        src,
		doc:        doc,
		composites: composites,
		loc:        loc,
	}, nil
}
