package localisation

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"traitlin/internal/defs"
	"traitlin/internal/ui"
)

// parseWorkers bounds concurrent file parses across all base paths.
const parseWorkers = 8

// Source supplies decoded file text and directory listings to the
// aggregator. Listings are treated as unordered; the aggregator imposes
// its own lexical sort.
type Source interface {
	// ReadText returns the decoded text of the file at path.
	ReadText(path string) (string, error)

	// ListDir returns the file names directly under dir.
	ListDir(dir string) ([]string, error)
}

// Aggregator merges the localisation tables of several base paths with
// first-occurrence-wins precedence.
type Aggregator struct {
	src Source
	rep ui.Reporter
	bar ui.ProgressBar
}

// NewAggregator creates an Aggregator reading through src and reporting
// recoverable failures and per-base summaries through rep.
func NewAggregator(src Source, rep ui.Reporter) *Aggregator {
	return &Aggregator{src: src, rep: rep}
}

// SetProgress attaches a progress bar advanced once per base path. Pass
// nil to detach.
func (a *Aggregator) SetProgress(bar ui.ProgressBar) {
	a.bar = bar
}

// Aggregate scans the localisation directory of every base path and
// merges the parsed tables. Precedence follows the total order of
// (base path position, sorted filename): the first occurrence of a key
// fixes its value, later occurrences are discarded. File parses run
// concurrently, but the merge is a single sequential fold over that fixed
// order, so scheduling can never change which occurrence is first.
//
// Every failure below the scan is recoverable: an unlistable directory,
// an undecodable file or a malformed file contributes an empty table and
// a warning.
func (a *Aggregator) Aggregate(ctx context.Context, basePaths []string) Table {
	files := make([][]string, len(basePaths))
	tables := make([][]Table, len(basePaths))

	for i, base := range basePaths {
		dir := filepath.Join(base, defs.LocalisationDir)
		names, err := a.src.ListDir(dir)
		if err != nil {
			a.rep.Warnf("skipping %s: %v", dir, err)
			continue
		}
		var csvs []string
		for _, name := range names {
			if strings.EqualFold(filepath.Ext(name), defs.LocalisationExt) {
				csvs = append(csvs, name)
			}
		}
		sort.Strings(csvs)
		files[i] = csvs
		tables[i] = make([]Table, len(csvs))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parseWorkers)
	for i, base := range basePaths {
		dir := filepath.Join(base, defs.LocalisationDir)
		for j, name := range files[i] {
			path := filepath.Join(dir, name)
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				text, err := a.src.ReadText(path)
				if err != nil {
					a.rep.Warnf("%s: %v, treating file as empty", path, err)
					return nil
				}
				tbl, err := Parse(text)
				if err != nil {
					a.rep.Warnf("%s: %v, treating file as empty", path, err)
					return nil
				}
				tables[i][j] = tbl
				return nil
			})
		}
	}
	// Workers never return an error; Wait only orders the fold after every
	// parse has finished.
	_ = g.Wait()

	merged := Table{}
	for i, base := range basePaths {
		for _, tbl := range tables[i] {
			merged.Merge(tbl)
		}
		a.rep.Infof("scanned %s: %d localisation files", base, len(files[i]))
		if a.bar != nil {
			a.bar.Increment(1)
		}
	}
	return merged
}
