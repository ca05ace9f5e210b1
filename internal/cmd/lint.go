package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/tellint/internal/config"
	"github.com/pthm/tellint/internal/document"
	"github.com/pthm/tellint/internal/linter"
	"github.com/pthm/tellint/internal/logger"
	"github.com/pthm/tellint/internal/reporter"
	"github.com/pthm/tellint/internal/ui"
)

// ErrLintFailed is returned when at least one document fails its checks
var ErrLintFailed = errors.New("one or more documents failed")

// ErrInput is returned when at least one document could not be read
var ErrInput = errors.New("one or more documents could not be read")

var (
	configFile      string
	presetName      string
	colonBudget     int
	quoteOnlyColons bool
	skipTitle       bool
	jobs            int
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Lint Chinese prose documents",
	Long: `Analyze plain-text documents for stylistic patterns and report a
PASS/FAIL verdict for each one. With no path, or the path "-", the
document is read from stdin.

Examples:
  tellint lint chapter01.txt
  tellint lint --preset chapter chapters/*.txt
  tellint lint --colon-budget 0 --format json draft.txt > report.json
  cat draft.txt | tellint lint`,
	RunE:         runLint,
	SilenceUsage: true,
}

func init() {
	lintCmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file (default: "+config.DefaultFileName+" in the working directory)")
	lintCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Built-in preset (see 'tellint presets')")
	lintCmd.Flags().IntVar(&colonBudget, "colon-budget", 0, "Maximum colon violations before failing (default 2 via the default preset)")
	lintCmd.Flags().BoolVar(&quoteOnlyColons, "quote-only-colons", true, "Exempt colons that introduce quoted speech, and fail on any other colon")
	lintCmd.Flags().BoolVar(&skipTitle, "skip-title", false, "Do not count colons on the first line")
	lintCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Documents analyzed in parallel (default: number of CPUs)")
	RootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	ctx := logger.WithContext(cmd.Context(), log)
	u := newUI(cmd)

	paths := args
	if len(paths) == 0 {
		paths = []string{document.StdinPath}
	}

	// Reject a bad format before doing any work
	rep, err := reporter.New(format, u.Writer, u.Styles)
	if err != nil {
		return err
	}

	progress := u.StartProgress()
	defer func() {
		progress.Done(nil)
	}()

	// Stage 1: Resolve configuration
	progress.SetStage(ui.StageResolveConfig)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Resolve(config.Options{
		Preset: presetName,
		File:   configFile,
		Dir:    cwd,
		Flags:  flagOverlay(cmd),
	})
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}
	log.Debug("configuration resolved",
		"colon_budget", cfg.ColonBudget,
		"quote_only", cfg.ColonExceptionsQuoteOnly,
		"skip_title", cfg.SkipTitleLine,
	)

	// Stage 2: Lint documents
	progress.SetStage(ui.StageLint)
	progress.SetDocumentCount(len(paths))

	outcomes, err := linter.LintAll(ctx, paths, cfg, linter.Options{
		Jobs:    jobs,
		Stdin:   cmd.InOrStdin(),
		OnStart: progress.DocumentStart,
		OnDone: func(o linter.Outcome) {
			progress.DocumentDone(o.Err != nil || !o.Result.Pass())
		},
	})

	// Stop progress before reporting
	progress.Done(err)
	progress = nil

	if err != nil {
		return err
	}

	// Stage 3: Report
	var results []*linter.Result
	var inputErrors int
	for _, o := range outcomes {
		if o.Err != nil {
			inputErrors++
			// Skipped documents are warnings; content failures are in the report
			fmt.Fprintln(u.ErrWriter, u.Styles.Warning.Render(
				fmt.Sprintf("%s skipped: %v", u.Styles.IconWarning, o.Err),
			))
			continue
		}
		results = append(results, o.Result)
	}

	if len(results) > 0 {
		if err := rep.Report(results); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if inputErrors > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInput, inputErrors, len(paths))
	}
	for _, r := range results {
		if !r.Pass() {
			return ErrLintFailed
		}
	}
	return nil
}

// flagOverlay returns the config fields the user set explicitly on the
// command line. Flags left at their defaults do not override the preset or
// config file.
func flagOverlay(cmd *cobra.Command) config.Overlay {
	var o config.Overlay
	flags := cmd.Flags()

	if flags.Changed("colon-budget") {
		v := colonBudget
		o.ColonBudget = &v
	}
	if flags.Changed("quote-only-colons") {
		v := quoteOnlyColons
		o.ColonExceptionsQuoteOnly = &v
	}
	if flags.Changed("skip-title") {
		v := skipTitle
		o.SkipTitleLine = &v
	}
	return o
}
