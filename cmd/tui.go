package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lunastra/concord/internal/chartfile"
	"github.com/lunastra/concord/internal/config"
	"github.com/lunastra/concord/internal/report"
	"github.com/lunastra/concord/internal/tui"
)

// tuiCmd launches the interactive report browser.
var tuiCmd = &cobra.Command{
	Use:   "tui <chart-a> <chart-b>",
	Short: "Browse the compatibility report interactively",
	Long: `Launch an interactive browser over the full analysis: the fused
report plus per-technique tabs for synastry, composite, and guna milan.
When the arguments are chart files, edits to them reload the analysis live.`,
	Args: cobra.ExactArgs(2),
	RunE: runTUIBrowser,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUIBrowser(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	// Resolve once up front so invalid arguments fail before the screen
	// switches to the alt buffer.
	_, _, nameA, nameB, err := resolvePair(ctx, cfg, args[0], args[1])
	if err != nil {
		return err
	}

	load := func() (*report.Analysis, error) {
		a, b, _, _, err := resolvePair(ctx, cfg, args[0], args[1])
		if err != nil {
			return nil, err
		}
		return report.NewRunner(nil).Run(ctx, a, b, cfg.ReportOptions())
	}

	watcher, err := chartWatcher(args)
	if err != nil {
		return err
	}
	if watcher != nil {
		if err := watcher.Start(); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	return tui.Run(nameA, nameB, load, watcher)
}

// chartWatcher watches the directory of the first file argument so edits
// re-trigger the analysis. Profile-only invocations get no watcher.
func chartWatcher(args []string) (*chartfile.Watcher, error) {
	for _, arg := range args {
		if chartfile.IsChartFile(arg) || fileExists(arg) {
			return chartfile.NewWatcher(filepath.Dir(arg))
		}
	}
	return nil, nil
}
