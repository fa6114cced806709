package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lunastra/concord/internal/config"
	"github.com/lunastra/concord/internal/report"
	"github.com/lunastra/concord/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chart-a> <chart-b>",
	Short: "Run the full compatibility analysis for two charts",
	Long: `Analyze runs synastry, composite, and guna milan for two charts and
fuses them into one weighted report. Each argument is either a *.chart.toml
file path or the name of a stored profile.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "emit the full analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	printer := ui.New()

	ctx, cancel := signalContext()
	defer cancel()

	a, b, nameA, nameB, err := resolvePair(ctx, cfg, args[0], args[1])
	if err != nil {
		return err
	}

	em, err := newEmitter(cfg)
	if err != nil {
		return err
	}
	defer em.Close()

	an, err := report.NewRunner(em).Run(ctx, a, b, cfg.ReportOptions())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return emitJSON(an)
	}

	printer.Report(an, nameA, nameB)
	return nil
}
