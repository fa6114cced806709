package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunastra/concord/internal/chart"
	"github.com/lunastra/concord/internal/composite"
	"github.com/lunastra/concord/internal/config"
	"github.com/lunastra/concord/internal/guna"
	"github.com/lunastra/concord/internal/synastry"
	"github.com/lunastra/concord/internal/ui"
)

// The three single-branch commands share the resolve-compute-render shape;
// each one runs just its technique without the fusion layer.

var synastryCmd = &cobra.Command{
	Use:   "synastry <chart-a> <chart-b>",
	Short: "Show cross-chart aspects and house overlays",
	Args:  cobra.ExactArgs(2),
	RunE:  runSynastry,
}

var compositeCmd = &cobra.Command{
	Use:   "composite <chart-a> <chart-b>",
	Short: "Generate the midpoint composite chart",
	Args:  cobra.ExactArgs(2),
	RunE:  runComposite,
}

var gunaCmd = &cobra.Command{
	Use:   "guna <chart-a> <chart-b>",
	Short: "Score the charts against the eight kootas of Guna Milan",
	Args:  cobra.ExactArgs(2),
	RunE:  runGuna,
}

func init() {
	for _, c := range []*cobra.Command{synastryCmd, compositeCmd, gunaCmd} {
		c.Flags().Bool("json", false, "emit the result as JSON")
		rootCmd.AddCommand(c)
	}
}

func runSynastry(cmd *cobra.Command, args []string) error {
	cfg, a, b, nameA, nameB, err := branchSetup(args)
	if err != nil {
		return err
	}
	res, err := synastry.Compute(a, b, cfg.ReportOptions().Synastry)
	if err != nil {
		return err
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return emitJSON(res)
	}
	ui.New().Synastry(res, nameA, nameB)
	return nil
}

func runComposite(cmd *cobra.Command, args []string) error {
	cfg, a, b, nameA, nameB, err := branchSetup(args)
	if err != nil {
		return err
	}
	res, err := composite.Generate(a, b, cfg.ReportOptions().Composite)
	if err != nil {
		return err
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return emitJSON(res)
	}
	ui.New().Composite(res, nameA, nameB)
	return nil
}

func runGuna(cmd *cobra.Command, args []string) error {
	cfg, a, b, nameA, nameB, err := branchSetup(args)
	if err != nil {
		return err
	}
	res, err := guna.Calculate(a, b, cfg.ReportOptions().Guna)
	if err != nil {
		return err
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return emitJSON(res)
	}
	ui.New().Guna(res, nameA, nameB)
	return nil
}

func branchSetup(args []string) (cfg config.Config, a, b *chart.Chart, nameA, nameB string, err error) {
	cfg, err = config.Load()
	if err != nil {
		return config.Config{}, nil, nil, "", "", err
	}
	ctx, cancel := signalContext()
	defer cancel()

	a, b, nameA, nameB, err = resolvePair(ctx, cfg, args[0], args[1])
	if err != nil {
		return config.Config{}, nil, nil, "", "", err
	}
	return cfg, a, b, nameA, nameB, nil
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
