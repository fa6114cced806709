package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunastra/concord/internal/chartfile"
	"github.com/lunastra/concord/internal/config"
	"github.com/lunastra/concord/internal/profile"
	"github.com/lunastra/concord/internal/ui"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Manage the stored chart catalog",
}

var chartAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Store a chart file in the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runChartAdd,
}

var chartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored charts",
	Args:  cobra.NoArgs,
	RunE:  runChartList,
}

var chartShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored chart as a chart file",
	Args:  cobra.ExactArgs(1),
	RunE:  runChartShow,
}

var chartRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a chart from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runChartRm,
}

func init() {
	chartAddCmd.Flags().String("name", "", "store under this name instead of the file's declared name")
	chartCmd.AddCommand(chartAddCmd, chartListCmd, chartShowCmd, chartRmCmd)
	rootCmd.AddCommand(chartCmd)
}

func openStore(ctx context.Context) (*profile.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	store, err := profile.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	return store, cfg, nil
}

func runChartAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	c, name, err := chartfile.Load(args[0])
	if err != nil {
		return err
	}
	if override, _ := cmd.Flags().GetString("name"); override != "" {
		name = override
	}
	if name == "" {
		name = chartName(args[0])
	}

	if err := store.Save(ctx, name, c); err != nil {
		return err
	}
	ui.New().Info(fmt.Sprintf("stored chart %q (%d planets)", name, len(c.Planets)))
	return nil
}

func runChartList(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(ctx)
	if err != nil {
		return err
	}
	ui.New().ChartList(entries)
	return nil
}

func runChartShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	c, err := store.Get(ctx, args[0])
	if err != nil {
		return err
	}
	// Render in the chart file format so the output can be saved and reused.
	data, err := chartfile.Marshal(args[0], c)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runChartRm(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	store, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(ctx, args[0]); err != nil {
		return err
	}
	ui.New().Info(fmt.Sprintf("removed chart %q", args[0]))
	return nil
}
