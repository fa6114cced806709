package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/lunastra/concord/internal/chart"
	"github.com/lunastra/concord/internal/chartfile"
	"github.com/lunastra/concord/internal/config"
	"github.com/lunastra/concord/internal/profile"
)

// resolveChart turns a CLI argument into a chart. Arguments naming an
// existing file (or carrying the chart file suffix) load from disk; anything
// else is treated as a stored profile name.
func resolveChart(ctx context.Context, cfg config.Config, arg string) (*chart.Chart, string, error) {
	if chartfile.IsChartFile(arg) || fileExists(arg) {
		c, name, err := chartfile.Load(arg)
		if err != nil {
			return nil, "", err
		}
		if name == "" {
			name = chartName(arg)
		}
		return c, name, nil
	}

	store, err := profile.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, "", err
	}
	defer store.Close()

	c, err := store.Get(ctx, arg)
	if err != nil {
		return nil, "", err
	}
	return c, arg, nil
}

// resolvePair loads both sides of an analysis.
func resolvePair(ctx context.Context, cfg config.Config, argA, argB string) (a, b *chart.Chart, nameA, nameB string, err error) {
	if a, nameA, err = resolveChart(ctx, cfg, argA); err != nil {
		return nil, nil, "", "", err
	}
	if b, nameB, err = resolveChart(ctx, cfg, argB); err != nil {
		return nil, nil, "", "", err
	}
	return a, b, nameA, nameB, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// chartName derives a display name from a file path: base name without the
// chart suffix.
func chartName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, chartfile.Suffix)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
