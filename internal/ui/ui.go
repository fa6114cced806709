// Package ui renders analysis results for the terminal using raw ANSI
// escapes. Anything interactive lives in the tui package; this one just
// prints.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lunastra/concord/internal/composite"
	"github.com/lunastra/concord/internal/guna"
	"github.com/lunastra/concord/internal/profile"
	"github.com/lunastra/concord/internal/report"
	"github.com/lunastra/concord/internal/synastry"
)

// ANSI color codes.
const (
	reset   = "\033[0m"
	bold    = "\033[1m"
	dim     = "\033[2m"
	blue    = "\033[34m"
	yellow  = "\033[33m"
	green   = "\033[32m"
	red     = "\033[31m"
	cyan    = "\033[36m"
	magenta = "\033[35m"
)

type Printer struct {
	out io.Writer
}

func New() *Printer {
	return &Printer{out: os.Stdout}
}

// NewWriter returns a Printer writing to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{out: w}
}

func (p *Printer) Banner() {
	fmt.Fprintln(p.out, bold+cyan+"  ╔═══════════════════════════════════╗"+reset)
	fmt.Fprintln(p.out, bold+cyan+"  ║"+reset+bold+"  CONCORD  "+dim+"chart compatibility"+reset+"    "+bold+cyan+"║"+reset)
	fmt.Fprintln(p.out, bold+cyan+"  ╚═══════════════════════════════════╝"+reset)
	fmt.Fprintln(p.out)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, dim+"%s"+reset+"\n", msg)
}

// Report renders the fused analysis for two named charts.
func (p *Printer) Report(an *report.Analysis, nameA, nameB string) {
	rep := an.Report
	fmt.Fprintf(p.out, "\n"+bold+magenta+"── %s ✶ %s ──"+reset+"\n\n", nameA, nameB)
	fmt.Fprintf(p.out, bold+"overall    %s %.2f"+reset+"\n", scoreBar(rep.Overall), rep.Overall)
	fmt.Fprintf(p.out, dim+"%s"+reset+"\n\n", rep.Interpretation)

	fmt.Fprintf(p.out, "  synastry   %s %.2f\n", scoreBar(rep.Breakdown.Synastry), rep.Breakdown.Synastry)
	fmt.Fprintf(p.out, "  overlays   %s %.2f\n", scoreBar(rep.Breakdown.Overlays), rep.Breakdown.Overlays)
	fmt.Fprintf(p.out, "  composite  %s %.2f\n", scoreBar(rep.Breakdown.Composite), rep.Breakdown.Composite)
	if an.Guna != nil {
		fmt.Fprintf(p.out, "  guna       %d/%d (%s)\n", int(an.Guna.Total), int(guna.MaxTotal), an.Guna.Rating)
	}

	if len(rep.Strengths) > 0 {
		fmt.Fprintln(p.out, "\n"+green+bold+"strengths"+reset)
		for _, s := range rep.Strengths {
			fmt.Fprintf(p.out, "  "+green+"• "+reset+"%s\n", s)
		}
	}
	if len(rep.Challenges) > 0 {
		fmt.Fprintln(p.out, "\n"+yellow+bold+"challenges"+reset)
		for _, c := range rep.Challenges {
			fmt.Fprintf(p.out, "  "+yellow+"• "+reset+"%s\n", c)
		}
	}
	if len(rep.Recommendations) > 0 {
		fmt.Fprintln(p.out, "\n"+bold+"recommendations"+reset)
		for _, r := range rep.Recommendations {
			fmt.Fprintf(p.out, "  "+cyan+"→ "+reset+"%s\n", r)
		}
	}

	if len(an.BranchErrors) > 0 {
		fmt.Fprintln(p.out, "\n"+dim+"skipped branches:"+reset)
		branches := make([]string, 0, len(an.BranchErrors))
		for b := range an.BranchErrors {
			branches = append(branches, b)
		}
		sort.Strings(branches)
		for _, b := range branches {
			fmt.Fprintf(p.out, "  "+dim+"%s: %s"+reset+"\n", b, an.BranchErrors[b])
		}
	}
}

// Synastry renders the cross-chart aspect list and house overlays.
func (p *Printer) Synastry(res *synastry.Result, nameA, nameB string) {
	fmt.Fprintf(p.out, "\n"+bold+magenta+"── synastry: %s ✶ %s ──"+reset+"\n\n", nameA, nameB)
	if len(res.Aspects) == 0 {
		fmt.Fprintln(p.out, dim+"  (no cross-chart aspects within orb)"+reset)
	}
	for _, h := range res.Aspects {
		fmt.Fprintf(p.out, "  %s%-8s%s %s%-12s%s %-8s "+dim+"orb %.2f°  strength %.2f"+reset+"\n",
			blue, h.Planet1, reset, aspectColor(string(h.Type)), h.Type, reset, h.Planet2, h.Orb, h.Strength)
	}
	if len(res.Overlays) > 0 {
		fmt.Fprintf(p.out, "\n"+bold+"house overlays"+reset+dim+" (%s into %s's houses)"+reset+"\n", nameB, nameA)
		for _, o := range res.Overlays {
			fmt.Fprintf(p.out, "  %-8s → house %d\n", o.Planet, o.House)
		}
	}
}

// Composite renders the midpoint chart placements and internal aspects.
func (p *Printer) Composite(c *composite.Chart, nameA, nameB string) {
	fmt.Fprintf(p.out, "\n"+bold+magenta+"── composite: %s ✶ %s ──"+reset+"\n\n", nameA, nameB)
	fmt.Fprintf(p.out, "  ascendant  %.2f°\n", c.Ascendant)
	for _, pl := range c.Placements {
		fmt.Fprintf(p.out, "  %-8s %7.2f°  "+dim+"house %-2d sign %d"+reset+"\n", pl.Planet, pl.Longitude, pl.House, pl.Sign)
	}
	if len(c.Aspects) > 0 {
		fmt.Fprintln(p.out, "\n"+bold+"internal aspects"+reset)
		for _, a := range c.Aspects {
			fmt.Fprintf(p.out, "  %-8s %s%-12s%s %-8s "+dim+"orb %.2f°"+reset+"\n",
				a.Planet1, aspectColor(string(a.Type)), a.Type, reset, a.Planet2, a.Orb)
		}
	}
}

// Guna renders the eight-koota scorecard.
func (p *Printer) Guna(res *guna.Result, nameA, nameB string) {
	fmt.Fprintf(p.out, "\n"+bold+magenta+"── guna milan: %s ✶ %s ──"+reset+"\n\n", nameA, nameB)
	for _, k := range guna.Order {
		score := res.Scores[k]
		color := green
		if score == 0 {
			color = red
		} else if score < guna.Max[k]/2 {
			color = yellow
		}
		fmt.Fprintf(p.out, "  %-14s %s%4.1f%s / %.0f\n", k, color, score, reset, guna.Max[k])
	}
	fmt.Fprintf(p.out, "\n"+bold+"total %d/%d — %s"+reset+"\n", int(res.Total), int(guna.MaxTotal), res.Rating)
	for _, e := range res.Exceptions {
		fmt.Fprintf(p.out, "  "+cyan+"◆ "+reset+"%s\n", e)
	}
	for _, r := range res.Recommendations {
		color := dim
		switch r.Level {
		case guna.LevelCritical:
			color = red
		case guna.LevelWarning:
			color = yellow
		case guna.LevelPositive:
			color = green
		}
		fmt.Fprintf(p.out, "  "+color+"• %s"+reset+"\n", r.Text)
	}
}

// ChartList renders the stored chart catalog.
func (p *Printer) ChartList(entries []profile.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.out, dim+"no charts stored — add one with: concord chart add <file>"+reset)
		return
	}
	fmt.Fprintf(p.out, bold+"%-20s %8s  %s"+reset+"\n", "name", "planets", "updated")
	for _, e := range entries {
		fmt.Fprintf(p.out, "%-20s %8d  "+dim+"%s"+reset+"\n", e.Name, e.Planets, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

// scoreBar renders a ten-cell bar for a [0, 1] score.
func scoreBar(score float64) string {
	filled := int(score*10 + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	color := green
	if score < 0.6 {
		color = yellow
	}
	if score < 0.42 {
		color = red
	}
	return color + strings.Repeat("█", filled) + dim + strings.Repeat("░", 10-filled) + reset
}

func aspectColor(t string) string {
	switch t {
	case "trine", "sextile":
		return green
	case "square", "opposition":
		return red
	default:
		return cyan
	}
}
