// Package composite synthesizes a third chart representing the relationship
// itself: every planet shared by both input charts is placed at the pairwise
// midpoint of its two longitudes, houses follow the whole-sign convention
// from the composite ascendant, and the resulting chart is aspected against
// itself.
package composite

import (
	"fmt"

	"github.com/lunastra/concord/internal/angle"
	"github.com/lunastra/concord/internal/aspect"
	"github.com/lunastra/concord/internal/chart"
)

// Options configures aspect detection inside the composite chart.
type Options struct {
	Orbs aspect.Orbs
}

// DefaultOptions returns the standard orb table.
func DefaultOptions() Options {
	return Options{Orbs: aspect.DefaultOrbs()}
}

// Placement locates one composite planet in the composite chart's own
// houses and signs.
type Placement struct {
	Planet    chart.Planet `json:"planet"`
	Longitude float64      `json:"longitude"`
	House     int          `json:"house"`
	Sign      int          `json:"sign"`
}

// PairAspect is an aspect between two composite planets. Unlike synastry
// hits, both planets belong to the same (composite) chart.
type PairAspect struct {
	Planet1   chart.Planet `json:"planet1"`
	Planet2   chart.Planet `json:"planet2"`
	Type      aspect.Type  `json:"type"`
	Orb       float64      `json:"orb"`
	Exactness float64      `json:"exactness"`
}

// Chart is the derived relationship chart. The embedded chart.Chart holds
// midpoint planet longitudes, whole-sign houses, and the midpoint ascendant,
// so the composite can be fed back through any chart-consuming analysis.
type Chart struct {
	chart.Chart

	Placements []Placement  `json:"placements"`
	Aspects    []PairAspect `json:"aspects"`
}

// Generate validates both charts and builds the composite. Planets present
// in only one chart are omitted — that is expected, not an error. The
// composite is constructed fresh on every call.
func Generate(a, b *chart.Chart, opts Options) (*Chart, error) {
	if err := a.Validate("chart A"); err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}
	if err := b.Validate("chart B"); err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}

	asc := angle.Midpoint(a.Ascendant, b.Ascendant)
	comp := &Chart{
		Chart: chart.Chart{
			Planets:   make(map[chart.Planet]chart.Position),
			Houses:    chart.WholeSignHouses(asc),
			Ascendant: asc,
		},
	}

	// Midpoint every planet present in both charts, in canonical order.
	var shared []chart.Planet
	for _, p := range a.SortedPlanets() {
		posB, ok := b.Planets[p]
		if !ok {
			continue
		}
		mid := angle.Midpoint(a.Planets[p].Longitude, posB.Longitude)
		comp.Planets[p] = chart.Position{Longitude: mid}
		shared = append(shared, p)
	}

	for _, p := range shared {
		l := comp.Planets[p].Longitude
		house, err := chart.HouseOf(l, comp.Houses)
		if err != nil {
			return nil, fmt.Errorf("composite: placement for %s: %w", p, err)
		}
		comp.Placements = append(comp.Placements, Placement{
			Planet:    p,
			Longitude: l,
			House:     house,
			Sign:      chart.SignOf(l),
		})
	}

	// Intra-composite aspects over unordered pairs: the composite's planets
	// play both roles at once, so each pair is tested exactly once.
	for i := 0; i < len(shared); i++ {
		for j := i + 1; j < len(shared); j++ {
			asp := aspect.Detect(comp.Planets[shared[i]].Longitude, comp.Planets[shared[j]].Longitude, opts.Orbs)
			if asp == nil {
				continue
			}
			comp.Aspects = append(comp.Aspects, PairAspect{
				Planet1:   shared[i],
				Planet2:   shared[j],
				Type:      asp.Type,
				Orb:       asp.Orb,
				Exactness: asp.Exactness,
			})
		}
	}

	return comp, nil
}
