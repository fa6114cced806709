// Package synastry compares two natal charts planet-to-planet: every body
// in chart A is tested against every body in chart B for aspects, and every
// body in chart B is mapped onto chart A's houses. The analysis is pure —
// repeated calls with the same charts produce identical results.
package synastry

import (
	"fmt"

	"github.com/lunastra/concord/internal/aspect"
	"github.com/lunastra/concord/internal/chart"
)

// Options configures aspect detection and strength weighting.
type Options struct {
	// Orbs is the per-aspect-type orb table used for detection.
	Orbs aspect.Orbs

	// TypeWeights scale aspect exactness into strength. Harmonious aspects
	// (trine, sextile) and the strong conjunctions/oppositions weigh high;
	// squares weigh low.
	TypeWeights map[aspect.Type]float64
}

// DefaultOptions returns the standard orb table and strength weights.
func DefaultOptions() Options {
	return Options{
		Orbs: aspect.DefaultOrbs(),
		TypeWeights: map[aspect.Type]float64{
			aspect.Conjunction: 0.9,
			aspect.Sextile:     0.9,
			aspect.Square:      0.4,
			aspect.Trine:       1.0,
			aspect.Opposition:  0.8,
		},
	}
}

// Hit is one detected cross-chart aspect. Planet1 belongs to chart A,
// Planet2 to chart B.
type Hit struct {
	Planet1   chart.Planet `json:"planet1"`
	Planet2   chart.Planet `json:"planet2"`
	Type      aspect.Type  `json:"type"`
	Orb       float64      `json:"orb"`
	Exactness float64      `json:"exactness"`
	Strength  float64      `json:"strength"`
}

// Overlay records where one of chart B's planets falls in chart A's houses.
type Overlay struct {
	Planet chart.Planet `json:"planet"`
	House  int          `json:"house"`
	Sign   int          `json:"sign"`
}

// Result is the complete synastry analysis. It is built once per call and
// read-only afterward.
type Result struct {
	Aspects  []Hit     `json:"aspects"`
	Overlays []Overlay `json:"overlays"`
}

// Compute validates both charts, then builds the full aspect matrix and
// house-overlay list. Emission order is deterministic: chart A's planets
// outer, chart B's inner, both in canonical planet order. Empty planet maps
// yield empty slices, not an error.
func Compute(a, b *chart.Chart, opts Options) (*Result, error) {
	if err := a.Validate("chart A"); err != nil {
		return nil, fmt.Errorf("synastry: %w", err)
	}
	if err := b.Validate("chart B"); err != nil {
		return nil, fmt.Errorf("synastry: %w", err)
	}

	res := &Result{}

	bPlanets := b.SortedPlanets()
	for _, pa := range a.SortedPlanets() {
		la := a.Planets[pa].Longitude
		for _, pb := range bPlanets {
			asp := aspect.Detect(la, b.Planets[pb].Longitude, opts.Orbs)
			if asp == nil {
				continue
			}
			res.Aspects = append(res.Aspects, Hit{
				Planet1:   pa,
				Planet2:   pb,
				Type:      asp.Type,
				Orb:       asp.Orb,
				Exactness: asp.Exactness,
				Strength:  asp.Exactness * opts.TypeWeights[asp.Type],
			})
		}
	}

	for _, pb := range bPlanets {
		l := b.Planets[pb].Longitude
		house, err := chart.HouseOf(l, a.Houses)
		if err != nil {
			return nil, fmt.Errorf("synastry: overlay for %s: %w", pb, err)
		}
		res.Overlays = append(res.Overlays, Overlay{
			Planet: pb,
			House:  house,
			Sign:   chart.SignOf(l),
		})
	}

	return res, nil
}
