// Package chart defines the natal chart data model shared by every analysis
// component: planet positions, house cusps, the ascendant, and the Moon's
// nakshatra. Charts are immutable inputs — no component mutates them.
package chart

import (
	"fmt"
	"math"
	"sort"
)

// Planet identifies a chart body.
type Planet string

const (
	Sun     Planet = "sun"
	Moon    Planet = "moon"
	Mercury Planet = "mercury"
	Venus   Planet = "venus"
	Mars    Planet = "mars"
	Jupiter Planet = "jupiter"
	Saturn  Planet = "saturn"
	Rahu    Planet = "rahu"
	Ketu    Planet = "ketu"
)

// canonicalOrder fixes the iteration order for the nine classical bodies.
// Bodies outside this list sort alphabetically after it.
var canonicalOrder = map[Planet]int{
	Sun: 0, Moon: 1, Mercury: 2, Venus: 3, Mars: 4,
	Jupiter: 5, Saturn: 6, Rahu: 7, Ketu: 8,
}

// Position holds one body's placement. Latitude and Speed are optional and
// unused by the compatibility mathematics; they are carried through for
// callers that record full ephemeris output.
type Position struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude,omitempty"`
	Speed     float64 `json:"speed,omitempty"`
}

// Chart is one natal (or derived) entity.
type Chart struct {
	Planets   map[Planet]Position `json:"planets"`
	Houses    []float64           `json:"houses"` // exactly 12 cusp longitudes
	Ascendant float64             `json:"ascendant"`

	// Nakshatra is the Moon's nakshatra, required only by the Guna Milan
	// calculator. Nil when the caller never derived it.
	Nakshatra *Nakshatra `json:"nakshatra,omitempty"`
}

// SortedPlanets returns the chart's planet identifiers in canonical order:
// the nine classical bodies first, anything else alphabetically. This is the
// iteration order every analysis uses, making output deterministic.
func (c *Chart) SortedPlanets() []Planet {
	ps := make([]Planet, 0, len(c.Planets))
	for p := range c.Planets {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool {
		oi, iOK := canonicalOrder[ps[i]]
		oj, jOK := canonicalOrder[ps[j]]
		switch {
		case iOK && jOK:
			return oi < oj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return ps[i] < ps[j]
		}
	})
	return ps
}

// Validate checks the chart's structural invariants. side names the chart in
// error messages ("chart A", "composite"). All violations are validation
// errors raised before any computation touches the chart.
func (c *Chart) Validate(side string) error {
	if c == nil {
		return fmt.Errorf("%w: %s: chart missing", ErrValidation, side)
	}
	if c.Planets == nil {
		return fmt.Errorf("%w: %s: planets map missing", ErrValidation, side)
	}
	if len(c.Houses) != 12 {
		return fmt.Errorf("%w: %s: houses: expected 12 cusps, got %d", ErrValidation, side, len(c.Houses))
	}
	for i, cusp := range c.Houses {
		if !inRange(cusp) {
			return fmt.Errorf("%w: %s: houses[%d]: cusp %v out of [0, 360)", ErrValidation, side, i, cusp)
		}
	}
	if !inRange(c.Ascendant) {
		return fmt.Errorf("%w: %s: ascendant: %v out of [0, 360)", ErrValidation, side, c.Ascendant)
	}
	for _, p := range c.SortedPlanets() {
		pos := c.Planets[p]
		if !inRange(pos.Longitude) {
			return fmt.Errorf("%w: %s: planets[%s]: longitude %v out of [0, 360)", ErrValidation, side, p, pos.Longitude)
		}
	}
	return nil
}

// inRange reports whether a longitude is finite and in [0, 360).
func inRange(l float64) bool {
	return !math.IsNaN(l) && !math.IsInf(l, 0) && l >= 0 && l < 360
}
