// Package aspect classifies the angular separation between two ecliptic
// longitudes into a named aspect. Detection is pure table lookup: a fixed
// set of target separations, each with its own orb tolerance.
package aspect

import (
	"github.com/lunastra/concord/internal/angle"
)

// Type names an angular relationship between two longitudes.
type Type string

const (
	Conjunction Type = "conjunction"
	Sextile     Type = "sextile"
	Square      Type = "square"
	Trine       Type = "trine"
	Opposition  Type = "opposition"
)

// Types lists every aspect type in detection order. The target separations
// never overlap under the default orbs, so order only affects iteration
// determinism, not results.
var Types = []Type{Conjunction, Sextile, Square, Trine, Opposition}

// targets maps each aspect type to its exact separation in degrees.
var targets = map[Type]float64{
	Conjunction: 0,
	Sextile:     60,
	Square:      90,
	Trine:       120,
	Opposition:  180,
}

// Orbs maps each aspect type to the maximum deviation from exact, in
// degrees, within which the aspect still counts. A deviation exactly equal
// to the orb is included.
type Orbs map[Type]float64

// DefaultOrbs returns the standard orb table: ±8° for conjunction, trine
// and opposition, ±7° for square, ±6° for sextile.
func DefaultOrbs() Orbs {
	return Orbs{
		Conjunction: 8,
		Sextile:     6,
		Square:      7,
		Trine:       8,
		Opposition:  8,
	}
}

// Target returns the exact separation for an aspect type.
func Target(t Type) float64 {
	return targets[t]
}

// Aspect is a detected angular relationship.
type Aspect struct {
	Type Type `json:"type"`

	// Orb is the actual deviation from the exact angle, in degrees.
	Orb float64 `json:"orb"`

	// Exactness is 1 - Orb/maxOrb, clamped to [0, 1]. An exact aspect has
	// exactness 1; one at the orb limit approaches 0.
	Exactness float64 `json:"exactness"`
}

// Detect compares the circular distance between two longitudes against the
// aspect table and returns the matching aspect, or nil when no target angle
// is within orb. A nil result is the common case, not an error.
func Detect(a, b float64, orbs Orbs) *Aspect {
	dist := angle.Distance(a, b)
	for _, t := range Types {
		maxOrb, ok := orbs[t]
		if !ok {
			continue
		}
		deviation := dist - targets[t]
		if deviation < 0 {
			deviation = -deviation
		}
		if deviation <= maxOrb {
			return &Aspect{
				Type:      t,
				Orb:       deviation,
				Exactness: exactness(deviation, maxOrb),
			}
		}
	}
	return nil
}

// exactness converts a deviation into the [0, 1] closeness measure.
func exactness(orb, maxOrb float64) float64 {
	if maxOrb <= 0 {
		return 0
	}
	e := 1 - orb/maxOrb
	if e < 0 {
		return 0
	}
	if e > 1 {
		return 1
	}
	return e
}
