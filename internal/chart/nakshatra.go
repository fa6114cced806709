package chart

import (
	"fmt"

	"github.com/lunastra/concord/internal/angle"
)

// Nakshatra describes one of the 27 lunar-zodiac segments, attached to a
// chart's Moon. Caste carries the four-tier varna classification used by
// the Guna Milan varna koota.
type Nakshatra struct {
	Name   string `json:"name"`
	Number int    `json:"number"` // 1-27
	Lord   Planet `json:"lord"`
	Caste  string `json:"caste"`
	Sign   int    `json:"sign"` // 0-11, the Moon's zodiac sign
}

// Varna tier names, highest to lowest.
const (
	CasteBrahmin   = "brahmin"
	CasteKshatriya = "kshatriya"
	CasteVaishya   = "vaishya"
	CasteShudra    = "shudra"
)

// SpanDegrees is the arc covered by one nakshatra: 13°20'.
const SpanDegrees = 360.0 / 27.0

// nakshatraInfo is one row of the static 27-entry table.
type nakshatraInfo struct {
	name  string
	lord  Planet
	caste string
}

// nakshatraTable enumerates all 27 nakshatras in zodiac order. Lords follow
// the classical nine-lord cycle (Ketu, Venus, Sun, Moon, Mars, Rahu,
// Jupiter, Saturn, Mercury, repeating). Caste follows the varna of the sign
// in which the nakshatra begins: water signs brahmin, fire kshatriya,
// earth vaishya, air shudra.
var nakshatraTable = [27]nakshatraInfo{
	{"Ashwini", Ketu, CasteKshatriya},
	{"Bharani", Venus, CasteKshatriya},
	{"Krittika", Sun, CasteKshatriya},
	{"Rohini", Moon, CasteVaishya},
	{"Mrigashira", Mars, CasteVaishya},
	{"Ardra", Rahu, CasteShudra},
	{"Punarvasu", Jupiter, CasteShudra},
	{"Pushya", Saturn, CasteBrahmin},
	{"Ashlesha", Mercury, CasteBrahmin},
	{"Magha", Ketu, CasteKshatriya},
	{"Purva Phalguni", Venus, CasteKshatriya},
	{"Uttara Phalguni", Sun, CasteKshatriya},
	{"Hasta", Moon, CasteVaishya},
	{"Chitra", Mars, CasteVaishya},
	{"Swati", Rahu, CasteShudra},
	{"Vishakha", Jupiter, CasteShudra},
	{"Anuradha", Saturn, CasteBrahmin},
	{"Jyeshtha", Mercury, CasteBrahmin},
	{"Mula", Ketu, CasteKshatriya},
	{"Purva Ashadha", Venus, CasteKshatriya},
	{"Uttara Ashadha", Sun, CasteKshatriya},
	{"Shravana", Moon, CasteVaishya},
	{"Dhanishta", Mars, CasteVaishya},
	{"Shatabhisha", Rahu, CasteShudra},
	{"Purva Bhadrapada", Jupiter, CasteShudra},
	{"Uttara Bhadrapada", Saturn, CasteBrahmin},
	{"Revati", Mercury, CasteBrahmin},
}

// NakshatraFromLongitude derives the full nakshatra record for a Moon
// longitude. The longitude must be finite; out-of-range values are
// normalized first.
func NakshatraFromLongitude(moonLongitude float64) (*Nakshatra, error) {
	if !inRange(angle.Normalize(moonLongitude)) {
		return nil, fmt.Errorf("%w: moon longitude %v is not finite", ErrValidation, moonLongitude)
	}
	l := angle.Normalize(moonLongitude)
	idx := int(l / SpanDegrees)
	if idx > 26 {
		idx = 26 // guard against float rounding at 360-epsilon
	}
	info := nakshatraTable[idx]
	return &Nakshatra{
		Name:   info.name,
		Number: idx + 1,
		Lord:   info.lord,
		Caste:  info.caste,
		Sign:   SignOf(l),
	}, nil
}

// NakshatraName returns the name for a nakshatra number (1-27), or an empty
// string for out-of-range numbers.
func NakshatraName(number int) string {
	if number < 1 || number > 27 {
		return ""
	}
	return nakshatraTable[number-1].name
}

// Validate checks that the nakshatra carries every field the koota scorers
// require. side names the chart in error messages.
func (n *Nakshatra) Validate(side string) error {
	if n == nil {
		return fmt.Errorf("%w: %s: moon nakshatra missing", ErrValidation, side)
	}
	if n.Name == "" {
		return fmt.Errorf("%w: %s: nakshatra: name missing", ErrValidation, side)
	}
	if n.Number < 1 || n.Number > 27 {
		return fmt.Errorf("%w: %s: nakshatra: number %d out of [1, 27]", ErrValidation, side, n.Number)
	}
	if n.Lord == "" {
		return fmt.Errorf("%w: %s: nakshatra: lord missing", ErrValidation, side)
	}
	if n.Caste == "" {
		return fmt.Errorf("%w: %s: nakshatra: caste missing", ErrValidation, side)
	}
	if n.Sign < 0 || n.Sign > 11 {
		return fmt.Errorf("%w: %s: nakshatra: sign %d out of [0, 11]", ErrValidation, side, n.Sign)
	}
	return nil
}
