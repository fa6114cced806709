package chart

import (
	"fmt"

	"github.com/lunastra/concord/internal/angle"
)

// signNames lists the twelve zodiac signs, index 0 = Aries.
var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf returns the zodiac sign index (0-11) containing a longitude.
func SignOf(longitude float64) int {
	return int(angle.Normalize(longitude) / 30)
}

// SignName returns the English name for a sign index. Out-of-range indices
// return an empty string.
func SignName(sign int) string {
	if sign < 0 || sign > 11 {
		return ""
	}
	return signNames[sign]
}

// WholeSignHouses derives twelve house cusps from an ascendant: house k
// starts at ascendant + 30(k-1), normalized.
func WholeSignHouses(ascendant float64) []float64 {
	cusps := make([]float64, 12)
	for k := range cusps {
		cusps[k] = angle.Normalize(ascendant + 30*float64(k))
	}
	return cusps
}

// HouseOf returns the house number (1-12) whose half-open interval
// [cusp_k, cusp_k+1) contains the longitude, with circular wraparound at
// the twelfth house. Degenerate cusp sequences that contain no matching
// interval are a calculation error.
func HouseOf(longitude float64, cusps []float64) (int, error) {
	if len(cusps) != 12 {
		return 0, fmt.Errorf("%w: house lookup: expected 12 cusps, got %d", ErrCalculation, len(cusps))
	}
	l := angle.Normalize(longitude)
	for k := 0; k < 12; k++ {
		lo := angle.Normalize(cusps[k])
		hi := angle.Normalize(cusps[(k+1)%12])
		if lo < hi {
			if l >= lo && l < hi {
				return k + 1, nil
			}
		} else if lo > hi {
			// Interval wraps through 0°.
			if l >= lo || l < hi {
				return k + 1, nil
			}
		}
		// lo == hi is an empty interval; skip it.
	}
	return 0, fmt.Errorf("%w: house lookup: no cusp interval contains %v", ErrCalculation, l)
}
