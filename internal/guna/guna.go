// Package guna implements Ashtakoota (Guna Milan) matching: the two charts'
// Moon nakshatras are scored against eight independent traditional criteria
// and aggregated into a 36-point total with a rating, dosha exceptions, and
// prioritized recommendations.
package guna

import (
	"fmt"
	"math"

	"github.com/lunastra/concord/internal/chart"
)

// Koota names one of the eight sub-criteria.
type Koota string

const (
	Varna       Koota = "varna"
	Vashya      Koota = "vashya"
	Tara        Koota = "tara"
	Yoni        Koota = "yoni"
	GrahaMaitri Koota = "graha_maitri"
	Gana        Koota = "gana"
	Bhakoot     Koota = "bhakoot"
	Nadi        Koota = "nadi"
)

// Order lists the kootas in traditional sequence, ascending by maximum.
var Order = []Koota{Varna, Vashya, Tara, Yoni, GrahaMaitri, Gana, Bhakoot, Nadi}

// Max holds each koota's fixed maximum. The eight maxima sum to 36.
var Max = map[Koota]float64{
	Varna:       1,
	Vashya:      2,
	Tara:        3,
	Yoni:        4,
	GrahaMaitri: 5,
	Gana:        6,
	Bhakoot:     7,
	Nadi:        8,
}

// MaxTotal is the aggregate maximum across all kootas.
const MaxTotal = 36.0

// Rating labels, band lower bounds inclusive.
const (
	RatingExcellent    = "Excellent Match"
	RatingVeryGood     = "Very Good Match"
	RatingGood         = "Good Match"
	RatingAverage      = "Average Match"
	RatingBelowAverage = "Below Average Match"
	RatingPoor         = "Poor Match"
)

// Rating returns the label for a total score.
func Rating(total float64) string {
	switch {
	case total >= 28:
		return RatingExcellent
	case total >= 25:
		return RatingVeryGood
	case total >= 22:
		return RatingGood
	case total >= 18:
		return RatingAverage
	case total >= 15:
		return RatingBelowAverage
	default:
		return RatingPoor
	}
}

// Recommendation levels, most severe first.
const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelPositive = "positive"
)

// Recommendation is one advisory line derived from the sub-scores.
type Recommendation struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Options carries the point tables that vary between schools. Both tables
// are configuration data, not logic; see DefaultTaraTable and
// DefaultBhakootTable for the defaults.
type Options struct {
	TaraTable    []float64 // 14 entries, folded distance 0-13
	BhakootTable []float64 // 7 entries, folded distance 0-6
}

// DefaultOptions returns the standard point tables.
func DefaultOptions() Options {
	return Options{
		TaraTable:    DefaultTaraTable(),
		BhakootTable: DefaultBhakootTable(),
	}
}

// Result is the complete Guna Milan report.
type Result struct {
	Scores          map[Koota]float64 `json:"scores"`
	Total           float64           `json:"total"`
	Percentage      int               `json:"percentage"`
	Rating          string            `json:"rating"`
	Exceptions      []string          `json:"exceptions,omitempty"`
	Recommendations []Recommendation  `json:"recommendations,omitempty"`
}

// Calculate scores both charts' Moon nakshatras against all eight kootas.
// Both charts must carry a complete nakshatra (name, lord, caste, sign);
// anything less is a validation error naming the failing side.
func Calculate(a, b *chart.Chart, opts Options) (*Result, error) {
	if len(opts.TaraTable) != 14 {
		return nil, fmt.Errorf("guna: %w: tara table: expected 14 entries, got %d", chart.ErrValidation, len(opts.TaraTable))
	}
	if len(opts.BhakootTable) != 7 {
		return nil, fmt.Errorf("guna: %w: bhakoot table: expected 7 entries, got %d", chart.ErrValidation, len(opts.BhakootTable))
	}
	na, err := moonNakshatra(a, "chart A")
	if err != nil {
		return nil, err
	}
	nb, err := moonNakshatra(b, "chart B")
	if err != nil {
		return nil, err
	}

	scores := map[Koota]float64{
		Varna:       scoreVarna(na, nb),
		Vashya:      scoreVashya(na, nb),
		Tara:        scoreTara(na, nb, opts.TaraTable),
		Yoni:        scoreYoni(na, nb),
		GrahaMaitri: scoreGrahaMaitri(na, nb),
		Gana:        scoreGana(na, nb),
		Bhakoot:     scoreBhakoot(na, nb, opts.BhakootTable),
		Nadi:        scoreNadi(na, nb),
	}

	var total float64
	for _, k := range Order {
		s := scores[k]
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 || s > Max[k] {
			return nil, fmt.Errorf("guna: %w: %s score %v outside [0, %v]", chart.ErrCalculation, k, s, Max[k])
		}
		total += s
	}

	res := &Result{
		Scores:     scores,
		Total:      total,
		Percentage: int(math.Round(total / MaxTotal * 100)),
		Rating:     Rating(total),
	}
	res.Exceptions = exceptions(scores)
	res.Recommendations = recommendations(scores, total)
	return res, nil
}

// moonNakshatra extracts and validates one side's Moon nakshatra.
func moonNakshatra(c *chart.Chart, side string) (*chart.Nakshatra, error) {
	if c == nil {
		return nil, fmt.Errorf("guna: %w: %s: chart missing", chart.ErrValidation, side)
	}
	if err := c.Nakshatra.Validate(side); err != nil {
		return nil, fmt.Errorf("guna: %w", err)
	}
	return c.Nakshatra, nil
}

// exceptions names the classical mitigations that soften a dosha without
// changing the numeric total.
func exceptions(scores map[Koota]float64) []string {
	var out []string
	if scores[Nadi] == 0 && scores[Tara] >= 2 {
		out = append(out, "nadi dosha mitigated: strong tara compatibility offsets the shared nadi class")
	}
	return out
}

// recommendations derives the advisory lines. Critical flags for the two
// doshas come first, then the general warning, then positive notes.
func recommendations(scores map[Koota]float64, total float64) []Recommendation {
	var recs []Recommendation
	if scores[Nadi] == 0 {
		recs = append(recs, Recommendation{
			Level: LevelCritical,
			Text:  "nadi dosha: both partners share a constitutional class, traditionally a serious health and progeny concern",
		})
	}
	if scores[Bhakoot] == 0 {
		recs = append(recs, Recommendation{
			Level: LevelCritical,
			Text:  "bhakoot dosha: the Moon signs form an unfavorable distance, straining finances and emotional rapport",
		})
	}
	if total < 18 {
		recs = append(recs, Recommendation{
			Level: LevelWarning,
			Text:  fmt.Sprintf("overall score %.1f of 36 is below the traditional matching threshold of 18", total),
		})
	}
	if scores[Yoni] >= 2 {
		recs = append(recs, Recommendation{
			Level: LevelPositive,
			Text:  "compatible yoni archetypes indicate strong physical and instinctive harmony",
		})
	}
	if scores[Gana] >= 3 {
		recs = append(recs, Recommendation{
			Level: LevelPositive,
			Text:  "compatible gana temperaments indicate aligned values and daily rhythms",
		})
	}
	return recs
}
