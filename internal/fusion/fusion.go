// Package fusion combines the upstream analyses — synastry aspects and
// overlays, composite aspects, and optionally Guna Milan — into one
// normalized compatibility report. The scorer knows nothing about chart
// internals; it consumes only pre-scored results.
package fusion

import (
	"fmt"
	"math"

	"github.com/lunastra/concord/internal/aspect"
	"github.com/lunastra/concord/internal/chart"
	"github.com/lunastra/concord/internal/composite"
	"github.com/lunastra/concord/internal/guna"
	"github.com/lunastra/concord/internal/synastry"
)

// neutral is the score substituted for any empty input list.
const neutral = 0.5

// weightTolerance bounds how far the three weights may drift from summing
// to exactly 1.
const weightTolerance = 1e-9

// Weights distributes the overall score across the three branches. The
// three values must sum to 1.
type Weights struct {
	Synastry  float64 `json:"synastry"`
	Overlay   float64 `json:"overlay"`
	Composite float64 `json:"composite"`
}

// DefaultWeights returns the standard 0.4/0.3/0.3 split. The split is
// advisory tradition, not mathematics — callers tune it through Options
// rather than forking the scorer.
func DefaultWeights() Weights {
	return Weights{Synastry: 0.4, Overlay: 0.3, Composite: 0.3}
}

// Options configures fusion.
type Options struct {
	Weights Weights

	// TypeWeights re-weight synastry aspect strength by type before
	// averaging: harmonious aspects up, challenging ones down.
	TypeWeights map[aspect.Type]float64

	// TypeBases anchor composite aspect types on the [0, 1] scale; each
	// aspect pulls the score from neutral toward its base in proportion to
	// its exactness.
	TypeBases map[aspect.Type]float64
}

// DefaultOptions returns the standard fusion configuration.
func DefaultOptions() Options {
	return Options{
		Weights: DefaultWeights(),
		TypeWeights: map[aspect.Type]float64{
			aspect.Conjunction: 0.9,
			aspect.Sextile:     1.0,
			aspect.Square:      0.35,
			aspect.Trine:       1.0,
			aspect.Opposition:  0.45,
		},
		TypeBases: map[aspect.Type]float64{
			aspect.Conjunction: 0.7,
			aspect.Sextile:     0.85,
			aspect.Square:      0.3,
			aspect.Trine:       0.9,
			aspect.Opposition:  0.4,
		},
	}
}

// relationshipHouses are the overlay houses traditionally tied to
// partnership: self, home, marriage, intimacy.
var relationshipHouses = map[int]bool{1: true, 4: true, 7: true, 8: true}

// Breakdown holds the three branch scores feeding the overall value.
type Breakdown struct {
	Synastry  float64 `json:"synastry"`
	Overlays  float64 `json:"overlays"`
	Composite float64 `json:"composite"`
}

// Report is the terminal compatibility entity: constructed once, immutable,
// returned to the caller.
type Report struct {
	Overall         float64  `json:"overall"`
	Breakdown       Breakdown `json:"breakdown"`
	Interpretation  string   `json:"interpretation"`
	Strengths       []string `json:"strengths,omitempty"`
	Challenges      []string `json:"challenges,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Score fuses the three analyses into one report. synData and compData are
// required; gunaData is optional and its absence degrades gracefully —
// callers without a Moon nakshatra still get a full aspect-based report.
func Score(synData *synastry.Result, compData *composite.Chart, gunaData *guna.Result, opts Options) (*Report, error) {
	if synData == nil {
		return nil, fmt.Errorf("fusion: %w: synastry data missing", chart.ErrValidation)
	}
	if compData == nil {
		return nil, fmt.Errorf("fusion: %w: composite data missing", chart.ErrValidation)
	}
	if err := validWeights(opts.Weights); err != nil {
		return nil, err
	}

	bd := Breakdown{
		Synastry:  synastryScore(synData.Aspects, opts.TypeWeights),
		Overlays:  overlayScore(synData.Overlays),
		Composite: compositeScore(compData.Aspects, opts.TypeBases),
	}

	overall := bd.Synastry*opts.Weights.Synastry +
		bd.Overlays*opts.Weights.Overlay +
		bd.Composite*opts.Weights.Composite
	if math.IsNaN(overall) || math.IsInf(overall, 0) {
		return nil, fmt.Errorf("fusion: %w: overall score is not finite", chart.ErrCalculation)
	}
	overall = math.Round(overall*100) / 100

	rep := &Report{
		Overall:        overall,
		Breakdown:      bd,
		Interpretation: interpret(overall),
	}
	rep.Strengths, rep.Challenges = classify(bd, gunaData)
	rep.Recommendations = recommend(bd, gunaData)
	return rep, nil
}

// validWeights checks the three weights are finite, non-negative, and sum
// to 1 within tolerance.
func validWeights(w Weights) error {
	sum := w.Synastry + w.Overlay + w.Composite
	if math.IsNaN(sum) || math.IsInf(sum, 0) ||
		w.Synastry < 0 || w.Overlay < 0 || w.Composite < 0 ||
		math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("fusion: %w: weights %v/%v/%v must be non-negative and sum to 1",
			chart.ErrValidation, w.Synastry, w.Overlay, w.Composite)
	}
	return nil
}

// synastryScore averages each aspect's strength after re-weighting by type.
// An empty aspect list is neutral.
func synastryScore(hits []synastry.Hit, typeWeights map[aspect.Type]float64) float64 {
	if len(hits) == 0 {
		return neutral
	}
	var sum float64
	for _, h := range hits {
		sum += clamp01(h.Strength * typeWeights[h.Type])
	}
	return clamp01(sum / float64(len(hits)))
}

// overlayScore rewards overlays landing in relationship-significant houses
// over neutral ones. An empty overlay list is neutral.
func overlayScore(overlays []synastry.Overlay) float64 {
	if len(overlays) == 0 {
		return neutral
	}
	var sum float64
	for _, o := range overlays {
		if relationshipHouses[o.House] {
			sum += 0.85
		} else {
			sum += neutral
		}
	}
	return clamp01(sum / float64(len(overlays)))
}

// compositeScore rewards harmonious intra-composite aspect types over
// challenging ones, scaled by exactness so weak aspects stay near neutral.
// An empty aspect list is neutral.
func compositeScore(aspects []composite.PairAspect, typeBases map[aspect.Type]float64) float64 {
	if len(aspects) == 0 {
		return neutral
	}
	var sum float64
	for _, pa := range aspects {
		base, ok := typeBases[pa.Type]
		if !ok {
			base = neutral
		}
		sum += neutral + (base-neutral)*pa.Exactness
	}
	return clamp01(sum / float64(len(aspects)))
}

// interpret maps the overall [0, 1] score to a textual label. The bands
// mirror the Guna Milan rating tiers scaled onto the unit interval.
func interpret(overall float64) string {
	switch {
	case overall >= 0.78:
		return "Exceptional compatibility: the charts reinforce each other across every technique"
	case overall >= 0.69:
		return "Very strong compatibility with broad harmonious contact between the charts"
	case overall >= 0.61:
		return "Good compatibility; harmonious dynamics outweigh points of friction"
	case overall >= 0.50:
		return "Average compatibility; the relationship carries both supportive and challenging dynamics"
	case overall >= 0.42:
		return "Below-average compatibility; sustained effort is needed around the challenging contacts"
	default:
		return "Difficult compatibility; the charts stress each other more than they support"
	}
}

// Sub-score thresholds for strength/challenge classification. Each branch
// is judged independently against the fixed cutoffs.
const (
	strengthThreshold  = 0.7
	challengeThreshold = 0.6
)

func classify(bd Breakdown, gunaData *guna.Result) (strengths, challenges []string) {
	branches := []struct {
		score float64
		name  string
	}{
		{bd.Synastry, "planet-to-planet synastry contacts"},
		{bd.Overlays, "house overlays into relationship houses"},
		{bd.Composite, "the composite relationship chart"},
	}
	for _, b := range branches {
		switch {
		case b.score >= strengthThreshold:
			strengths = append(strengths, b.name)
		case b.score < challengeThreshold:
			challenges = append(challenges, b.name)
		}
	}
	if gunaData != nil {
		if gunaData.Total >= 28 {
			strengths = append(strengths, "traditional guna milan matching")
		} else if gunaData.Total < 18 {
			challenges = append(challenges, "traditional guna milan matching")
		}
	}
	return strengths, challenges
}

func recommend(bd Breakdown, gunaData *guna.Result) []string {
	var recs []string
	if bd.Synastry < challengeThreshold {
		recs = append(recs, "work consciously with the challenging planetary contacts; they mature into depth when named")
	}
	if bd.Overlays < challengeThreshold {
		recs = append(recs, "few planets land in each other's relationship houses; build shared domestic ground deliberately")
	}
	if bd.Composite < challengeThreshold {
		recs = append(recs, "the relationship's own chart carries tension; agree on how conflict is handled early")
	}
	if gunaData != nil {
		for _, r := range gunaData.Recommendations {
			recs = append(recs, r.Text)
		}
	}
	if len(recs) == 0 {
		recs = append(recs, "the charts support each other; protect what already works")
	}
	return recs
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
