package guna

import "github.com/lunastra/concord/internal/chart"

// Each koota scorer is a pure function of the two Moon nakshatras (plus an
// injectable point table where tradition varies). Inputs are assumed
// validated by Calculate.

// scoreVarna awards the single varna point when the second party's tier is
// at least the first party's, per the four-tier caste lookup.
func scoreVarna(a, b *chart.Nakshatra) float64 {
	if varnaRank[b.Caste] >= varnaRank[a.Caste] {
		return 1
	}
	return 0
}

// scoreVashya compares the behavioral groups of the two nakshatra lords:
// same group scores 2, a directionally compatible pair 1, anything else 0.
func scoreVashya(a, b *chart.Nakshatra) float64 {
	ga, okA := lordVashya[a.Lord]
	gb, okB := lordVashya[b.Lord]
	if !okA || !okB {
		return 0
	}
	if ga == gb {
		return 2
	}
	if vashyaCompat[ga][gb] {
		return 1
	}
	return 0
}

// taraDistance folds the circular nakshatra-index distance to [0, 13].
func taraDistance(a, b int) int {
	d := (b - a) % 27
	if d < 0 {
		d += 27
	}
	if d > 13 {
		d = 27 - d
	}
	return d
}

// scoreTara maps the folded nakshatra distance through the 14-entry table.
func scoreTara(a, b *chart.Nakshatra, table []float64) float64 {
	return table[taraDistance(a.Number, b.Number)]
}

// scoreYoni compares animal archetypes: same animal 4, a compatible pair 2
// (checked both ways), anything else — including the hostile pairs — 0.
func scoreYoni(a, b *chart.Nakshatra) float64 {
	ya := nakshatraYoni[a.Number-1]
	yb := nakshatraYoni[b.Number-1]
	if ya == yb {
		return 4
	}
	if yoniCompat[ya][yb] || yoniCompat[yb][ya] {
		return 2
	}
	return 0
}

// scoreGrahaMaitri scores the friendship between the two nakshatra lords.
// The matrix is checked in both directions because planetary friendship is
// not symmetric; the pair scores by its worse direction: mutual friendship
// 5, any neutrality 2.5, any enmity 0. A lord absent from the matrix
// entirely defaults to 1.
func scoreGrahaMaitri(a, b *chart.Nakshatra) float64 {
	if a.Lord == b.Lord {
		return 5
	}
	ab := relate(a.Lord, b.Lord)
	ba := relate(b.Lord, a.Lord)
	if ab == relUnknown || ba == relUnknown {
		return 1
	}
	worst := ab
	if ba < worst {
		worst = ba
	}
	switch worst {
	case relFriend:
		return 5
	case relNeutral:
		return 2.5
	default:
		return 0
	}
}

// scoreGana compares temperament classes: same class 6, one of the
// directional compatible pairs 3, anything else 0.
func scoreGana(a, b *chart.Nakshatra) float64 {
	ga := nakshatraGana[a.Number-1]
	gb := nakshatraGana[b.Number-1]
	if ga == gb {
		return 6
	}
	if ganaCompat[ga][gb] {
		return 3
	}
	return 0
}

// bhakootDistance folds the circular zodiac-sign distance to [0, 6].
func bhakootDistance(a, b int) int {
	d := (b - a) % 12
	if d < 0 {
		d += 12
	}
	if d > 6 {
		d = 12 - d
	}
	return d
}

// scoreBhakoot maps the folded sign distance through the 7-entry table.
func scoreBhakoot(a, b *chart.Nakshatra, table []float64) float64 {
	return table[bhakootDistance(a.Sign, b.Sign)]
}

// scoreNadi awards the full 8 points for different constitutional classes;
// a shared class is the nadi dosha and scores 0.
func scoreNadi(a, b *chart.Nakshatra) float64 {
	if nakshatraNadi[a.Number-1] == nakshatraNadi[b.Number-1] {
		return 0
	}
	return 8
}
