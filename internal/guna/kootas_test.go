package guna

import (
	"testing"

	"github.com/lunastra/concord/internal/chart"
)

// fix builds a bare nakshatra with just the fields a koota needs.
func fix(number int, lord chart.Planet, caste string, sign int) *chart.Nakshatra {
	return &chart.Nakshatra{
		Name:   chart.NakshatraName(number),
		Number: number,
		Lord:   lord,
		Caste:  caste,
		Sign:   sign,
	}
}

// --- Varna ---

func TestScoreVarna(t *testing.T) {
	t.Parallel()

	brahmin := fix(8, chart.Saturn, chart.CasteBrahmin, 3)
	shudra := fix(6, chart.Rahu, chart.CasteShudra, 2)

	// Second party's tier at or above the first's earns the point.
	if got := scoreVarna(shudra, brahmin); got != 1 {
		t.Errorf("shudra→brahmin = %v, want 1", got)
	}
	if got := scoreVarna(brahmin, brahmin); got != 1 {
		t.Errorf("equal tiers = %v, want 1", got)
	}
	if got := scoreVarna(brahmin, shudra); got != 0 {
		t.Errorf("brahmin→shudra = %v, want 0", got)
	}
}

// --- Vashya ---

func TestScoreVashya(t *testing.T) {
	t.Parallel()

	moonLord := fix(4, chart.Moon, chart.CasteVaishya, 1)      // jalachara
	saturnLord := fix(8, chart.Saturn, chart.CasteBrahmin, 3)  // jalachara
	marsLord := fix(5, chart.Mars, chart.CasteVaishya, 1)      // chatushpada
	mercuryLord := fix(9, chart.Mercury, chart.CasteBrahmin, 3) // manava
	ketuLord := fix(1, chart.Ketu, chart.CasteKshatriya, 0)    // keeta

	if got := scoreVashya(moonLord, saturnLord); got != 2 {
		t.Errorf("same group = %v, want 2", got)
	}
	// jalachara → chatushpada is in the compatible table.
	if got := scoreVashya(moonLord, marsLord); got != 1 {
		t.Errorf("compatible pair = %v, want 1", got)
	}
	// The table is directional: chatushpada → jalachara is not listed.
	if got := scoreVashya(marsLord, moonLord); got != 0 {
		t.Errorf("reverse of compatible pair = %v, want 0", got)
	}
	if got := scoreVashya(ketuLord, mercuryLord); got != 0 {
		t.Errorf("incompatible pair = %v, want 0", got)
	}
}

// --- Tara ---

func TestTaraDistance_Folding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{1, 14, 13},
		{1, 15, 13},  // raw 14 folds to 13
		{1, 27, 1},   // raw 26 folds to 1
		{14, 1, 13},  // raw -13 mod 27 = 14, folds to 13
		{1, 10, 9},   // direct opposition
		{10, 1, 9},   // symmetric by folding
		{27, 1, 1},
	}
	for _, tc := range tests {
		if got := taraDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("taraDistance(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScoreTara_DefaultTable(t *testing.T) {
	t.Parallel()

	table := DefaultTaraTable()

	// Direct opposition (distance 9) is the only zero.
	if got := scoreTara(fix(1, chart.Ketu, chart.CasteKshatriya, 0), fix(10, chart.Ketu, chart.CasteKshatriya, 4), table); got != 0 {
		t.Errorf("distance 9 = %v, want 0", got)
	}
	// Distances 1, 3, 5, 7, 11 all share 1.5 — traditional, not a bug.
	for _, d := range []int{1, 3, 5, 7, 11} {
		if table[d] != 1.5 {
			t.Errorf("table[%d] = %v, want 1.5", d, table[d])
		}
	}
	// Identical nakshatra scores the full 3.
	same := fix(4, chart.Moon, chart.CasteVaishya, 1)
	if got := scoreTara(same, same, table); got != 3 {
		t.Errorf("distance 0 = %v, want 3", got)
	}
}

// --- Yoni ---

func TestScoreYoni(t *testing.T) {
	t.Parallel()

	horse := fix(1, chart.Ketu, chart.CasteKshatriya, 0)     // Ashwini
	horse2 := fix(24, chart.Rahu, chart.CasteShudra, 10)     // Shatabhisha
	sheep := fix(3, chart.Sun, chart.CasteKshatriya, 0)      // Krittika
	cat := fix(7, chart.Jupiter, chart.CasteShudra, 2)       // Punarvasu
	rat := fix(10, chart.Ketu, chart.CasteKshatriya, 4)      // Magha

	if got := scoreYoni(horse, horse2); got != 4 {
		t.Errorf("same animal = %v, want 4", got)
	}
	// horse/sheep is compatible; the pair scores 2 in either order.
	if got := scoreYoni(horse, sheep); got != 2 {
		t.Errorf("compatible pair = %v, want 2", got)
	}
	if got := scoreYoni(sheep, horse); got != 2 {
		t.Errorf("compatible pair reversed = %v, want 2", got)
	}
	// cat/rat is a classical hostile pair, absent from the table.
	if got := scoreYoni(cat, rat); got != 0 {
		t.Errorf("hostile pair = %v, want 0", got)
	}
}

// --- Graha Maitri ---

func TestScoreGrahaMaitri(t *testing.T) {
	t.Parallel()

	moonLord := fix(4, chart.Moon, chart.CasteVaishya, 1)
	mercuryLord := fix(9, chart.Mercury, chart.CasteBrahmin, 3)
	sunLord := fix(3, chart.Sun, chart.CasteKshatriya, 0)
	marsLord := fix(5, chart.Mars, chart.CasteVaishya, 1)
	venusLord := fix(2, chart.Venus, chart.CasteKshatriya, 0)

	if got := scoreGrahaMaitri(moonLord, moonLord); got != 5 {
		t.Errorf("same lord = %v, want 5", got)
	}
	// Sun and Mars count each other friends in both directions.
	if got := scoreGrahaMaitri(sunLord, marsLord); got != 5 {
		t.Errorf("mutual friends = %v, want 5", got)
	}
	// The Moon counts Mercury a friend, but Mercury counts the Moon an
	// enemy; the bidirectional check must catch the hostile direction.
	if got := scoreGrahaMaitri(moonLord, mercuryLord); got != 0 {
		t.Errorf("asymmetric enmity = %v, want 0", got)
	}
	if got := scoreGrahaMaitri(mercuryLord, moonLord); got != 0 {
		t.Errorf("asymmetric enmity reversed = %v, want 0", got)
	}
	// Mars is neutral toward Venus and Venus neutral toward Mars.
	if got := scoreGrahaMaitri(marsLord, venusLord); got != 2.5 {
		t.Errorf("mutual neutrality = %v, want 2.5", got)
	}
}

func TestScoreGrahaMaitri_UnknownLordDefaults(t *testing.T) {
	t.Parallel()

	known := fix(4, chart.Moon, chart.CasteVaishya, 1)
	unknown := fix(4, "chiron", chart.CasteVaishya, 1)
	if got := scoreGrahaMaitri(known, unknown); got != 1 {
		t.Errorf("unlisted lord = %v, want default neutral 1", got)
	}
}

// --- Gana ---

func TestScoreGana(t *testing.T) {
	t.Parallel()

	deva := fix(1, chart.Ketu, chart.CasteKshatriya, 0)       // Ashwini
	deva2 := fix(8, chart.Saturn, chart.CasteBrahmin, 3)      // Pushya
	manushya := fix(2, chart.Venus, chart.CasteKshatriya, 0)  // Bharani
	rakshasa := fix(3, chart.Sun, chart.CasteKshatriya, 0)    // Krittika

	if got := scoreGana(deva, deva2); got != 6 {
		t.Errorf("same class = %v, want 6", got)
	}
	if got := scoreGana(deva, manushya); got != 3 {
		t.Errorf("deva→manushya = %v, want 3", got)
	}
	if got := scoreGana(manushya, rakshasa); got != 3 {
		t.Errorf("manushya→rakshasa = %v, want 3", got)
	}
	// The compatible pairs are directional; the reverse orders score 0.
	if got := scoreGana(manushya, deva); got != 0 {
		t.Errorf("manushya→deva = %v, want 0", got)
	}
	if got := scoreGana(deva, rakshasa); got != 0 {
		t.Errorf("deva→rakshasa = %v, want 0", got)
	}
}

// --- Bhakoot ---

func TestBhakootDistance_Folding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0}, {0, 1, 1}, {0, 6, 6}, {0, 7, 5}, {0, 11, 1}, {11, 0, 1}, {4, 10, 6},
	}
	for _, tc := range tests {
		if got := bhakootDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("bhakootDistance(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScoreBhakoot_DefaultTable(t *testing.T) {
	t.Parallel()

	table := DefaultBhakootTable()
	mk := func(sign int) *chart.Nakshatra { return fix(4, chart.Moon, chart.CasteVaishya, sign) }

	// Same sign is the bhakoot dosha.
	if got := scoreBhakoot(mk(3), mk(3), table); got != 0 {
		t.Errorf("same sign = %v, want 0", got)
	}
	// Adjacent signs score the full 7, decreasing to 2 at distance 6.
	if got := scoreBhakoot(mk(3), mk(4), table); got != 7 {
		t.Errorf("distance 1 = %v, want 7", got)
	}
	if got := scoreBhakoot(mk(0), mk(6), table); got != 2 {
		t.Errorf("distance 6 = %v, want 2", got)
	}
}

// --- Nadi ---

func TestScoreNadi(t *testing.T) {
	t.Parallel()

	aadi := fix(1, chart.Ketu, chart.CasteKshatriya, 0)      // Ashwini
	aadi2 := fix(6, chart.Rahu, chart.CasteShudra, 2)        // Ardra
	madhya := fix(2, chart.Venus, chart.CasteKshatriya, 0)   // Bharani

	if got := scoreNadi(aadi, aadi2); got != 0 {
		t.Errorf("same nadi class = %v, want 0 (dosha)", got)
	}
	if got := scoreNadi(aadi, madhya); got != 8 {
		t.Errorf("different nadi class = %v, want 8", got)
	}
}

// --- Table integrity ---

func TestTables_CoverAllNakshatras(t *testing.T) {
	t.Parallel()

	animals := map[string]bool{}
	for i := 0; i < 27; i++ {
		if nakshatraYoni[i] == "" {
			t.Errorf("nakshatra %d has no yoni animal", i+1)
		}
		animals[nakshatraYoni[i]] = true
		if nakshatraGana[i] == "" {
			t.Errorf("nakshatra %d has no gana class", i+1)
		}
		if nakshatraNadi[i] == "" {
			t.Errorf("nakshatra %d has no nadi class", i+1)
		}
	}
	if len(animals) != 14 {
		t.Errorf("yoni table uses %d animals, want 14", len(animals))
	}
}

func TestTables_NadiBalanced(t *testing.T) {
	t.Parallel()

	counts := map[string]int{}
	for _, n := range nakshatraNadi {
		counts[n]++
	}
	for _, class := range []string{NadiAadi, NadiMadhya, NadiAntya} {
		if counts[class] != 9 {
			t.Errorf("nadi class %s covers %d nakshatras, want 9", class, counts[class])
		}
	}
}

func TestTables_GanaBalanced(t *testing.T) {
	t.Parallel()

	counts := map[string]int{}
	for _, g := range nakshatraGana {
		counts[g]++
	}
	for _, class := range []string{GanaDeva, GanaManushya, GanaRakshasa} {
		if counts[class] != 9 {
			t.Errorf("gana class %s covers %d nakshatras, want 9", class, counts[class])
		}
	}
}

func TestTables_YoniCompatExcludesHostilePairs(t *testing.T) {
	t.Parallel()

	hostile := [][2]string{
		{YoniHorse, YoniBuffalo}, {YoniElephant, YoniLion}, {YoniSheep, YoniMonkey},
		{YoniSerpent, YoniMongoose}, {YoniDog, YoniDeer}, {YoniCat, YoniRat},
		{YoniCow, YoniTiger},
	}
	for _, p := range hostile {
		if yoniCompat[p[0]][p[1]] || yoniCompat[p[1]][p[0]] {
			t.Errorf("hostile pair %s/%s present in compatibility table", p[0], p[1])
		}
	}
}
