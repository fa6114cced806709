package guna

import "github.com/lunastra/concord/internal/chart"

// The koota classification tables below are pure data artifacts: exhaustive
// constant mappings, independent of the scoring logic that consumes them.
// Where schools of Vedic astrology disagree (tara and bhakoot point values),
// the table is injectable through Options instead of being fixed here.

// --- Varna (tier rank per caste) ---

// varnaRank orders the four tiers, highest first.
var varnaRank = map[string]int{
	chart.CasteBrahmin:   4,
	chart.CasteKshatriya: 3,
	chart.CasteVaishya:   2,
	chart.CasteShudra:    1,
}

// --- Vashya (behavioral group per nakshatra lord) ---

// Vashya behavioral groups.
const (
	VashyaManava      = "manava"      // human
	VashyaChatushpada = "chatushpada" // quadruped
	VashyaJalachara   = "jalachara"   // aquatic
	VashyaVanachara   = "vanachara"   // wild
	VashyaKeeta       = "keeta"       // insect
)

// lordVashya assigns each nakshatra lord the vashya class of its primary
// sign: the Sun rules wild Leo, the Moon aquatic Cancer, and so on. Ketu
// carries Scorpio's keeta class as that sign's co-ruler.
var lordVashya = map[chart.Planet]string{
	chart.Sun:     VashyaVanachara,
	chart.Moon:    VashyaJalachara,
	chart.Mars:    VashyaChatushpada,
	chart.Mercury: VashyaManava,
	chart.Jupiter: VashyaManava,
	chart.Venus:   VashyaChatushpada,
	chart.Saturn:  VashyaJalachara,
	chart.Rahu:    VashyaManava,
	chart.Ketu:    VashyaKeeta,
}

// vashyaCompat lists directionally compatible group pairs (first party's
// group → second party's). The relation is deliberately asymmetric: a human
// partner steadies a quadruped or aquatic temperament, but not every
// reverse pairing holds.
var vashyaCompat = map[string]map[string]bool{
	VashyaManava:      {VashyaChatushpada: true, VashyaJalachara: true},
	VashyaChatushpada: {VashyaManava: true},
	VashyaJalachara:   {VashyaChatushpada: true},
	VashyaVanachara:   {VashyaChatushpada: true},
}

// --- Yoni (animal archetype per nakshatra) ---

// Yoni animal archetypes.
const (
	YoniHorse    = "horse"
	YoniElephant = "elephant"
	YoniSheep    = "sheep"
	YoniSerpent  = "serpent"
	YoniDog      = "dog"
	YoniCat      = "cat"
	YoniRat      = "rat"
	YoniCow      = "cow"
	YoniBuffalo  = "buffalo"
	YoniTiger    = "tiger"
	YoniDeer     = "deer"
	YoniMonkey   = "monkey"
	YoniMongoose = "mongoose"
	YoniLion     = "lion"
)

// nakshatraYoni is the classical 27-entry animal assignment, indexed by
// nakshatra number - 1.
var nakshatraYoni = [27]string{
	YoniHorse,    // Ashwini
	YoniElephant, // Bharani
	YoniSheep,    // Krittika
	YoniSerpent,  // Rohini
	YoniSerpent,  // Mrigashira
	YoniDog,      // Ardra
	YoniCat,      // Punarvasu
	YoniSheep,    // Pushya
	YoniCat,      // Ashlesha
	YoniRat,      // Magha
	YoniRat,      // Purva Phalguni
	YoniCow,      // Uttara Phalguni
	YoniBuffalo,  // Hasta
	YoniTiger,    // Chitra
	YoniBuffalo,  // Swati
	YoniTiger,    // Vishakha
	YoniDeer,     // Anuradha
	YoniDeer,     // Jyeshtha
	YoniDog,      // Mula
	YoniMonkey,   // Purva Ashadha
	YoniMongoose, // Uttara Ashadha
	YoniMonkey,   // Shravana
	YoniLion,     // Dhanishta
	YoniHorse,    // Shatabhisha
	YoniLion,     // Purva Bhadrapada
	YoniCow,      // Uttara Bhadrapada
	YoniElephant, // Revati
}

// yoniCompat lists animal pairs that score the intermediate 2 points. Pairs
// are stored one way and checked both ways; the classical hostile pairs
// (horse/buffalo, elephant/lion, sheep/monkey, serpent/mongoose, dog/deer,
// cat/rat, cow/tiger) are intentionally absent and fall through to 0.
var yoniCompat = map[string]map[string]bool{
	YoniHorse:    {YoniSheep: true, YoniSerpent: true},
	YoniElephant: {YoniBuffalo: true, YoniCow: true},
	YoniSheep:    {YoniCow: true, YoniBuffalo: true},
	YoniSerpent:  {YoniDog: true},
	YoniDog:      {YoniMonkey: true},
	YoniCat:      {YoniCow: true},
	YoniRat:      {YoniBuffalo: true},
	YoniCow:      {YoniDeer: true},
	YoniTiger:    {YoniLion: true},
	YoniDeer:     {YoniMonkey: true},
	YoniMonkey:   {YoniMongoose: true},
}

// --- Graha Maitri (planetary friendship) ---

// relation is one direction of the planetary friendship matrix.
type relation int

const (
	relEnemy relation = iota
	relNeutral
	relFriend
	relUnknown
)

// friendship holds the classical natural friend/enemy sets per planet.
// Unlisted combinations are neutral. The relation is not symmetric: the
// Moon counts nobody an enemy, yet Mercury counts the Moon one.
var friendship = map[chart.Planet]struct {
	friends map[chart.Planet]bool
	enemies map[chart.Planet]bool
}{
	chart.Sun: {
		friends: set(chart.Moon, chart.Mars, chart.Jupiter),
		enemies: set(chart.Venus, chart.Saturn),
	},
	chart.Moon: {
		friends: set(chart.Sun, chart.Mercury),
		enemies: set(),
	},
	chart.Mars: {
		friends: set(chart.Sun, chart.Moon, chart.Jupiter),
		enemies: set(chart.Mercury),
	},
	chart.Mercury: {
		friends: set(chart.Sun, chart.Venus),
		enemies: set(chart.Moon),
	},
	chart.Jupiter: {
		friends: set(chart.Sun, chart.Moon, chart.Mars),
		enemies: set(chart.Mercury, chart.Venus),
	},
	chart.Venus: {
		friends: set(chart.Mercury, chart.Saturn),
		enemies: set(chart.Sun, chart.Moon),
	},
	chart.Saturn: {
		friends: set(chart.Mercury, chart.Venus),
		enemies: set(chart.Sun, chart.Moon, chart.Mars),
	},
	chart.Rahu: {
		friends: set(chart.Mercury, chart.Venus, chart.Saturn),
		enemies: set(chart.Sun, chart.Moon, chart.Mars),
	},
	chart.Ketu: {
		friends: set(chart.Mars, chart.Venus, chart.Saturn),
		enemies: set(chart.Sun, chart.Moon),
	},
}

func set(ps ...chart.Planet) map[chart.Planet]bool {
	m := make(map[chart.Planet]bool, len(ps))
	for _, p := range ps {
		m[p] = true
	}
	return m
}

// relate returns how planet a regards planet b, or relUnknown when a is not
// in the matrix at all.
func relate(a, b chart.Planet) relation {
	row, ok := friendship[a]
	if !ok {
		return relUnknown
	}
	switch {
	case row.friends[b]:
		return relFriend
	case row.enemies[b]:
		return relEnemy
	default:
		return relNeutral
	}
}

// --- Gana (temperament class per nakshatra) ---

// Gana temperament classes.
const (
	GanaDeva     = "deva"
	GanaManushya = "manushya"
	GanaRakshasa = "rakshasa"
)

// nakshatraGana is the classical temperament assignment, indexed by
// nakshatra number - 1.
var nakshatraGana = [27]string{
	GanaDeva,     // Ashwini
	GanaManushya, // Bharani
	GanaRakshasa, // Krittika
	GanaManushya, // Rohini
	GanaDeva,     // Mrigashira
	GanaManushya, // Ardra
	GanaDeva,     // Punarvasu
	GanaDeva,     // Pushya
	GanaRakshasa, // Ashlesha
	GanaRakshasa, // Magha
	GanaManushya, // Purva Phalguni
	GanaManushya, // Uttara Phalguni
	GanaDeva,     // Hasta
	GanaRakshasa, // Chitra
	GanaDeva,     // Swati
	GanaRakshasa, // Vishakha
	GanaDeva,     // Anuradha
	GanaRakshasa, // Jyeshtha
	GanaRakshasa, // Mula
	GanaManushya, // Purva Ashadha
	GanaManushya, // Uttara Ashadha
	GanaDeva,     // Shravana
	GanaRakshasa, // Dhanishta
	GanaRakshasa, // Shatabhisha
	GanaManushya, // Purva Bhadrapada
	GanaManushya, // Uttara Bhadrapada
	GanaDeva,     // Revati
}

// ganaCompat lists the directionally compatible temperament pairs that
// score the intermediate 3 points: deva with manushya, manushya with
// rakshasa. The pairs are asymmetric and checked as given.
var ganaCompat = map[string]map[string]bool{
	GanaDeva:     {GanaManushya: true},
	GanaManushya: {GanaRakshasa: true},
}

// --- Nadi (constitutional class per nakshatra) ---

// Nadi constitutional classes.
const (
	NadiAadi   = "aadi"
	NadiMadhya = "madhya"
	NadiAntya  = "antya"
)

// nakshatraNadi is the classical zigzag assignment, indexed by nakshatra
// number - 1.
var nakshatraNadi = [27]string{
	NadiAadi,   // Ashwini
	NadiMadhya, // Bharani
	NadiAntya,  // Krittika
	NadiAntya,  // Rohini
	NadiMadhya, // Mrigashira
	NadiAadi,   // Ardra
	NadiAadi,   // Punarvasu
	NadiMadhya, // Pushya
	NadiAntya,  // Ashlesha
	NadiAntya,  // Magha
	NadiMadhya, // Purva Phalguni
	NadiAadi,   // Uttara Phalguni
	NadiAadi,   // Hasta
	NadiMadhya, // Chitra
	NadiAntya,  // Swati
	NadiAntya,  // Vishakha
	NadiMadhya, // Anuradha
	NadiAadi,   // Jyeshtha
	NadiAadi,   // Mula
	NadiMadhya, // Purva Ashadha
	NadiAntya,  // Uttara Ashadha
	NadiAntya,  // Shravana
	NadiMadhya, // Dhanishta
	NadiAadi,   // Shatabhisha
	NadiAadi,   // Purva Bhadrapada
	NadiMadhya, // Uttara Bhadrapada
	NadiAntya,  // Revati
}

// --- Default point tables (injectable; see Options) ---

// DefaultTaraTable maps folded nakshatra-index distance (0-13) to points.
// Several distinct distances sharing a value is traditional, not a bug;
// distance 9 — direct opposition — is the only zero.
func DefaultTaraTable() []float64 {
	return []float64{3, 1.5, 3, 1.5, 2, 1.5, 3, 1.5, 2, 0, 3, 1.5, 2, 1.5}
}

// DefaultBhakootTable maps folded zodiac-sign distance (0-6) to points.
// Same sign scores nothing; adjacent signs score the full 7, decreasing
// with distance.
func DefaultBhakootTable() []float64 {
	return []float64{0, 7, 6, 5, 4, 3, 2}
}
