package chartfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lunastra/concord/internal/chart"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadValidChart(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "alice"+Suffix, `
name = "alice"
ascendant = 15.0

[planets.sun]
longitude = 120.5

[planets.moon]
longitude = 45.0
latitude = 2.1
speed = 13.2
`)

	c, name, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != "alice" {
		t.Errorf("name = %q, want %q", name, "alice")
	}
	if got := c.Planets[chart.Sun].Longitude; got != 120.5 {
		t.Errorf("sun longitude = %v, want 120.5", got)
	}
	if got := c.Planets[chart.Moon].Speed; got != 13.2 {
		t.Errorf("moon speed = %v, want 13.2", got)
	}
	if diff := cmp.Diff(chart.WholeSignHouses(15), c.Houses); diff != "" {
		t.Errorf("houses mismatch (-want +got):\n%s", diff)
	}
	if c.Nakshatra == nil || c.Nakshatra.Name != "Rohini" {
		t.Errorf("nakshatra = %+v, want Rohini from Moon at 45", c.Nakshatra)
	}
}

func TestLoadExplicitHouses(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "custom"+Suffix, `
name = "custom"
ascendant = 10.0
houses = [5, 35, 65, 95, 125, 155, 185, 215, 245, 275, 305, 335]

[planets.sun]
longitude = 100.0
`)

	c, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Houses[0] != 5 {
		t.Errorf("first cusp = %v, want the explicit 5", c.Houses[0])
	}
}

func TestLoadUppercasePlanetNames(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "caps"+Suffix, `
name = "caps"
ascendant = 0.0

[planets.Sun]
longitude = 10.0
`)

	c, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := c.Planets[chart.Sun]; !ok {
		t.Errorf("planet names should be case-folded, got %v", c.Planets)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cases := []struct {
		name    string
		content string
	}{
		{"malformed toml", `name = `},
		{"longitude out of range", "name = \"x\"\nascendant = 0.0\n[planets.sun]\nlongitude = 400.0\n"},
		{"ascendant out of range", "name = \"x\"\nascendant = -5.0\n"},
		{"wrong house count", "name = \"x\"\nascendant = 0.0\nhouses = [0, 30, 60]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, dir, strings.ReplaceAll(tc.name, " ", "-")+Suffix, tc.content)
			if _, _, err := Load(path); !errors.Is(err, chart.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := Load(filepath.Join(t.TempDir(), "absent"+Suffix))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	orig := &chart.Chart{
		Planets: map[chart.Planet]chart.Position{
			chart.Sun:  {Longitude: 120.5},
			chart.Moon: {Longitude: 45, Latitude: 2.1, Speed: 13.2},
		},
		Houses:    chart.WholeSignHouses(15),
		Ascendant: 15,
	}

	path := filepath.Join(t.TempDir(), "bob"+Suffix)
	if err := Save(path, "bob", orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, name, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if name != "bob" {
		t.Errorf("name = %q, want %q", name, "bob")
	}
	if diff := cmp.Diff(orig.Planets, got.Planets); diff != "" {
		t.Errorf("planets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig.Houses, got.Houses); diff != "" {
		t.Errorf("houses mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOmitsWholeSignHouses(t *testing.T) {
	t.Parallel()

	c := &chart.Chart{
		Planets:   map[chart.Planet]chart.Position{chart.Sun: {Longitude: 10}},
		Houses:    chart.WholeSignHouses(0),
		Ascendant: 0,
	}
	path := filepath.Join(t.TempDir(), "min"+Suffix)
	if err := Save(path, "min", c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "houses") {
		t.Errorf("whole-sign houses should be implied, file:\n%s", data)
	}
}

func TestSaveRejectsInvalidChart(t *testing.T) {
	t.Parallel()

	bad := &chart.Chart{Ascendant: 400}
	if err := Save(filepath.Join(t.TempDir(), "bad"+Suffix), "bad", bad); !errors.Is(err, chart.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}
