// Package chartfile reads and writes natal charts as *.chart.toml files.
// The on-disk format is deliberately small: a name, an ascendant, optional
// explicit house cusps, and one [planets.<name>] table per body. Charts
// loaded from disk come back validated, with whole-sign houses filled in
// when the file carries none and the Moon nakshatra derived when a Moon is
// present.
package chartfile

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lunastra/concord/internal/chart"
)

// Suffix is the extension chart files carry.
const Suffix = ".chart.toml"

// PlanetEntry is one body's position in the file.
type PlanetEntry struct {
	Longitude float64 `toml:"longitude"`
	Latitude  float64 `toml:"latitude,omitempty"`
	Speed     float64 `toml:"speed,omitempty"`
}

// File is the on-disk chart representation.
type File struct {
	Name      string                 `toml:"name"`
	Ascendant float64                `toml:"ascendant"`
	Houses    []float64              `toml:"houses,omitempty"`
	Planets   map[string]PlanetEntry `toml:"planets"`
}

// IsChartFile reports whether path names a chart file.
func IsChartFile(path string) bool {
	return strings.HasSuffix(path, Suffix)
}

// Load reads a chart file and returns the validated chart plus its declared
// name. A file without explicit houses gets whole-sign houses from the
// ascendant; a file with a Moon gets its nakshatra attached.
func Load(path string) (*chart.Chart, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("chartfile: reading %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("chartfile: parsing %s: %w: %v", path, chart.ErrValidation, err)
	}
	c, err := f.Chart()
	if err != nil {
		return nil, "", fmt.Errorf("chartfile: %s: %w", path, err)
	}
	return c, f.Name, nil
}

// Chart converts the file into a validated chart.
func (f File) Chart() (*chart.Chart, error) {
	c := &chart.Chart{
		Planets:   make(map[chart.Planet]chart.Position, len(f.Planets)),
		Ascendant: f.Ascendant,
		Houses:    f.Houses,
	}
	for name, p := range f.Planets {
		c.Planets[chart.Planet(strings.ToLower(name))] = chart.Position{
			Longitude: p.Longitude,
			Latitude:  p.Latitude,
			Speed:     p.Speed,
		}
	}
	if len(c.Houses) == 0 {
		c.Houses = chart.WholeSignHouses(f.Ascendant)
	}
	if err := c.Validate(f.Name); err != nil {
		return nil, err
	}
	if moon, ok := c.Planets[chart.Moon]; ok {
		nk, err := chart.NakshatraFromLongitude(moon.Longitude)
		if err != nil {
			return nil, err
		}
		c.Nakshatra = nk
	}
	return c, nil
}

// Marshal renders the chart in the chart file format. Explicit houses are
// only written when they differ from the whole-sign cusps the ascendant
// implies, keeping round-tripped files minimal.
func Marshal(name string, c *chart.Chart) ([]byte, error) {
	if err := c.Validate(name); err != nil {
		return nil, err
	}
	f := File{
		Name:      name,
		Ascendant: c.Ascendant,
		Planets:   make(map[string]PlanetEntry, len(c.Planets)),
	}
	if !wholeSign(c) {
		f.Houses = c.Houses
	}
	for p, pos := range c.Planets {
		f.Planets[string(p)] = PlanetEntry{
			Longitude: pos.Longitude,
			Latitude:  pos.Latitude,
			Speed:     pos.Speed,
		}
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("chartfile: encoding %q: %w", name, err)
	}
	return data, nil
}

// Save writes the chart to path in the chart file format.
func Save(path, name string, c *chart.Chart) error {
	data, err := Marshal(name, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("chartfile: writing %s: %w", path, err)
	}
	return nil
}

func wholeSign(c *chart.Chart) bool {
	ws := chart.WholeSignHouses(c.Ascendant)
	if len(c.Houses) != len(ws) {
		return false
	}
	for i := range ws {
		if c.Houses[i] != ws[i] {
			return false
		}
	}
	return true
}
