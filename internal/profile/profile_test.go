package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lunastra/concord/internal/chart"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "charts.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleChart() *chart.Chart {
	return &chart.Chart{
		Planets: map[chart.Planet]chart.Position{
			chart.Sun:  {Longitude: 120.5},
			chart.Moon: {Longitude: 45, Latitude: 2.1, Speed: 13.2},
		},
		Houses:    chart.WholeSignHouses(15),
		Ascendant: 15,
	}
}

func TestSaveAndGet(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	want := sampleChart()
	if err := s.Save(ctx, "alice", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(want.Planets, got.Planets); diff != "" {
		t.Errorf("planets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Houses, got.Houses); diff != "" {
		t.Errorf("houses mismatch (-want +got):\n%s", diff)
	}
	if got.Ascendant != want.Ascendant {
		t.Errorf("ascendant = %v, want %v", got.Ascendant, want.Ascendant)
	}
	if got.Nakshatra == nil || got.Nakshatra.Name != "Rohini" {
		t.Errorf("nakshatra = %+v, want Rohini derived from stored Moon", got.Nakshatra)
	}
}

func TestSaveUpsertsExisting(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "bob", sampleChart()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated := &chart.Chart{
		Planets:   map[chart.Planet]chart.Position{chart.Venus: {Longitude: 200}},
		Houses:    chart.WholeSignHouses(90),
		Ascendant: 90,
	}
	if err := s.Save(ctx, "bob", updated); err != nil {
		t.Fatalf("Save (update): %v", err)
	}

	got, err := s.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Ascendant != 90 {
		t.Errorf("ascendant = %v, want updated 90", got.Ascendant)
	}
	// stale planet rows from the first save must be gone
	if len(got.Planets) != 1 {
		t.Errorf("planets = %v, want only venus", got.Planets)
	}
	if _, ok := got.Planets[chart.Venus]; !ok {
		t.Errorf("expected venus in %v", got.Planets)
	}
}

func TestGetUnknownChart(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	_, err := s.Get(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "", sampleChart()); !errors.Is(err, chart.ErrValidation) {
		t.Errorf("empty name: err = %v, want ErrValidation", err)
	}
	if err := s.Save(ctx, "bad", &chart.Chart{Ascendant: 400}); !errors.Is(err, chart.ErrValidation) {
		t.Errorf("invalid chart: err = %v, want ErrValidation", err)
	}
}

func TestList(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "zoe", sampleChart()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, "adam", sampleChart()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	// ordered by name
	if entries[0].Name != "adam" || entries[1].Name != "zoe" {
		t.Errorf("order = [%s, %s], want [adam, zoe]", entries[0].Name, entries[1].Name)
	}
	if entries[0].Planets != 2 {
		t.Errorf("planet count = %d, want 2", entries[0].Planets)
	}
	if entries[0].CreatedAt.IsZero() || entries[0].UpdatedAt.IsZero() {
		t.Errorf("timestamps should be populated: %+v", entries[0])
	}
}

func TestListEmpty(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	entries, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty catalog, got %+v", entries)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "temp", sampleChart()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete(ctx, "temp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "charts.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Save(context.Background(), "x", sampleChart()); err != nil {
		t.Errorf("Save after nested open: %v", err)
	}
}
