package hexgrid

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewGrid_Untagged(t *testing.T) {
	l := NewHexLayout(2)
	g, err := NewGrid(l, Square(2), nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Len() != 16 {
		t.Fatalf("Len = %d, want 16", g.Len())
	}
	for _, c := range g.Cells() {
		if c.Biome != BiomeEmpty {
			t.Fatalf("cell %v tagged %s without a random source", c.Coord, c.Biome)
		}
		if c.Position != l.ToWorld(c.Coord) {
			t.Fatalf("cell %v position %+v does not match layout", c.Coord, c.Position)
		}
	}
}

func TestNewGrid_EmptyExtent(t *testing.T) {
	_, err := NewGrid(NewHexLayout(2), Extent{MinX: 0, MaxX: 0, MinZ: 0, MaxZ: 4}, nil)
	if !errors.Is(err, ErrEmptyExtent) {
		t.Fatalf("err = %v, want ErrEmptyExtent", err)
	}
}

func TestGrid_Addressing(t *testing.T) {
	g, err := NewGrid(NewHexLayout(2), Square(10), nil)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Len() != 400 {
		t.Fatalf("Len = %d, want 400", g.Len())
	}
	for i, c := range g.Cells() {
		if got := g.Index(c.Coord); got != i {
			t.Fatalf("Index(%v) = %d, want %d", c.Coord, got, i)
		}
		if cell := g.At(c.Coord); cell == nil || cell.Coord != c.Coord {
			t.Fatalf("At(%v) = %+v", c.Coord, cell)
		}
	}
	for _, out := range []Coord{{10, 0}, {0, 10}, {-11, 0}, {0, -11}} {
		if g.InBounds(out) {
			t.Errorf("InBounds(%v) = true", out)
		}
		if g.Index(out) != -1 {
			t.Errorf("Index(%v) = %d, want -1", out, g.Index(out))
		}
		if g.At(out) != nil {
			t.Errorf("At(%v) != nil", out)
		}
	}
}

func TestRandomBiome_Uniform(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const draws = 60000
	var counts [BiomeCount]int
	for i := 0; i < draws; i++ {
		counts[RandomBiome(rng)]++
	}
	if counts[BiomeEmpty] != 0 {
		t.Fatalf("BiomeEmpty drawn %d times", counts[BiomeEmpty])
	}
	expected := draws / int(BiomeEmpty)
	for b := Biome(0); b < BiomeEmpty; b++ {
		if diff := counts[b] - expected; diff > expected/20 || diff < -expected/20 {
			t.Errorf("%s drawn %d times, want about %d", b, counts[b], expected)
		}
	}
}

func TestNewGrid_TaggedHistogram(t *testing.T) {
	g, err := NewGrid(NewHexLayout(2), Square(10), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	hist := BiomeHistogram(g.Cells())
	total := 0
	for _, n := range hist {
		total += n
	}
	if total != g.Len() {
		t.Fatalf("histogram total %d, want %d", total, g.Len())
	}
	if hist[BiomeEmpty] != 0 {
		t.Fatalf("%d cells tagged Empty", hist[BiomeEmpty])
	}
}

func TestBiome_NamesAndColors(t *testing.T) {
	if BiomeOcean.String() != "Ocean" || BiomeEmpty.String() != "Empty" {
		t.Fatal("unexpected biome names")
	}
	if Biome(200).String() != "Unknown" {
		t.Fatal("out of range biome should be Unknown")
	}
	seen := map[[3]float64]Biome{}
	for b := Biome(0); b < BiomeEmpty; b++ {
		c := b.Color()
		key := [3]float64{c.R, c.G, c.B}
		if prev, dup := seen[key]; dup {
			t.Errorf("%s and %s share a color", prev, b)
		}
		seen[key] = b
	}
}

func TestChecksum(t *testing.T) {
	build := func(seed int64) *Grid {
		g, err := NewGrid(NewHexLayout(2), Square(10), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		return g
	}
	a, b, c := build(42), build(42), build(43)
	if a.Checksum() != b.Checksum() {
		t.Fatal("same seed produced different checksums")
	}
	if a.Checksum() == c.Checksum() {
		t.Fatal("different seeds produced the same checksum")
	}
	if len(a.ShortChecksum()) != 12 {
		t.Fatalf("ShortChecksum = %q", a.ShortChecksum())
	}
}
