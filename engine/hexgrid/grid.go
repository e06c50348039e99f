package hexgrid

import "github.com/1siamBot/hexgrid/engine/render3d"

// Cell is one tile of the grid
type Cell struct {
	Coord    Coord
	Position render3d.Vec3
	Biome    Biome
}

// Grid stores every cell of an extent in a dense row-major slice
type Grid struct {
	Layout Layout
	Extent Extent
	cells  []Cell
}

// NewGrid builds all cells of e. When rng is nil every cell is tagged
// BiomeEmpty; otherwise each cell draws its biome once, in row order.
func NewGrid(l Layout, e Extent, rng Intner) (*Grid, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{
		Layout: l,
		Extent: e,
		cells:  make([]Cell, 0, e.Len()),
	}
	for _, c := range l.Coords(e) {
		biome := BiomeEmpty
		if rng != nil {
			biome = RandomBiome(rng)
		}
		g.cells = append(g.cells, Cell{
			Coord:    c,
			Position: l.ToWorld(c),
			Biome:    biome,
		})
	}
	return g, nil
}

// Len returns the number of cells
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns the cell slice in spawn order. Callers must not modify it.
func (g *Grid) Cells() []Cell { return g.cells }

// InBounds checks if c is part of the grid
func (g *Grid) InBounds(c Coord) bool { return g.Extent.Contains(c) }

// Index returns the dense index of c, or -1 when out of bounds
func (g *Grid) Index(c Coord) int {
	if !g.InBounds(c) {
		return -1
	}
	return (c.Z-g.Extent.MinZ)*g.Extent.Width() + (c.X - g.Extent.MinX)
}

// At returns a pointer to the cell at c, or nil when out of bounds
func (g *Grid) At(c Coord) *Cell {
	i := g.Index(c)
	if i < 0 {
		return nil
	}
	return &g.cells[i]
}
