// Package hexgrid lays out hexagonal tiles in world space and builds the
// single mesh every tile shares.
//
// Tiles are addressed by integer (X, Z) pairs. Odd rows are shifted half a
// tile along X so neighbouring rows interlock; rows are 1.5 outer radii
// apart along Z.
package hexgrid

import (
	"errors"
	"fmt"
	"math"

	"github.com/1siamBot/hexgrid/engine/render3d"
)

// InnerRadiusFactor is √3/2, the ratio of a hexagon's inradius to its
// circumradius
const InnerRadiusFactor = 0.8660254037844386

var ErrEmptyExtent = errors.New("hexgrid: empty extent")

// Coord identifies a grid cell by column X and row Z
type Coord struct {
	X, Z int
}

// S returns the implicit third cube coordinate. It is only shown for
// debugging.
func (c Coord) S() int { return -c.X - c.Z }

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Z, c.S())
}

// Extent is a rectangular window of cells, half-open on both axes:
// MinX <= x < MaxX and MinZ <= z < MaxZ.
type Extent struct {
	MinX, MaxX int
	MinZ, MaxZ int
}

// Square returns the extent -n..n on both axes, excluding n
func Square(n int) Extent {
	return Extent{MinX: -n, MaxX: n, MinZ: -n, MaxZ: n}
}

func (e Extent) Width() int  { return e.MaxX - e.MinX }
func (e Extent) Height() int { return e.MaxZ - e.MinZ }
func (e Extent) Len() int    { return e.Width() * e.Height() }

// Contains reports whether c lies inside the extent
func (e Extent) Contains(c Coord) bool {
	return c.X >= e.MinX && c.X < e.MaxX && c.Z >= e.MinZ && c.Z < e.MaxZ
}

// Validate rejects extents without cells
func (e Extent) Validate() error {
	if e.Width() <= 0 || e.Height() <= 0 {
		return fmt.Errorf("%w: x %d..%d, z %d..%d", ErrEmptyExtent, e.MinX, e.MaxX, e.MinZ, e.MaxZ)
	}
	return nil
}

// LayoutKind selects how coordinates map to world space
type LayoutKind uint8

const (
	// LayoutHex packs hexagons so adjacent rows interlock
	LayoutHex LayoutKind = iota
	// LayoutSquare places tiles on a plain square lattice
	LayoutSquare
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutHex:
		return "hex"
	case LayoutSquare:
		return "square"
	}
	return "unknown"
}

// Layout converts cell coordinates to world positions
type Layout struct {
	Kind        LayoutKind
	OuterRadius float64 // circumradius, center to corner
	InnerRadius float64 // inradius, center to edge midpoint
}

// NewHexLayout returns the interlocking hexagon layout for outer radius R
func NewHexLayout(outerRadius float64) Layout {
	return Layout{
		Kind:        LayoutHex,
		OuterRadius: outerRadius,
		InnerRadius: outerRadius * InnerRadiusFactor,
	}
}

// NewSquareLayout spaces tiles size apart on both axes
func NewSquareLayout(size float64) Layout {
	return Layout{
		Kind:        LayoutSquare,
		OuterRadius: size,
		InnerRadius: size * InnerRadiusFactor,
	}
}

// ToWorld returns the world-space center of cell c. The result always
// lies on the y = 0 plane.
func (l Layout) ToWorld(c Coord) render3d.Vec3 {
	x, z := float64(c.X), float64(c.Z)
	if l.Kind == LayoutSquare {
		return render3d.V3(x*l.OuterRadius, 0, z*l.OuterRadius)
	}
	return render3d.V3(
		(x+z*0.5-math.Floor(z/2))*(l.InnerRadius*2),
		0,
		z*l.OuterRadius*1.5,
	)
}

// Coords lists the cells of e row by row, z outer and x inner
func (l Layout) Coords(e Extent) []Coord {
	if e.Validate() != nil {
		return nil
	}
	out := make([]Coord, 0, e.Len())
	for z := e.MinZ; z < e.MaxZ; z++ {
		for x := e.MinX; x < e.MaxX; x++ {
			out = append(out, Coord{X: x, Z: z})
		}
	}
	return out
}
