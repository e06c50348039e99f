package hexgrid

import (
	"math"

	"github.com/1siamBot/hexgrid/engine/render3d"
)

const (
	// HexVertexCount is the center plus six rim vertices
	HexVertexCount = 7
	// HexIndexCount is six fan triangles
	HexIndexCount = 18
)

// OppositeLeg is the distance along Z from the center line to the side
// corners of a hexagon with inner radius r: tan(30°)·r, which equals half
// the outer radius.
func OppositeLeg(innerRadius float64) float64 {
	return math.Tan(math.Pi/6) * innerRadius
}

// Corners returns the six rim positions, starting at north (+Z) and
// turning counter-clockwise when seen from above (a positive rotation
// about +Y, so +Z comes before +X)
func (l Layout) Corners() [6]render3d.Vec3 {
	R, r := l.OuterRadius, l.InnerRadius
	leg := OppositeLeg(r)
	return [6]render3d.Vec3{
		{X: 0, Y: 0, Z: R},
		{X: r, Y: 0, Z: leg},
		{X: r, Y: 0, Z: -leg},
		{X: 0, Y: 0, Z: -R},
		{X: -r, Y: 0, Z: -leg},
		{X: -r, Y: 0, Z: leg},
	}
}

// NewHexMesh builds the flat hexagon tile: a center vertex, six rim
// vertices at the outer radius and a six-triangle fan, all facing +Y. UVs
// map the circumcircle's bounding square onto the whole texture, so the
// texture keeps its aspect on the hexagon. The mesh is meant to be built
// once and shared read-only by every tile.
func NewHexMesh(l Layout) *render3d.Mesh3D {
	up := render3d.V3(0, 1, 0)
	m := &render3d.Mesh3D{
		Vertices: make([]render3d.Vertex3D, 0, HexVertexCount),
		Indices:  make([]uint16, 0, HexIndexCount),
	}

	m.AddVertex(render3d.Vertex3D{Pos: render3d.V3(0, 0, 0), Normal: up, UV: render3d.V2(0.5, 0.5)})
	for _, p := range l.Corners() {
		m.AddVertex(render3d.Vertex3D{Pos: p, Normal: up, UV: l.uvFor(p)})
	}

	for i := uint16(1); i <= 6; i++ {
		m.AddTriangle(0, i, i%6+1)
	}
	return m
}

// uvFor projects a point of the hexagon plane onto texture space. V grows
// toward -Z so north sits at the top of the texture.
func (l Layout) uvFor(p render3d.Vec3) render3d.Vec2 {
	d := 2 * l.OuterRadius
	return render3d.V2(0.5+p.X/d, 0.5-p.Z/d)
}

// NewTileMesh returns the mesh matching the layout: a hexagon for hex
// layouts and a square plane of side OuterRadius otherwise
func NewTileMesh(l Layout) *render3d.Mesh3D {
	if l.Kind == LayoutSquare {
		return render3d.MakePlane(l.OuterRadius, l.OuterRadius)
	}
	return NewHexMesh(l)
}
