package render3d

// Vertex3D is a vertex with position, normal and texture coordinate
type Vertex3D struct {
	Pos    Vec3
	Normal Vec3
	UV     Vec2
}

// Mesh3D is an indexed triangle list. Every three indices form one
// triangle, wound counter-clockwise when seen from the side its normal
// points to.
type Mesh3D struct {
	Vertices []Vertex3D
	Indices  []uint16
}

func NewMesh() *Mesh3D { return &Mesh3D{} }

// AddVertex appends a vertex and returns its index
func (m *Mesh3D) AddVertex(v Vertex3D) uint16 {
	m.Vertices = append(m.Vertices, v)
	return uint16(len(m.Vertices) - 1)
}

func (m *Mesh3D) AddTriangle(i0, i1, i2 uint16) {
	m.Indices = append(m.Indices, i0, i1, i2)
}

// AddQuad appends four vertices and the two triangles covering them
func (m *Mesh3D) AddQuad(v0, v1, v2, v3 Vertex3D) {
	i0 := m.AddVertex(v0)
	i1 := m.AddVertex(v1)
	i2 := m.AddVertex(v2)
	i3 := m.AddVertex(v3)
	m.AddTriangle(i0, i1, i2)
	m.AddTriangle(i0, i2, i3)
}

// TriangleCount returns the number of triangles
func (m *Mesh3D) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the three vertices of triangle i
func (m *Mesh3D) Triangle(i int) [3]Vertex3D {
	return [3]Vertex3D{
		m.Vertices[m.Indices[i*3]],
		m.Vertices[m.Indices[i*3+1]],
		m.Vertices[m.Indices[i*3+2]],
	}
}

// --- Primitive generators ---

// MakePlane builds a w x d rectangle centered on the origin in the XZ
// plane, facing +Y, with UVs spanning the full texture.
func MakePlane(w, d float64) *Mesh3D {
	m := NewMesh()
	hw, hd := w/2, d/2
	up := V3(0, 1, 0)
	m.AddQuad(
		Vertex3D{Pos: V3(-hw, 0, hd), Normal: up, UV: V2(0, 1)},
		Vertex3D{Pos: V3(hw, 0, hd), Normal: up, UV: V2(1, 1)},
		Vertex3D{Pos: V3(hw, 0, -hd), Normal: up, UV: V2(1, 0)},
		Vertex3D{Pos: V3(-hw, 0, -hd), Normal: up, UV: V2(0, 0)},
	)
	return m
}

