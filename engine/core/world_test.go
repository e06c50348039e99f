package core

import (
	"math"
	"testing"

	"github.com/1siamBot/hexgrid/engine/hexgrid"
	"github.com/1siamBot/hexgrid/engine/render3d"
)

func TestWorld_SpawnAssignsIndices(t *testing.T) {
	w := NewWorld(4)
	for i := 0; i < 4; i++ {
		id := w.Spawn(Entity{ID: 99, Cell: i})
		if id != EntityID(i) {
			t.Fatalf("spawn %d got id %d", i, id)
		}
	}
	if w.Len() != 4 {
		t.Fatalf("Len = %d", w.Len())
	}
	e, ok := w.Get(2)
	if !ok || e.ID != 2 || e.Cell != 2 {
		t.Fatalf("Get(2) = %+v, %v", e, ok)
	}
	if _, ok := w.Get(InvalidEntity); ok {
		t.Fatal("Get(InvalidEntity) succeeded")
	}
	if _, ok := w.Get(4); ok {
		t.Fatal("Get past the end succeeded")
	}
}

func TestWorld_EachAndQuery(t *testing.T) {
	w := NewWorld(0)
	w.Spawn(Entity{Biome: hexgrid.BiomeOcean})
	w.Spawn(Entity{Biome: hexgrid.BiomeForest})
	w.Spawn(Entity{Biome: hexgrid.BiomeOcean})

	var order []EntityID
	w.Each(func(e *Entity) { order = append(order, e.ID) })
	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Fatalf("Each order = %v", order)
	}

	ocean := w.Query(func(e *Entity) bool { return e.Biome == hexgrid.BiomeOcean })
	if len(ocean) != 2 || ocean[0] != 0 || ocean[1] != 2 {
		t.Fatalf("Query = %v", ocean)
	}
}

func TestTransform_Matrix(t *testing.T) {
	tr := Transform{Translation: render3d.V3(1, 0, 2)}
	if got := tr.Matrix().TransformPoint(render3d.V3(1, 0, 0)); !got.ApproxEqual(render3d.V3(2, 0, 2), 1e-12) {
		t.Fatalf("zero scale should mean 1, got %+v", got)
	}

	tr = Transform{Translation: render3d.V3(0, 1, 0), RotationX: math.Pi / 2, Scale: 2}
	got := tr.Matrix().TransformPoint(render3d.V3(0, 1, 0))
	if !got.ApproxEqual(render3d.V3(0, 1, 2), 1e-12) {
		t.Fatalf("scale, rotate, translate = %+v, want (0,1,2)", got)
	}
}

func TestAssets_Handles(t *testing.T) {
	a := NewAssets()
	mh := a.AddMesh(render3d.MakePlane(1, 1))
	th := a.AddTexture(nil)
	mat := a.AddMaterial(Material{Name: "tile", Texture: th, Tint: render3d.White})

	if m, ok := a.Mesh(mh); !ok || len(m.Vertices) != 4 {
		t.Fatalf("Mesh(%d) = %v, %v", mh, m, ok)
	}
	if _, ok := a.Texture(th); !ok {
		t.Fatalf("Texture(%d) missing", th)
	}
	if m, ok := a.Material(mat); !ok || m.Name != "tile" || m.Texture != th {
		t.Fatalf("Material(%d) = %+v, %v", mat, m, ok)
	}

	if _, ok := a.Mesh(5); ok {
		t.Error("unknown mesh handle resolved")
	}
	if _, ok := a.Texture(-1); ok {
		t.Error("negative texture handle resolved")
	}
	if _, ok := a.Material(1); ok {
		t.Error("unknown material handle resolved")
	}
	if a.MeshCount() != 1 || a.TextureCount() != 1 || a.MaterialCount() != 1 {
		t.Fatalf("counts = %d/%d/%d", a.MeshCount(), a.TextureCount(), a.MaterialCount())
	}
}
