package app

import (
	"math"
	"strings"
	"testing"

	"github.com/1siamBot/hexgrid/engine/core"
	"github.com/1siamBot/hexgrid/engine/hexgrid"
)

func mustScene(t *testing.T, revision string, seed int64) *Scene {
	t.Helper()
	cfg, err := Preset(revision)
	if err != nil {
		t.Fatalf("Preset(%q): %v", revision, err)
	}
	cfg.Seed = seed
	s, err := buildScene(cfg, sceneTextures{})
	if err != nil {
		t.Fatalf("buildScene(%q): %v", revision, err)
	}
	return s
}

func TestBuildScene_SharedMeshAndMaterial(t *testing.T) {
	s := mustScene(t, RevisionHexMesh, 0)
	if s.World.Len() != 16 {
		t.Fatalf("entities = %d, want 16", s.World.Len())
	}
	if s.Assets.MeshCount() != 1 || s.Assets.MaterialCount() != 1 {
		t.Fatalf("meshes %d materials %d, want 1 and 1", s.Assets.MeshCount(), s.Assets.MaterialCount())
	}
	mesh, ok := s.Assets.Mesh(s.TileMesh)
	if !ok || len(mesh.Vertices) != hexgrid.HexVertexCount {
		t.Fatalf("tile mesh = %v, %v", mesh, ok)
	}

	s.World.Each(func(e *core.Entity) {
		if e.Mesh != s.TileMesh || e.Material != 0 {
			t.Fatalf("entity %d does not share the tile assets", e.ID)
		}
		cell := s.Grid.Cells()[e.Cell]
		if e.Transform.Translation != cell.Position {
			t.Fatalf("entity %d at %+v, cell at %+v", e.ID, e.Transform.Translation, cell.Position)
		}
		if e.Biome != hexgrid.BiomeEmpty {
			t.Fatalf("entity %d tagged %s without biomes enabled", e.ID, e.Biome)
		}
	})
	if s.Seed != 0 {
		t.Fatalf("seed = %d without biomes", s.Seed)
	}
}

func TestBuildScene_QuadsUsesPlane(t *testing.T) {
	s := mustScene(t, RevisionQuads, 0)
	mesh, _ := s.Assets.Mesh(s.TileMesh)
	if len(mesh.Vertices) != 4 {
		t.Fatalf("quads tile mesh has %d vertices", len(mesh.Vertices))
	}
	e, _ := s.World.Get(1)
	if e.Transform.Translation.X != -2 || e.Transform.Translation.Z != -4 {
		t.Fatalf("second quad at %+v", e.Transform.Translation)
	}
}

func TestBuildScene_Biomes(t *testing.T) {
	a := mustScene(t, RevisionBiomes, 1234)
	b := mustScene(t, RevisionBiomes, 1234)
	if a.World.Len() != 400 {
		t.Fatalf("entities = %d, want 400", a.World.Len())
	}
	if a.Seed != 1234 {
		t.Fatalf("seed = %d", a.Seed)
	}
	if a.Grid.Checksum() != b.Grid.Checksum() {
		t.Fatal("same seed built different grids")
	}
	if a.Assets.MaterialCount() != 1 {
		t.Fatalf("biomes revision should share one material, got %d", a.Assets.MaterialCount())
	}
	a.World.Each(func(e *core.Entity) {
		if e.Biome >= hexgrid.BiomeEmpty {
			t.Fatalf("entity %d tagged %s", e.ID, e.Biome)
		}
	})
}

func TestBuildScene_BiomeColors(t *testing.T) {
	s := mustScene(t, RevisionBiomeColors, 99)
	if s.Assets.MaterialCount() != int(hexgrid.BiomeCount) {
		t.Fatalf("materials = %d, want %d", s.Assets.MaterialCount(), hexgrid.BiomeCount)
	}
	s.World.Each(func(e *core.Entity) {
		mat, ok := s.Assets.Material(e.Material)
		if !ok {
			t.Fatalf("entity %d has no material", e.ID)
		}
		if mat.Tint != e.Biome.Color() || mat.Name != e.Biome.String() {
			t.Fatalf("entity %d (%s) uses material %q", e.ID, e.Biome, mat.Name)
		}
	})
}

func TestHUDLines(t *testing.T) {
	s := mustScene(t, RevisionBiomes, 5)
	cfg, _ := Preset(RevisionBiomes)
	lines := HUDLines(cfg, s, 60, 800, 0)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Revision: biomes", "Tiles: 400", "Seed: 5", "Grassland", "Grid: " + s.Grid.ShortChecksum()} {
		if !strings.Contains(joined, want) {
			t.Errorf("HUD missing %q:\n%s", want, joined)
		}
	}

	plain := mustScene(t, RevisionHexMesh, 0)
	cfg, _ = Preset(RevisionHexMesh)
	for _, l := range HUDLines(cfg, plain, 60, 0, 0) {
		if strings.HasPrefix(l, "Biomes:") {
			t.Fatal("biome histogram shown without biomes")
		}
	}
}

func TestFitRect(t *testing.T) {
	x, y, scale := fitRect(1280, 720, 1920, 1080, 0.9)
	if math.Abs(scale-1.35) > 1e-9 {
		t.Fatalf("scale = %v", scale)
	}
	if math.Abs(x-96) > 1e-6 || math.Abs(y-54) > 1e-6 {
		t.Fatalf("offset = (%v, %v), want (96, 54)", x, y)
	}
}
