package app

import (
	"log"

	"github.com/1siamBot/hexgrid/engine/core"
	"github.com/1siamBot/hexgrid/engine/hexgrid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the result of the initialization pass. Nothing in it changes
// after buildScene returns.
type Scene struct {
	Grid     *hexgrid.Grid
	Assets   *core.Assets
	World    *core.World
	TileMesh core.MeshHandle
	Seed     int64
}

// Textures handed to buildScene. Either may be nil in headless use; tiles
// referencing a nil texture are skipped by the renderer.
type sceneTextures struct {
	debug *ebiten.Image
	solid *ebiten.Image
}

// buildScene creates the shared tile mesh and materials, lays out the
// grid and spawns one entity per cell
func buildScene(cfg Config, tex sceneTextures) (*Scene, error) {
	layout := cfg.Grid.NewLayout()

	var rng hexgrid.Intner
	var seed int64
	if cfg.Grid.Biomes != BiomesNone {
		p := core.NewPRNG(cfg.Seed)
		rng, seed = p, p.Seed()
	}
	grid, err := hexgrid.NewGrid(layout, cfg.Grid.Extent, rng)
	if err != nil {
		return nil, err
	}

	assets := core.NewAssets()
	tileMesh := assets.AddMesh(hexgrid.NewTileMesh(layout))
	materialFor := tileMaterials(cfg.Grid.Biomes, assets, tex)

	world := core.NewWorld(grid.Len())
	for i, cell := range grid.Cells() {
		id := world.Spawn(core.Entity{
			Cell:      i,
			Transform: core.Transform{Translation: cell.Position},
			Mesh:      tileMesh,
			Material:  materialFor(cell.Biome),
			Biome:     cell.Biome,
		})
		if cfg.Debug {
			log.Printf("spawn tile %d at %v coord %v biome %s", id, cell.Position, cell.Coord, cell.Biome)
		}
	}

	return &Scene{
		Grid:     grid,
		Assets:   assets,
		World:    world,
		TileMesh: tileMesh,
		Seed:     seed,
	}, nil
}

// tileMaterials registers the materials a biome mode needs and returns
// the lookup used for each tile. Tiles share materials by handle.
func tileMaterials(mode BiomeMode, assets *core.Assets, tex sceneTextures) func(hexgrid.Biome) core.MaterialHandle {
	if mode != BiomesColors {
		debugTex := assets.AddTexture(tex.debug)
		mat := assets.AddMaterial(core.Material{
			Name:    "uv-debug",
			Texture: debugTex,
			Tint:    hexgrid.BiomeEmpty.Color(),
		})
		return func(hexgrid.Biome) core.MaterialHandle { return mat }
	}

	solidTex := assets.AddTexture(tex.solid)
	var mats [hexgrid.BiomeCount]core.MaterialHandle
	for b := hexgrid.Biome(0); b < hexgrid.BiomeCount; b++ {
		mats[b] = assets.AddMaterial(core.Material{
			Name:    b.String(),
			Texture: solidTex,
			Tint:    b.Color(),
		})
	}
	return func(b hexgrid.Biome) core.MaterialHandle {
		if b >= hexgrid.BiomeCount {
			b = hexgrid.BiomeEmpty
		}
		return mats[b]
	}
}
