package hexgrid

import "github.com/1siamBot/hexgrid/engine/render3d"

// Biome is a decorative label attached to each cell
type Biome uint8

const (
	BiomeGrassland Biome = iota
	BiomeForest
	BiomeOcean
	BiomeSand
	BiomeDesert
	BiomeMountain
	BiomeEmpty
	BiomeCount
)

var biomeNames = [BiomeCount]string{
	BiomeGrassland: "Grassland",
	BiomeForest:    "Forest",
	BiomeOcean:     "Ocean",
	BiomeSand:      "Sand",
	BiomeDesert:    "Desert",
	BiomeMountain:  "Mountain",
	BiomeEmpty:     "Empty",
}

// BiomeColors maps each biome to its tile tint
var BiomeColors = [BiomeCount]render3d.Color3{
	BiomeGrassland: {R: 0.35, G: 0.75, B: 0.30},
	BiomeForest:    {R: 0.10, G: 0.45, B: 0.12},
	BiomeOcean:     {R: 0.15, G: 0.40, B: 0.85},
	BiomeSand:      {R: 0.90, G: 0.83, B: 0.60},
	BiomeDesert:    {R: 0.85, G: 0.62, B: 0.30},
	BiomeMountain:  {R: 0.55, G: 0.52, B: 0.50},
	BiomeEmpty:     {R: 1, G: 1, B: 1},
}

func (b Biome) String() string {
	if b < BiomeCount {
		return biomeNames[b]
	}
	return "Unknown"
}

// Color returns the fixed tint for b. Unknown values get white.
func (b Biome) Color() render3d.Color3 {
	if b < BiomeCount {
		return BiomeColors[b]
	}
	return render3d.White
}

// Intner is the random source used for biome draws
type Intner interface {
	Intn(n int) int
}

// RandomBiome draws one of the six land and water biomes uniformly.
// BiomeEmpty is never drawn; it marks untagged cells.
func RandomBiome(rng Intner) Biome {
	return Biome(rng.Intn(int(BiomeEmpty)))
}

// BiomeHistogram counts cells per biome
func BiomeHistogram(cells []Cell) [BiomeCount]int {
	var h [BiomeCount]int
	for _, c := range cells {
		if c.Biome < BiomeCount {
			h[c.Biome]++
		}
	}
	return h
}
