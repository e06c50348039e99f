package hexgrid

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Checksum hashes the layout, extent and every cell. Two grids built with
// the same config and seed have the same checksum.
func (g *Grid) Checksum() string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys

	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}

	putInt(int(g.Layout.Kind))
	putFloat(g.Layout.OuterRadius)
	putInt(g.Extent.MinX)
	putInt(g.Extent.MaxX)
	putInt(g.Extent.MinZ)
	putInt(g.Extent.MaxZ)
	for _, c := range g.cells {
		putInt(c.Coord.X)
		putInt(c.Coord.Z)
		putFloat(c.Position.X)
		putFloat(c.Position.Z)
		h.Write([]byte{byte(c.Biome)})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShortChecksum is the first 12 hex digits of Checksum, for logs and the HUD
func (g *Grid) ShortChecksum() string {
	return g.Checksum()[:12]
}
