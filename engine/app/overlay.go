package app

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/1siamBot/hexgrid/engine/hexgrid"
	"github.com/1siamBot/hexgrid/engine/render3d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	overlayFontSize   = 16
	overlayLineHeight = 20
	overlayPadding    = 10
	previewSize       = 96
)

// Overlay draws the HUD on top of the rendered scene
type Overlay struct {
	face    text.Face
	preview *ebiten.Image
}

// NewOverlay loads the HUD font and the texture preview. If the font
// cannot be parsed the HUD falls back to ebitenutil.DebugPrint.
func NewOverlay() *Overlay {
	o := &Overlay{
		preview: ebiten.NewImageFromImage(scaledPreview(render3d.UVDebugImage(), previewSize)),
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err == nil {
		o.face = &text.GoTextFace{Source: source, Size: overlayFontSize}
	}
	return o
}

// scaledPreview upscales src to size x size without smoothing so the
// texture's pixels stay sharp
func scaledPreview(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// HUDLines formats the overlay text for a scene
func HUDLines(cfg Config, s *Scene, fps float64, drawn, culled int) []string {
	lines := []string{
		fmt.Sprintf("Revision: %s | FPS: %.0f", cfg.Revision, fps),
		fmt.Sprintf("Tiles: %d | Meshes: %d | Materials: %d", s.World.Len(), s.Assets.MeshCount(), s.Assets.MaterialCount()),
		fmt.Sprintf("Layout: %s R=%.2f | Triangles: %d drawn, %d culled", s.Grid.Layout.Kind, s.Grid.Layout.OuterRadius, drawn, culled),
		fmt.Sprintf("Grid: %s", s.Grid.ShortChecksum()),
	}
	if cfg.Grid.Biomes != BiomesNone {
		hist := hexgrid.BiomeHistogram(s.Grid.Cells())
		parts := make([]string, 0, hexgrid.BiomeCount)
		for b := hexgrid.Biome(0); b < hexgrid.BiomeCount; b++ {
			parts = append(parts, fmt.Sprintf("%s %d", b, hist[b]))
		}
		lines = append(lines, fmt.Sprintf("Seed: %d", s.Seed), "Biomes: "+strings.Join(parts, ", "))
	}
	return lines
}

// Draw renders the HUD lines in the top-left corner and the texture
// preview in the bottom-right corner
func (o *Overlay) Draw(screen *ebiten.Image, lines []string) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	panelH := float32(len(lines)*overlayLineHeight + overlayPadding*2)
	vector.DrawFilledRect(screen, 0, 0, w, panelH, color.RGBA{0, 0, 0, 160}, false)

	if o.face == nil {
		ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), overlayPadding, overlayPadding)
	} else {
		for i, line := range lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(overlayPadding, float64(overlayPadding+i*overlayLineHeight))
			op.ColorScale.ScaleWithColor(color.RGBA{240, 240, 240, 255})
			text.Draw(screen, line, o.face, op)
		}
	}

	px := w - previewSize - overlayPadding
	py := h - previewSize - overlayPadding
	vector.StrokeRect(screen, px-1, py-1, previewSize+2, previewSize+2, 1, color.RGBA{255, 255, 255, 200}, false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(px), float64(py))
	screen.DrawImage(o.preview, op)
}
