package render3d

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DebugTextureSize is the width and height of the UV debug texture
const DebugTextureSize = 8

// uvDebugPalette is one row of the debug texture, eight RGBA pixels
var uvDebugPalette = [DebugTextureSize * 4]byte{
	255, 102, 159, 255, 255, 159, 102, 255, 236, 255, 102, 255, 121, 255, 102, 255, 102, 255,
	198, 255, 102, 198, 255, 255, 121, 102, 255, 255, 236, 102, 255, 255,
}

// UVDebugPixels returns the RGBA8 pixels of the UV debug texture. Each row
// is the previous one shifted right by one pixel, which gives diagonal
// color bands that make UV seams and flips easy to spot.
func UVDebugPixels() []byte {
	const stride = DebugTextureSize * 4
	palette := uvDebugPalette
	pix := make([]byte, DebugTextureSize*stride)
	for y := 0; y < DebugTextureSize; y++ {
		copy(pix[y*stride:(y+1)*stride], palette[:])
		rotateRight(palette[:], 4)
	}
	return pix
}

func rotateRight(b []byte, n int) {
	n %= len(b)
	if n == 0 {
		return
	}
	tmp := make([]byte, n)
	copy(tmp, b[len(b)-n:])
	copy(b[n:], b[:len(b)-n])
	copy(b, tmp)
}

// UVDebugImage wraps the debug pixels as an image
func UVDebugImage() *image.RGBA {
	return &image.RGBA{
		Pix:    UVDebugPixels(),
		Stride: DebugTextureSize * 4,
		Rect:   image.Rect(0, 0, DebugTextureSize, DebugTextureSize),
	}
}

// NewUVDebugTexture uploads the debug texture to the GPU
func NewUVDebugTexture() *ebiten.Image {
	return ebiten.NewImageFromImage(UVDebugImage())
}

// NewSolidTexture returns a small white texture for untextured materials
func NewSolidTexture() *ebiten.Image {
	img := ebiten.NewImage(4, 4)
	img.Fill(color.White)
	return img
}
