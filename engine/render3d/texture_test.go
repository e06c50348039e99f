package render3d

import (
	"bytes"
	"testing"
)

func TestUVDebugPixels_Size(t *testing.T) {
	pix := UVDebugPixels()
	if len(pix) != DebugTextureSize*DebugTextureSize*4 {
		t.Fatalf("len = %d, want %d", len(pix), DebugTextureSize*DebugTextureSize*4)
	}
	if !bytes.Equal(pix[:32], uvDebugPalette[:]) {
		t.Fatalf("row 0 = %v, want the palette", pix[:32])
	}
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, pix[i])
		}
	}
}

func TestUVDebugPixels_RowsRotateRight(t *testing.T) {
	const stride = DebugTextureSize * 4
	pix := UVDebugPixels()
	for y := 0; y+1 < DebugTextureSize; y++ {
		row := append([]byte(nil), pix[y*stride:(y+1)*stride]...)
		next := pix[(y+1)*stride : (y+2)*stride]
		want := append(append([]byte(nil), row[stride-4:]...), row[:stride-4]...)
		if !bytes.Equal(next, want) {
			t.Fatalf("row %d is not row %d rotated right by one pixel", y+1, y)
		}
	}
}

func TestUVDebugPixels_Deterministic(t *testing.T) {
	if !bytes.Equal(UVDebugPixels(), UVDebugPixels()) {
		t.Fatal("debug texture differs between calls")
	}
}

func TestUVDebugImage(t *testing.T) {
	img := UVDebugImage()
	if b := img.Bounds(); b.Dx() != DebugTextureSize || b.Dy() != DebugTextureSize {
		t.Fatalf("bounds = %v", b)
	}
	// Diagonals share a color
	if img.RGBAAt(0, 0) != img.RGBAAt(1, 1) || img.RGBAAt(3, 2) != img.RGBAAt(4, 3) {
		t.Fatal("expected diagonal color bands")
	}
}

func TestRotateRight(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6}
	rotateRight(b, 2)
	if !bytes.Equal(b, []byte{5, 6, 1, 2, 3, 4}) {
		t.Fatalf("got %v", b)
	}
	rotateRight(b, 6)
	if !bytes.Equal(b, []byte{5, 6, 1, 2, 3, 4}) {
		t.Fatalf("full rotation changed the slice: %v", b)
	}
}
