// Package main writes the UV debug texture to a PNG file.
//
// Usage:
//
//	go run ./tools/export_debug_texture -out assets/uv_debug.png -scale 32
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/1siamBot/hexgrid/engine/render3d"
	xdraw "golang.org/x/image/draw"
)

func main() {
	out := flag.String("out", filepath.Join("assets", "uv_debug.png"), "output PNG path")
	scale := flag.Int("scale", 32, "pixels per texel")
	flag.Parse()

	if *scale < 1 {
		fmt.Fprintf(os.Stderr, "scale must be at least 1, got %d\n", *scale)
		os.Exit(1)
	}

	src := render3d.UVDebugImage()
	size := render3d.DebugTextureSize * *scale
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, size, size)
}
