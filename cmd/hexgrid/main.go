// Command hexgrid renders a hexagonal tile grid in 3D.
//
// Usage:
//
//	go run ./cmd/hexgrid -revision biomecolors -seed 42
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/1siamBot/hexgrid/engine/app"
)

func main() {
	revision := flag.String("revision", app.RevisionBiomes, "preset to run: "+strings.Join(app.Revisions(), ", "))
	seed := flag.Int64("seed", 0, "biome seed, 0 picks one from the clock")
	backend := flag.String("backend", "auto", "graphics backend: auto, opengl, directx, metal")
	debug := flag.Bool("debug", false, "log every spawned tile and mouse press")
	flag.Parse()

	cfg, err := app.Preset(*revision)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Seed = *seed
	cfg.Renderer.Backend = *backend
	cfg.Debug = *debug

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
