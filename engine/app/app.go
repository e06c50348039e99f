// Package app wires the hex grid, renderer and input into an ebiten game.
// Everything is configured through Config and built once by Setup.
package app

import (
	"image/color"
	"log"
	"math"

	"github.com/1siamBot/hexgrid/engine/core"
	"github.com/1siamBot/hexgrid/engine/input"
	"github.com/1siamBot/hexgrid/engine/render3d"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// App implements ebiten.Game
type App struct {
	cfg      Config
	scene    *Scene
	renderer *render3d.Renderer3D
	input    *input.InputState
	bus      *core.EventBus
	overlay  *Overlay

	// Offscreen scene image, nil when rendering straight to the window
	target *ebiten.Image
}

// Setup validates cfg and runs the single initialization pass
func Setup(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scene, err := buildScene(cfg, sceneTextures{
		debug: render3d.NewUVDebugTexture(),
		solid: render3d.NewSolidTexture(),
	})
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		scene:    scene,
		renderer: newRenderer(cfg),
		input:    input.NewInputState(),
		bus:      core.NewEventBus(),
	}
	if cfg.RenderTarget.Enabled {
		a.target = ebiten.NewImage(cfg.RenderTarget.Width, cfg.RenderTarget.Height)
	}
	if cfg.Overlay {
		a.overlay = NewOverlay()
	}

	a.bus.On(core.EvtMouseButtonPressed, a.onMousePressed)
	a.bus.On(core.EvtGridSpawned, func(e core.Event) {
		s := e.Payload.(core.GridSpawned)
		log.Printf("%s: spawned %d tiles sharing %d mesh(es) and %d material(s), grid %s",
			cfg.Revision, s.Tiles, s.Meshes, s.Materials, scene.Grid.ShortChecksum())
	})
	a.bus.Emit(core.Event{Type: core.EvtGridSpawned, Payload: core.GridSpawned{
		Tiles:     scene.World.Len(),
		Meshes:    scene.Assets.MeshCount(),
		Materials: scene.Assets.MaterialCount(),
	}})
	a.bus.Dispatch()

	return a, nil
}

func newRenderer(cfg Config) *render3d.Renderer3D {
	w, h := cfg.Window.Width, cfg.Window.Height
	if cfg.RenderTarget.Enabled {
		w, h = cfg.RenderTarget.Width, cfg.RenderTarget.Height
	}
	r := render3d.NewRenderer3D(w, h)
	r.Camera.LookAt(cfg.Camera.Eye, cfg.Camera.Target)
	r.Camera.FovY = cfg.Camera.FovY * math.Pi / 180
	r.Lighting.Point.Position = cfg.Light.Position
	r.Lighting.Point.Intensity = cfg.Light.Intensity
	r.Lighting.Point.Range = cfg.Light.Range
	r.Lighting.Ambient.Intensity = cfg.Light.Ambient
	return r
}

// Scene returns the entities built by Setup
func (a *App) Scene() *Scene { return a.scene }

// onMousePressed consumes button presses. The grid does not react to
// input, the press is only logged in debug mode.
func (a *App) onMousePressed(e core.Event) {
	if !a.cfg.Debug {
		return
	}
	if m, ok := e.Payload.(input.MouseEvent); ok {
		log.Printf("frame %d: %s button pressed at (%d, %d)", e.Frame, input.ButtonName(m.Button), m.X, m.Y)
	}
}

func (a *App) Update() error {
	a.input.Update()
	a.input.Emit(a.bus)
	a.bus.Dispatch()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.target == nil {
		a.drawScene(screen)
	} else {
		a.drawScene(a.target)
		screen.Fill(color.RGBA{12, 12, 18, 255})
		a.composite(screen)
	}

	if a.overlay != nil {
		lines := HUDLines(a.cfg, a.scene, ebiten.ActualFPS(), a.renderer.DrawnTriangles, a.renderer.CulledTriangles)
		a.overlay.Draw(screen, lines)
	}
}

// drawScene submits every tile and flushes the renderer into dst
func (a *App) drawScene(dst *ebiten.Image) {
	assets := a.scene.Assets
	a.scene.World.Each(func(e *core.Entity) {
		mesh, ok := assets.Mesh(e.Mesh)
		if !ok {
			return
		}
		mat, ok := assets.Material(e.Material)
		if !ok {
			return
		}
		tex, ok := assets.Texture(mat.Texture)
		if !ok {
			return
		}
		a.renderer.Submit(render3d.DrawItem{
			Mesh:    mesh,
			Model:   e.Transform.Matrix(),
			Texture: tex,
			Tint:    mat.Tint,
			Unlit:   mat.Unlit,
		})
	})
	a.renderer.Flush(dst)
}

// composite draws the offscreen target centered in the window, scaled to
// fit with a margin, on a framed panel
func (a *App) composite(screen *ebiten.Image) {
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	tw, th := float64(a.target.Bounds().Dx()), float64(a.target.Bounds().Dy())
	x, y, scale := fitRect(tw, th, sw, sh, 0.9)

	pad := float32(6)
	vector.DrawFilledRect(screen, float32(x)-pad, float32(y)-pad,
		float32(tw*scale)+2*pad, float32(th*scale)+2*pad, color.RGBA{60, 60, 80, 255}, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.target, op)
}

// fitRect scales a w x h rectangle to fill at most fill of the screen on
// either axis, keeping its aspect, and centers it
func fitRect(w, h, sw, sh, fill float64) (x, y, scale float64) {
	scale = math.Min(sw*fill/w, sh*fill/h)
	x = (sw - w*scale) / 2
	y = (sh - h*scale) / 2
	return x, y, scale
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Run builds the app from cfg, opens the window and blocks until it
// closes
func Run(cfg Config) error {
	lib, err := cfg.Renderer.GraphicsLibrary()
	if err != nil {
		return err
	}
	a, err := Setup(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	return ebiten.RunGameWithOptions(a, &ebiten.RunGameOptions{GraphicsLibrary: lib})
}
