package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/1siamBot/hexgrid/engine/hexgrid"
	"github.com/1siamBot/hexgrid/engine/render3d"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrInvalidWindow       = errors.New("invalid window size")
	ErrInvalidRadius       = errors.New("outer radius must be positive")
	ErrUnknownBackend      = errors.New("unknown renderer backend")
	ErrUnknownRevision     = errors.New("unknown revision")
	ErrInvalidRenderTarget = errors.New("invalid render target size")
	ErrInvalidCamera       = errors.New("invalid camera")
	ErrInvalidLight        = errors.New("invalid light")
)

// Revision names, one per prototype stage
const (
	RevisionQuads        = "quads"
	RevisionHexMesh      = "hexmesh"
	RevisionRenderTarget = "rendertarget"
	RevisionBiomes       = "biomes"
	RevisionBiomeColors  = "biomecolors"
)

// WindowConfig controls the OS window
type WindowConfig struct {
	Width, Height int
	Title         string
	Resizable     bool
	VSync         bool
}

// RendererConfig selects the graphics backend: auto, opengl, directx or
// metal
type RendererConfig struct {
	Backend string
}

var backends = map[string]ebiten.GraphicsLibrary{
	"auto":    ebiten.GraphicsLibraryAuto,
	"opengl":  ebiten.GraphicsLibraryOpenGL,
	"directx": ebiten.GraphicsLibraryDirectX,
	"metal":   ebiten.GraphicsLibraryMetal,
}

// GraphicsLibrary maps Backend to ebiten's enum. An empty Backend means
// auto.
func (r RendererConfig) GraphicsLibrary() (ebiten.GraphicsLibrary, error) {
	name := strings.ToLower(strings.TrimSpace(r.Backend))
	if name == "" {
		return ebiten.GraphicsLibraryAuto, nil
	}
	lib, ok := backends[name]
	if !ok {
		return ebiten.GraphicsLibraryAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, r.Backend)
	}
	return lib, nil
}

// BiomeMode controls tile tagging
type BiomeMode uint8

const (
	// BiomesNone leaves every tile BiomeEmpty
	BiomesNone BiomeMode = iota
	// BiomesRandom draws a biome per tile; it is not shown
	BiomesRandom
	// BiomesColors draws a biome per tile and tints the tile with it
	BiomesColors
)

// GridConfig describes the tile layout
type GridConfig struct {
	Layout      hexgrid.LayoutKind
	OuterRadius float64
	Extent      hexgrid.Extent
	Biomes      BiomeMode
}

// NewLayout builds the layout described by the config
func (g GridConfig) NewLayout() hexgrid.Layout {
	if g.Layout == hexgrid.LayoutSquare {
		return hexgrid.NewSquareLayout(g.OuterRadius)
	}
	return hexgrid.NewHexLayout(g.OuterRadius)
}

// CameraConfig positions the perspective camera. FovY is in degrees.
type CameraConfig struct {
	Eye, Target render3d.Vec3
	FovY        float64
}

// LightConfig describes the point light and ambient fill
type LightConfig struct {
	Position  render3d.Vec3
	Intensity float64
	Range     float64
	Ambient   float64
}

// RenderTargetConfig renders the scene into an offscreen image of the
// given size, which is then shown inside the window
type RenderTargetConfig struct {
	Enabled       bool
	Width, Height int
}

// Config is everything Setup needs
type Config struct {
	Revision     string
	Window       WindowConfig
	Renderer     RendererConfig
	Grid         GridConfig
	Camera       CameraConfig
	Light        LightConfig
	RenderTarget RenderTargetConfig
	Overlay      bool
	Seed         int64
	Debug        bool
}

// Validate checks the config and reports the first problem found
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if _, err := c.Renderer.GraphicsLibrary(); err != nil {
		return err
	}
	if c.Grid.OuterRadius <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, c.Grid.OuterRadius)
	}
	if err := c.Grid.Extent.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if c.Camera.Eye.ApproxEqual(c.Camera.Target, 1e-9) {
		return fmt.Errorf("%w: eye and target coincide", ErrInvalidCamera)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("%w: fov %g", ErrInvalidCamera, c.Camera.FovY)
	}
	if c.Light.Range <= 0 || c.Light.Intensity < 0 || c.Light.Ambient < 0 {
		return fmt.Errorf("%w: range %g, intensity %g, ambient %g",
			ErrInvalidLight, c.Light.Range, c.Light.Intensity, c.Light.Ambient)
	}
	if c.RenderTarget.Enabled && (c.RenderTarget.Width <= 0 || c.RenderTarget.Height <= 0) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidRenderTarget, c.RenderTarget.Width, c.RenderTarget.Height)
	}
	return nil
}

// HexOuterRadius is the tile circumradius used by every preset
const HexOuterRadius = 2.0

func baseConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:     1920,
			Height:    1080,
			Title:     "Game",
			Resizable: true,
			VSync:     true,
		},
		Renderer: RendererConfig{Backend: "auto"},
		Grid: GridConfig{
			Layout:      hexgrid.LayoutHex,
			OuterRadius: HexOuterRadius,
			Extent:      hexgrid.Square(2),
			Biomes:      BiomesNone,
		},
		Camera: CameraConfig{
			Eye:    render3d.V3(0, 6, 12),
			Target: render3d.V3(0, 1, 0),
			FovY:   45,
		},
		Light: LightConfig{
			Position:  render3d.V3(8, 16, 8),
			Intensity: 1.0,
			Range:     100,
			Ambient:   0.35,
		},
	}
}

var presets = map[string]func() Config{
	RevisionQuads: func() Config {
		c := baseConfig()
		c.Grid.Layout = hexgrid.LayoutSquare
		return c
	},
	RevisionHexMesh: baseConfig,
	RevisionRenderTarget: func() Config {
		c := baseConfig()
		c.RenderTarget = RenderTargetConfig{Enabled: true, Width: 1280, Height: 720}
		c.Overlay = true
		return c
	},
	RevisionBiomes: func() Config {
		c := baseConfig()
		c.Grid.Extent = hexgrid.Square(10)
		c.Grid.Biomes = BiomesRandom
		c.Camera.Eye = render3d.V3(0, 45, 50)
		c.Camera.Target = render3d.V3(0, 0, 0)
		c.Overlay = true
		return c
	},
	RevisionBiomeColors: func() Config {
		c := baseConfig()
		c.Grid.Extent = hexgrid.Square(10)
		c.Grid.Biomes = BiomesColors
		c.Camera.Eye = render3d.V3(0, 45, 50)
		c.Camera.Target = render3d.V3(0, 0, 0)
		c.Overlay = true
		return c
	},
}

// Preset returns the config of a named revision
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownRevision, name, strings.Join(Revisions(), ", "))
	}
	c := fn()
	c.Revision = name
	return c, nil
}

// Revisions lists the preset names in sorted order
func Revisions() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultConfig is the final revision: a biome-tagged hex grid
func DefaultConfig() Config {
	c, _ := Preset(RevisionBiomes)
	return c
}
