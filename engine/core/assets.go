package core

import (
	"github.com/1siamBot/hexgrid/engine/render3d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Handles are indices into the Assets arenas
type (
	MeshHandle     int
	TextureHandle  int
	MaterialHandle int
)

// Material describes how a mesh is shaded
type Material struct {
	Name    string
	Texture TextureHandle
	Tint    render3d.Color3
	Unlit   bool
}

// Assets owns every shared mesh, texture and material. Entities refer to
// them by handle, so one mesh serves any number of tiles.
type Assets struct {
	meshes    []*render3d.Mesh3D
	textures  []*ebiten.Image
	materials []Material
}

func NewAssets() *Assets { return &Assets{} }

func (a *Assets) AddMesh(m *render3d.Mesh3D) MeshHandle {
	a.meshes = append(a.meshes, m)
	return MeshHandle(len(a.meshes) - 1)
}

func (a *Assets) Mesh(h MeshHandle) (*render3d.Mesh3D, bool) {
	if h < 0 || int(h) >= len(a.meshes) {
		return nil, false
	}
	return a.meshes[h], true
}

func (a *Assets) AddTexture(img *ebiten.Image) TextureHandle {
	a.textures = append(a.textures, img)
	return TextureHandle(len(a.textures) - 1)
}

func (a *Assets) Texture(h TextureHandle) (*ebiten.Image, bool) {
	if h < 0 || int(h) >= len(a.textures) {
		return nil, false
	}
	return a.textures[h], true
}

func (a *Assets) AddMaterial(m Material) MaterialHandle {
	a.materials = append(a.materials, m)
	return MaterialHandle(len(a.materials) - 1)
}

func (a *Assets) Material(h MaterialHandle) (Material, bool) {
	if h < 0 || int(h) >= len(a.materials) {
		return Material{}, false
	}
	return a.materials[h], true
}

func (a *Assets) MeshCount() int     { return len(a.meshes) }
func (a *Assets) TextureCount() int  { return len(a.textures) }
func (a *Assets) MaterialCount() int { return len(a.materials) }
