package render3d

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps batches below the uint16 index limit
const maxBatchVertices = 65000

// DrawItem is one mesh instance queued for a frame
type DrawItem struct {
	Mesh    *Mesh3D
	Model   Mat4
	Texture *ebiten.Image
	Tint    Color3
	Unlit   bool

	depth float64
}

// Renderer3D projects lit, textured meshes through a Camera3D and
// rasterizes them with DrawTriangles. Items are painter-sorted, there is
// no depth buffer.
type Renderer3D struct {
	Camera   *Camera3D
	Lighting LightingSetup

	// Background clear color
	ClearColor color.RGBA

	queue    []DrawItem
	vertices []ebiten.Vertex
	indices  []uint16

	// Stats from the last Flush
	DrawnTriangles  int
	CulledTriangles int
}

// NewRenderer3D creates the 3D renderer
func NewRenderer3D(screenW, screenH int) *Renderer3D {
	return &Renderer3D{
		Camera:     NewCamera3D(screenW, screenH),
		Lighting:   DefaultLighting(),
		ClearColor: color.RGBA{20, 20, 30, 255},
	}
}

// Submit queues a mesh instance for the next Flush
func (r *Renderer3D) Submit(item DrawItem) {
	if item.Mesh == nil || item.Texture == nil || len(item.Mesh.Indices) == 0 {
		return
	}
	origin := item.Model.TransformPoint(V3(0, 0, 0))
	item.depth = r.Camera.ViewDepth(origin)
	r.queue = append(r.queue, item)
}

// Queued returns the number of items waiting for Flush
func (r *Renderer3D) Queued() int { return len(r.queue) }

// Flush clears target, then draws every queued item back to front
func (r *Renderer3D) Flush(target *ebiten.Image) {
	b := target.Bounds()
	r.Camera.SetViewport(b.Dx(), b.Dy())
	target.Fill(r.ClearColor)

	sort.SliceStable(r.queue, func(i, j int) bool {
		return r.queue[i].depth > r.queue[j].depth
	})

	r.DrawnTriangles, r.CulledTriangles = 0, 0
	var batchTex *ebiten.Image
	for i := range r.queue {
		item := &r.queue[i]
		if batchTex != nil && item.Texture != batchTex {
			r.flushBatch(target, batchTex)
		}
		batchTex = item.Texture
		r.appendMesh(target, item)
	}
	if batchTex != nil {
		r.flushBatch(target, batchTex)
	}
	r.queue = r.queue[:0]
}

func (r *Renderer3D) flushBatch(target, tex *ebiten.Image) {
	if len(r.vertices) > 0 {
		target.DrawTriangles(r.vertices, r.indices, tex, &ebiten.DrawTrianglesOptions{
			Filter: ebiten.FilterNearest,
		})
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

// appendMesh projects, lights and culls one item into the current batch
func (r *Renderer3D) appendMesh(target *ebiten.Image, item *DrawItem) {
	mesh := item.Mesh
	tb := item.Texture.Bounds()
	tw, th := float64(tb.Dx()), float64(tb.Dy())

	for t := 0; t < mesh.TriangleCount(); t++ {
		tri := mesh.Triangle(t)
		var vs [3]ebiten.Vertex
		visible := true

		for i := 0; i < 3; i++ {
			v := tri[i]
			pos := item.Model.TransformPoint(v.Pos)
			sx, sy, _, ok := r.Camera.Project(pos)
			if !ok {
				visible = false
				break
			}

			lit := item.Tint
			if !item.Unlit {
				n := item.Model.TransformDir(v.Normal).Normalize()
				lit = r.Lighting.ComputeLighting(pos, n, item.Tint)
			}

			vs[i] = ebiten.Vertex{
				DstX:   float32(sx),
				DstY:   float32(sy),
				SrcX:   float32(float64(tb.Min.X) + v.UV.X*tw),
				SrcY:   float32(float64(tb.Min.Y) + v.UV.Y*th),
				ColorR: float32(lit.R),
				ColorG: float32(lit.G),
				ColorB: float32(lit.B),
				ColorA: 1,
			}
		}
		if !visible {
			r.CulledTriangles++
			continue
		}

		// Back-face culling: front faces are counter-clockwise in world
		// space, which is a negative cross product in Y-down screen space
		ax := vs[1].DstX - vs[0].DstX
		ay := vs[1].DstY - vs[0].DstY
		bx := vs[2].DstX - vs[0].DstX
		by := vs[2].DstY - vs[0].DstY
		if ax*by-ay*bx > -0.5 {
			r.CulledTriangles++
			continue
		}

		if len(r.vertices)+3 > maxBatchVertices {
			r.flushBatch(target, item.Texture)
		}
		base := uint16(len(r.vertices))
		r.vertices = append(r.vertices, vs[0], vs[1], vs[2])
		r.indices = append(r.indices, base, base+1, base+2)
		r.DrawnTriangles++
	}
}
