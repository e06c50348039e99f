package render3d

import "math"

// Camera3D is a perspective camera looking from Eye at Target
type Camera3D struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3

	// Vertical field of view in radians
	FovY      float64
	Near, Far float64

	// Viewport dimensions in pixels
	ScreenW, ScreenH int

	// Computed matrices
	view     Mat4
	proj     Mat4
	viewProj Mat4
	dirty    bool
}

// NewCamera3D creates a camera with a 45° field of view looking down -Z
func NewCamera3D(screenW, screenH int) *Camera3D {
	return &Camera3D{
		Eye:     V3(0, 0, 10),
		Target:  V3(0, 0, 0),
		Up:      V3(0, 1, 0),
		FovY:    math.Pi / 4,
		Near:    0.1,
		Far:     1000,
		ScreenW: screenW,
		ScreenH: screenH,
		dirty:   true,
	}
}

// LookAt moves the camera to eye and points it at target
func (c *Camera3D) LookAt(eye, target Vec3) {
	c.Eye = eye
	c.Target = target
	c.dirty = true
}

// SetViewport changes the projection aspect
func (c *Camera3D) SetViewport(w, h int) {
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

func (c *Camera3D) update() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.view = Mat4LookAt(c.Eye, c.Target, c.Up)
	aspect := float64(c.ScreenW) / float64(c.ScreenH)
	c.proj = Mat4Perspective(c.FovY, aspect, c.Near, c.Far)
	c.viewProj = c.proj.Mul(c.view)
}

// ViewProj returns the combined view-projection matrix
func (c *Camera3D) ViewProj() Mat4 {
	c.update()
	return c.viewProj
}

// View returns the view matrix
func (c *Camera3D) View() Mat4 {
	c.update()
	return c.view
}

// Project converts a world point to screen pixels. depth is the NDC z
// (larger is farther). ok is false for points behind the near plane.
func (c *Camera3D) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	c.update()
	clip := c.viewProj.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if clip.W < c.Near {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W
	sx = (nx*0.5 + 0.5) * float64(c.ScreenW)
	sy = (1 - (ny*0.5 + 0.5)) * float64(c.ScreenH)
	return sx, sy, nz, true
}

// ViewDepth returns the distance of p in front of the camera along its
// view axis
func (c *Camera3D) ViewDepth(p Vec3) float64 {
	c.update()
	return -c.view.TransformPoint(p).Z
}
