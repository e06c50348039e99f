package render3d

import "math"

// PointLight emits from a position and fades out to zero at Range
type PointLight struct {
	Position  Vec3
	Color     Color3
	Intensity float64
	Range     float64
}

// AmbientLight provides fill lighting
type AmbientLight struct {
	Color     Color3
	Intensity float64
}

// LightingSetup contains the scene lighting
type LightingSetup struct {
	Point   PointLight
	Ambient AmbientLight
}

// DefaultLighting returns a single white point light above the grid
func DefaultLighting() LightingSetup {
	return LightingSetup{
		Point: PointLight{
			Position:  V3(8, 16, 8),
			Color:     Color3{1.0, 0.98, 0.92},
			Intensity: 1.0,
			Range:     100,
		},
		Ambient: AmbientLight{
			Color:     Color3{0.75, 0.78, 0.85},
			Intensity: 0.35,
		},
	}
}

// Attenuation is the point light's distance falloff at pos, 1 at the
// light and 0 at or beyond Range
func (pl *PointLight) Attenuation(pos Vec3) float64 {
	if pl.Range <= 0 {
		return 0
	}
	d := pos.Sub(pl.Position).Len()
	ratio := d / pl.Range
	w := clamp01(1 - ratio*ratio*ratio*ratio)
	return w * w
}

// ComputeLighting calculates the lit color for a surface point
func (ls *LightingSetup) ComputeLighting(pos, normal Vec3, baseColor Color3) Color3 {
	ambient := baseColor.Mul(ls.Ambient.Color).Scale(ls.Ambient.Intensity)

	// Diffuse (Lambert)
	toLight := ls.Point.Position.Sub(pos).Normalize()
	ndotl := math.Max(0, normal.Dot(toLight))
	atten := ls.Point.Attenuation(pos)
	diffuse := baseColor.Mul(ls.Point.Color).Scale(ndotl * atten * ls.Point.Intensity)

	return ambient.Add(diffuse).Clamp()
}
