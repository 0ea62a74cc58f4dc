package renderer

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// Background supplies the radiance for rays that miss every object
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground is a constant background color
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color returns the constant background color
func (b *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// GradientBackground blends between two colors based on the ray's
// direction: the unit direction's Y component is remapped from [-1, 1] to
// [0, 1] and used to lerp bottom to top.
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSkyBackground creates the default sky gradient: white at the horizon
// blending into blue overhead
func NewSkyBackground() *GradientBackground {
	return &GradientBackground{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color lerps between the bottom and top colors
func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
