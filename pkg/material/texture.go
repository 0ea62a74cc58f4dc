package material

import (
	"math"
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// SolidColor is a texture with one constant color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker is a 3D checkerboard that alternates between two sub-textures
// based on the sign of sin(10x)*sin(10y)*sin(10z) at the point. Because it
// is evaluated in 3D space it is independent of surface parameterization.
type Checker struct {
	Odd  core.Texture
	Even core.Texture
}

// NewChecker creates a checker texture from two sub-textures
func NewChecker(odd, even core.Texture) *Checker {
	return &Checker{Odd: odd, Even: even}
}

// NewSolidChecker creates a checker texture from two solid colors
func NewSolidChecker(odd, even core.Vec3) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even))
}

// Value selects the odd sub-texture where the sine product is negative and
// the even one elsewhere
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// turbulenceDepth is the number of noise octaves summed by the marble
// pattern
const turbulenceDepth = 7

// Noise is a grayscale marble texture: multi-octave Perlin turbulence
// phase-shifts a sine wave along Z.
type Noise struct {
	perlin *core.Perlin
	Scale  float64
}

// NewNoise creates a noise texture with the given point scale
func NewNoise(scale float64, rnd *rand.Rand) *Noise {
	return &Noise{
		perlin: core.NewPerlin(rnd),
		Scale:  scale,
	}
}

// Value folds turbulence into a sine-based marble pattern mapped to
// grayscale in [0, 1]
func (n *Noise) Value(u, v float64, point core.Vec3) core.Vec3 {
	phase := 10 * n.perlin.Turbulence(point, turbulenceDepth)
	value := 0.5 * (1 + math.Sin(n.Scale*point.Z+phase))
	return core.NewVec3(value, value, value)
}
