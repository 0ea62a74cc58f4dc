package core

import (
	"math"
	"math/rand"
)

const perlinPointCount = 256

// Perlin is a repeatable gradient-noise generator: it maps a 3D point to a
// randomish value in [-1, 1], with nearby points mapping to similar values.
// Built from a table of random unit gradients hashed through three shuffled
// permutation tables, interpolated with a Hermite cubic.
type Perlin struct {
	permX      [perlinPointCount]int
	permY      [perlinPointCount]int
	permZ      [perlinPointCount]int
	randomVecs [perlinPointCount]Vec3
}

// NewPerlin creates a Perlin generator using the given random source
func NewPerlin(rnd *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randomVecs {
		p.randomVecs[i] = RandomVec3(-1, 1, rnd).Normalize()
	}
	fillPerm(&p.permX, rnd)
	fillPerm(&p.permY, rnd)
	fillPerm(&p.permZ, rnd)
	return p
}

func fillPerm(perm *[perlinPointCount]int, rnd *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	rnd.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
}

// Noise returns the noise value at a point, in [-1, 1]
func (p *Perlin) Noise(point Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	// Hermite cubic smoothing of the interpolation weights
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	const mask = perlinPointCount - 1
	result := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				index := p.permX[(i+di)&mask] ^ p.permY[(j+dj)&mask] ^ p.permZ[(k+dk)&mask]
				gradient := p.randomVecs[index]
				weight := Vec3{X: u - float64(di), Y: v - float64(dj), Z: w - float64(dk)}

				result += lerpWeight(uu, float64(di)) *
					lerpWeight(vv, float64(dj)) *
					lerpWeight(ww, float64(dk)) *
					gradient.Dot(weight)
			}
		}
	}
	return result
}

func lerpWeight(t, x float64) float64 {
	return t*x + (1-t)*(1-x)
}

// Turbulence sums depth octaves of noise, halving the amplitude and
// doubling the frequency each octave, and returns the absolute value.
func (p *Perlin) Turbulence(point Vec3, depth int) float64 {
	result := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		result += weight * p.Noise(point)
		point = point.Multiply(2)
		weight *= 0.5
	}
	return math.Abs(result)
}
