package renderer

import (
	"math"
	"math/rand"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera faces
	VUp         core.Vec3 // Approximate up direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Viewport width over height
	Aperture    float64   // Lens diameter; 0 disables defocus blur
	// Distance to the plane of perfect focus; 0 derives it from the
	// look-from/look-at distance
	FocusDistance float64
	// Shutter interval ray times are drawn from; both zero defaults to [0, 1]
	ShutterOpen  float64
	ShutterClose float64
}

// Camera generates rays through a viewport using a thin-lens projection
// with defocus blur and shutter-time sampling
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	shutterOpen     float64
	shutterClose    float64
}

// NewCamera builds a camera from its configuration. The orthonormal basis
// is w = normalize(lookFrom - lookAt), u = normalize(vUp × w), v = w × u;
// the viewport spans 2*tan(fov/2) scaled by the focus distance so that
// rays converge on the focus plane.
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	shutterOpen, shutterClose := config.ShutterOpen, config.ShutterClose
	if shutterOpen == 0 && shutterClose == 0 {
		shutterClose = 1.0
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := viewportHeight * config.AspectRatio

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		shutterOpen:     shutterOpen,
		shutterClose:    shutterClose,
	}
}

// GetRay casts a ray toward viewport coordinates (s, t) in [0, 1]². The
// ray origin is offset by a random point on the lens disk for defocus
// blur, and the ray time is drawn uniformly from the shutter interval.
func (c *Camera) GetRay(s, t float64, rnd *rand.Rand) core.Ray {
	lens := core.RandomInUnitDisk(rnd).Multiply(c.lensRadius)
	offset := c.u.Multiply(lens.X).Add(c.v.Multiply(lens.Y))

	origin := c.origin.Add(offset)
	destination := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))
	time := c.shutterOpen + (c.shutterClose-c.shutterOpen)*rnd.Float64()

	return core.NewRay(origin, destination.Subtract(origin), time)
}
