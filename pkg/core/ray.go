package core

// Ray represents a ray with an origin, a direction and a time. The time is
// the instant within the camera's shutter interval at which the ray was
// cast; moving geometry evaluates its position at that instant.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray. A zero-length direction is a contract
// violation, not a recoverable condition, so it panics.
func NewRay(origin, direction Vec3, time float64) Ray {
	if direction.LengthSquared() == 0 {
		panic("core: ray direction must be non-zero")
	}
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray: origin + t*direction
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
