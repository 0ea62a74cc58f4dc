package material

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// ImageTexture looks colors up in a decoded image. Pixels are stored
// row-major with the origin at the top-left, so V is flipped on lookup.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Pixels[y*Width + x]
}

// NewImageTexture creates an image texture from a decoded pixel buffer
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// LoadImageTexture decodes a PNG or JPEG file into an image texture. A
// decoding failure is returned to the scene-construction caller; the
// renderer never runs with a missing texture.
func LoadImageTexture(path string) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImageTexture(width, height, pixels), nil
}

// Value maps (u, v) to pixel coordinates, flipping V to match image row
// order and clamping to stay in bounds
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	u = clamp01(u)
	v = 1.0 - clamp01(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
