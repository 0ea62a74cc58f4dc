package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/calebgardner/weekend-raytracer/pkg/core"
)

// FormatChannel maps one linear color channel to an 8-bit value: negative
// values clamp to zero, the channel is gamma-corrected with a square root,
// clamped to 0.999 and scaled to the 0-255 range.
func FormatChannel(value float64) int {
	if value < 0 {
		value = 0
	}
	value = math.Sqrt(value)
	if value > 0.999 {
		value = 0.999
	}
	return int(math.Round(255 * value))
}

// FormatColor renders a linear color as a "R G B" integer triplet
func FormatColor(c core.Vec3) string {
	return fmt.Sprintf("%d %d %d", FormatChannel(c.X), FormatChannel(c.Y), FormatChannel(c.Z))
}

// WritePPM writes a framebuffer as a plain-text PPM image: a "P3" header
// with dimensions and the 255 max channel value, then one gamma-corrected
// integer triplet per pixel in row-major, top-to-bottom order.
func WritePPM(w io.Writer, framebuffer []core.Vec3, width, height int) error {
	if len(framebuffer) != width*height {
		return fmt.Errorf("framebuffer has %d pixels, want %d", len(framebuffer), width*height)
	}

	buf := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for _, pixel := range framebuffer {
		if _, err := fmt.Fprintln(buf, FormatColor(pixel)); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WritePNG writes a framebuffer as a PNG image with the same gamma and
// clamping treatment as the PPM writer
func WritePNG(w io.Writer, framebuffer []core.Vec3, width, height int) error {
	if len(framebuffer) != width*height {
		return fmt.Errorf("framebuffer has %d pixels, want %d", len(framebuffer), width*height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixel := framebuffer[j*width+i]
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(FormatChannel(pixel.X)),
				G: uint8(FormatChannel(pixel.Y)),
				B: uint8(FormatChannel(pixel.Z)),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}
