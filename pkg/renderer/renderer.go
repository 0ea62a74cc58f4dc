package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/calebgardner/weekend-raytracer/pkg/core"

	"github.com/calebgardner/weekend-raytracer/log"
)

// tHitMin offsets intersection tests slightly along the ray to avoid a
// scattered ray re-hitting the surface it just left
const tHitMin = 0.001

var logger = log.New("renderer")

// Options contains rendering configuration
type Options struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Parallel row workers; 0 uses all CPUs
	Seed            int64 // Base seed for the per-worker random streams
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         runtime.NumCPU(),
		Seed:            42,
	}
}

// Renderer produces a raster image of a scene by averaging sampled light
// paths per pixel. The scene graph is built before rendering starts and is
// shared read-only by all workers.
type Renderer struct {
	world      core.Hittable
	camera     *Camera
	background Background
	opts       Options
}

// New creates a renderer for the given world, camera and background
func New(world core.Hittable, camera *Camera, background Background, opts Options) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{
		world:      world,
		camera:     camera,
		background: background,
		opts:       opts,
	}
}

// rayColor returns the radiance carried back along a ray. The recursion is
// depth-limited: truncating a bounce chain loses a little energy but
// guarantees termination.
func (r *Renderer) rayColor(ray core.Ray, depth int, rnd *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := r.world.Hit(ray, tHitMin, math.Inf(1))
	if !isHit {
		return r.background.Color(ray)
	}

	emitted := hit.Material.Emit(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, rnd)
	if !didScatter {
		return emitted
	}

	// A near-black attenuation cannot contribute perceptibly, so skip the
	// recursive work
	if scatter.Attenuation.NearZero() {
		return emitted
	}

	bounced := r.rayColor(scatter.Scattered, depth-1, rnd)
	return emitted.Add(scatter.Attenuation.MultiplyVec(bounced))
}

// renderRow fills one row of the framebuffer with averaged multi-sample
// colors. Row j=0 is the top of the image.
func (r *Renderer) renderRow(j int, framebuffer []core.Vec3, rnd *rand.Rand) {
	width, height := r.opts.Width, r.opts.Height
	samples := r.opts.SamplesPerPixel

	for i := 0; i < width; i++ {
		accum := core.Vec3{}
		for sample := 0; sample < samples; sample++ {
			// Jitter the sample position within the pixel footprint
			s := (float64(i) + rnd.Float64()) / float64(width)
			t := (float64(height-1-j) + rnd.Float64()) / float64(height)

			ray := r.camera.GetRay(s, t, rnd)
			accum = accum.Add(r.rayColor(ray, r.opts.MaxDepth, rnd))
		}
		framebuffer[j*width+i] = accum.Multiply(1.0 / float64(samples))
	}
}

// Render traces the whole image and returns the framebuffer in raster
// order (top row first, left to right), with colors un-clamped and
// un-gamma-corrected. Rows are fanned out to parallel workers; each worker
// owns an independent random stream and rows share no mutable state.
func (r *Renderer) Render() ([]core.Vec3, Stats) {
	start := time.Now()
	framebuffer := make([]core.Vec3, r.opts.Width*r.opts.Height)

	logger.Infof("rendering %dx%d, %d samples/pixel, depth %d, %d workers",
		r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, r.opts.MaxDepth, r.opts.Workers)

	rows := make(chan int, r.opts.Height)
	for j := 0; j < r.opts.Height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for worker := 0; worker < r.opts.Workers; worker++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(r.opts.Seed + int64(workerID)))
			for j := range rows {
				r.renderRow(j, framebuffer, rnd)
			}
		}(worker)
	}
	wg.Wait()

	stats := Stats{
		Width:           r.opts.Width,
		Height:          r.opts.Height,
		SamplesPerPixel: r.opts.SamplesPerPixel,
		MaxDepth:        r.opts.MaxDepth,
		Workers:         r.opts.Workers,
		Duration:        time.Since(start),
	}

	logger.Noticef("render finished in %s", stats.Duration.Round(time.Millisecond))
	return framebuffer, stats
}
