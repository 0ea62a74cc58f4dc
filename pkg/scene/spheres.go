package scene

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/geometry"
	"github.com/calebgardner/weekend-raytracer/pkg/material"
	"github.com/calebgardner/weekend-raytracer/pkg/renderer"
)

// defaultEarthTexture is where the Earth scene looks for its map
const defaultEarthTexture = "textures/earthmap.jpg"

// RandomSpheres is the book-cover scene: a checkered ground plane, a grid
// of small random spheres (diffuse ones bounce upward during the shutter
// interval) and three large feature spheres.
func RandomSpheres() (*Scene, error) {
	rnd := newRand()
	world := geometry.NewWorld()

	ground := material.NewTexturedLambertian(material.NewSolidChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a <= 11; a++ {
		for b := -11; b <= 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*rnd.Float64(),
				0.2,
				float64(b)+0.9*rnd.Float64(),
			)

			switch chooseMat := rnd.Float64(); {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(0, 1, rnd).MultiplyVec(core.RandomVec3(0, 1, rnd))
				centerTo := center.Add(core.NewVec3(0, 0.5*rnd.Float64(), 0))
				world.Add(geometry.NewMovingSphere(
					center, centerTo, TimeFrom, TimeTo, 0.2,
					material.NewLambertian(albedo),
				))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(0.4, 1, rnd)
				fuzz := 0.5 * rnd.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		World:      geometry.NewBVH(world.Objects, TimeFrom, TimeTo, rnd),
		Background: renderer.NewSkyBackground(),
		Camera: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20,
			Aperture:      0.1,
			FocusDistance: 10,
			ShutterOpen:   TimeFrom,
			ShutterClose:  TimeTo,
		},
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
	}, nil
}

// DielectricSpheres is the three-sphere material study: a diffuse sphere
// flanked by a hollow glass shell (an outer glass sphere with a
// negative-radius inner sphere of the same material) and a polished metal
// sphere, resting on a yellow ground sphere.
func DielectricSpheres() (*Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal),
	)

	return &Scene{
		World:      world,
		Background: renderer.NewSkyBackground(),
		Camera: renderer.CameraConfig{
			LookFrom: core.NewVec3(0, 0, 0),
			LookAt:   core.NewVec3(0, 0, -1),
			VUp:      core.NewVec3(0, 1, 0),
			VFov:     90,
		},
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
	}, nil
}

// TwoSpheres is a pair of large checkered spheres
func TwoSpheres() (*Scene, error) {
	checker := material.NewTexturedLambertian(material.NewSolidChecker(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return &Scene{
		World:      world,
		Background: renderer.NewSkyBackground(),
		Camera: renderer.CameraConfig{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFov:     20,
		},
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
	}, nil
}

// TwoPerlinSpheres shows the marble noise texture on a ground sphere and a
// smaller sphere resting on it
func TwoPerlinSpheres() (*Scene, error) {
	rnd := newRand()
	marble := material.NewTexturedLambertian(material.NewNoise(4.0, rnd))

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		World:      world,
		Background: renderer.NewSkyBackground(),
		Camera: renderer.CameraConfig{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFov:     20,
		},
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
	}, nil
}

// Earth maps an equirectangular image texture onto a globe
func Earth() (*Scene, error) {
	earthTexture, err := material.LoadImageTexture(defaultEarthTexture)
	if err != nil {
		return nil, err
	}

	globe := geometry.NewSphere(
		core.NewVec3(0, 0, 0), 2,
		material.NewTexturedLambertian(earthTexture),
	)

	return &Scene{
		World:      geometry.NewWorld(globe),
		Background: renderer.NewSkyBackground(),
		Camera: renderer.CameraConfig{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFov:     20,
		},
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
	}, nil
}

// SimpleLight is two marble spheres lit by a single rectangular area light
// against a black background
func SimpleLight() (*Scene, error) {
	rnd := newRand()
	marble := material.NewTexturedLambertian(material.NewNoise(4.0, rnd))

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		// Brighter than (1,1,1) so the light can illuminate the scene
		geometry.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	)

	return &Scene{
		World:      world,
		Background: renderer.NewSolidBackground(core.Vec3{}),
		Camera: renderer.CameraConfig{
			LookFrom: core.NewVec3(26, 3, 6),
			LookAt:   core.NewVec3(0, 2, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFov:     20,
		},
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 400,
	}, nil
}
