package scene

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/geometry"
	"github.com/calebgardner/weekend-raytracer/pkg/material"
	"github.com/calebgardner/weekend-raytracer/pkg/renderer"
)

// FinalScene exercises every feature at once: a BVH of ground blocks of
// random height, a motion-blurred sphere, glass and fuzzy metal spheres, a
// blue subsurface sphere (glass boundary filled with dense medium), a thin
// global mist, an image-textured globe, a marble sphere and a rotated,
// translated BVH cluster of a thousand small spheres.
func FinalScene() (*Scene, error) {
	rnd := newRand()

	// Ground: a 20x20 grid of blocks with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxWidth = 100.0
	groundBlocks := make([]core.Hittable, 0, 400)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			minPoint := core.NewVec3(-1000+float64(i)*boxWidth, 0, -1000+float64(j)*boxWidth)
			maxPoint := minPoint.Add(core.NewVec3(boxWidth, 1+100*rnd.Float64(), boxWidth))
			groundBlocks = append(groundBlocks, geometry.NewBlock(minPoint, maxPoint, ground))
		}
	}

	world := geometry.NewWorld(
		geometry.NewBVH(groundBlocks, TimeFrom, TimeTo, rnd),
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	)

	// Motion-blurred diffuse sphere
	centerFrom := core.NewVec3(400, 400, 200)
	centerTo := centerFrom.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(
		centerFrom, centerTo, TimeFrom, TimeTo, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)),
	))

	glass := material.NewDielectric(1.5)
	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Blue subsurface sphere: a glass boundary filled with a dense medium
	blueBoundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, glass)
	world.Add(blueBoundary)
	world.Add(geometry.NewConstantMedium(blueBoundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin mist filling the whole scene
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, glass)
	world.Add(geometry.NewConstantMedium(mistBoundary, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	earthTexture, err := material.LoadImageTexture(defaultEarthTexture)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture)))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoise(0.1, rnd))))

	// A cluster of a thousand small spheres, rotated and translated as one
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]core.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(0, 165, rnd), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBVH(cluster, TimeFrom, TimeTo, rnd),
			15, TimeFrom, TimeTo,
		),
		core.NewVec3(-100, 270, 395),
	))

	return &Scene{
		World:      world,
		Background: renderer.NewSolidBackground(core.Vec3{}),
		Camera: renderer.CameraConfig{
			LookFrom:     core.NewVec3(478, 278, -600),
			LookAt:       core.NewVec3(278, 278, 0),
			VUp:          core.NewVec3(0, 1, 0),
			VFov:         40,
			ShutterOpen:  TimeFrom,
			ShutterClose: TimeTo,
		},
		ImageWidth:      800,
		AspectRatio:     1.0,
		SamplesPerPixel: 500,
	}, nil
}
