package scene

import (
	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/geometry"
	"github.com/calebgardner/weekend-raytracer/pkg/material"
	"github.com/calebgardner/weekend-raytracer/pkg/renderer"
)

// cornellWalls builds the five walls of a 555-unit Cornell box plus the
// ceiling light
func cornellWalls(light core.Material, lightX0, lightX1, lightZ0, lightZ1 float64) []core.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []core.Hittable{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(lightX0, lightX1, lightZ0, lightZ1, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	}
}

// cornellCamera is the standard Cornell box viewpoint
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom: core.NewVec3(278, 278, -800),
		LookAt:   core.NewVec3(278, 278, 0),
		VUp:      core.NewVec3(0, 1, 0),
		VFov:     40,
	}
}

// CornellBox is the classic closed box with two rotated white blocks lit
// by a ceiling light
func CornellBox() (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	tallBlock := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15, TimeFrom, TimeTo,
		),
		core.NewVec3(265, 0, 295),
	)
	shortBlock := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			-18, TimeFrom, TimeTo,
		),
		core.NewVec3(130, 0, 65),
	)

	world := geometry.NewWorld(cornellWalls(light, 213, 343, 227, 332)...)
	world.Add(tallBlock)
	world.Add(shortBlock)

	return &Scene{
		World:           world,
		Background:      renderer.NewSolidBackground(core.Vec3{}),
		Camera:          cornellCamera(),
		ImageWidth:      600,
		AspectRatio:     1.0,
		SamplesPerPixel: 200,
	}, nil
}

// CornellSmoke replaces the Cornell box blocks with participating media: a
// dark smoke block and a white fog block
func CornellSmoke() (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	smokeBlock := geometry.NewConstantMedium(
		geometry.NewTranslate(
			geometry.NewRotateY(
				geometry.NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
				15, TimeFrom, TimeTo,
			),
			core.NewVec3(265, 0, 295),
		),
		0.01,
		material.NewIsotropic(core.NewVec3(0, 0, 0)),
	)
	fogBlock := geometry.NewConstantMedium(
		geometry.NewTranslate(
			geometry.NewRotateY(
				geometry.NewBlock(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
				-18, TimeFrom, TimeTo,
			),
			core.NewVec3(130, 0, 65),
		),
		0.01,
		material.NewIsotropic(core.NewVec3(1, 1, 1)),
	)

	world := geometry.NewWorld(cornellWalls(light, 113, 443, 127, 432)...)
	world.Add(smokeBlock)
	world.Add(fogBlock)

	return &Scene{
		World:           world,
		Background:      renderer.NewSolidBackground(core.Vec3{}),
		Camera:          cornellCamera(),
		ImageWidth:      600,
		AspectRatio:     1.0,
		SamplesPerPixel: 200,
	}, nil
}
