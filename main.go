package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/calebgardner/weekend-raytracer/log"
	"github.com/calebgardner/weekend-raytracer/pkg/core"
	"github.com/calebgardner/weekend-raytracer/pkg/renderer"
	"github.com/calebgardner/weekend-raytracer/pkg/scene"
)

var logger = log.New("main")

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "weekend-raytracer"
	app.Usage = "render scenes with an offline Monte-Carlo path tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.Bool("vv") {
			log.SetLevel(log.Debug)
		} else if ctx.Bool("v") {
			log.SetLevel(log.Info)
		}
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Build the selected scene, trace it with the configured sample count and
bounce depth, and write the result as a PPM or PNG image. The output
format is chosen by the output file extension.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random-spheres",
					Usage: "scene to render (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels (default: scene preset)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (default: scene preset)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 50,
					Usage: "maximum ray bounce depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "parallel render workers (default: all CPUs)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.ppm",
					Usage: "output image filename (.ppm or .png)",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the available scenes",
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func renderScene(ctx *cli.Context) error {
	name := ctx.String("scene")
	builder, ok := scene.Builders[name]
	if !ok {
		return fmt.Errorf("unknown scene %q; run list-scenes for options", name)
	}

	logger.Noticef("building scene %q", name)
	sc, err := builder()
	if err != nil {
		return fmt.Errorf("build scene %q: %w", name, err)
	}

	width := sc.ImageWidth
	if ctx.Int("width") > 0 {
		width = ctx.Int("width")
	}
	height := int(float64(width) / sc.AspectRatio)

	samples := sc.SamplesPerPixel
	if ctx.Int("spp") > 0 {
		samples = ctx.Int("spp")
	}

	camera := sc.Camera
	camera.AspectRatio = sc.AspectRatio

	opts := renderer.DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.SamplesPerPixel = samples
	opts.MaxDepth = ctx.Int("max-depth")
	opts.Workers = ctx.Int("workers")

	r := renderer.New(sc.World, renderer.NewCamera(camera), sc.Background, opts)
	framebuffer, stats := r.Render()

	outPath := ctx.String("out")
	if err := writeImage(outPath, framebuffer, width, height); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Noticef("wrote %s", outPath)

	fmt.Print(stats.Table())
	return nil
}

func writeImage(path string, framebuffer []core.Vec3, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return renderer.WritePNG(f, framebuffer, width, height)
	default:
		return renderer.WritePPM(f, framebuffer, width, height)
	}
}

func listScenes(ctx *cli.Context) error {
	for _, name := range scene.Names() {
		fmt.Println(name)
	}
	return nil
}
