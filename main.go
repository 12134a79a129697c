package main

import (
	"os"

	"github.com/df07/go-scene-raytracer/cmd"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raytracer")

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-scene-raytracer"
	app.Usage = "render text scene descriptions of spheres and triangles"
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
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG image",
			Description: `
Load a scene file (or builtin:demo), cast one primary ray through the center of
every pixel and write the flat-shaded result as a PNG image.

Defaults can be set with RAYTRACER_WORKERS, RAYTRACER_MODE, RAYTRACER_TMAX,
RAYTRACER_LOG_LEVEL and RAYTRACER_OUTPUT; flags take precedence.`,
			ArgsUsage: "scene_file|builtin:demo",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mode, m",
					Value: "parallel",
					Usage: "execution mode: parallel or sequential",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of render goroutines in parallel mode (0 = number of CPUs)",
				},
				cli.Float64Flag{
					Name:  "tmax",
					Value: 10000,
					Usage: "maximum hit distance for primary rays",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (defaults to the scene's output directive)",
				},
				cli.BoolFlag{
					Name:  "progress, p",
					Usage: "log render progress",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:      "info",
			Usage:     "print the cameras, primitives and settings of a scene",
			ArgsUsage: "scene_file|builtin:demo",
			Action:    cmd.SceneInfo,
		},
		{
			Name:      "list",
			Usage:     "list scene files and their header metadata",
			ArgsUsage: "[dir]",
			Action:    cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
