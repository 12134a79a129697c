package cmd

import (
	"bytes"
	"fmt"
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print the contents of a scene.
func SceneInfo(ctx *cli.Context) error {
	if _, err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one scene argument (a scene file or %s)", builtinDemo)
	}
	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene summary\n%s", sceneSummary(sc))
	return nil
}

func formatVec(v core.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// sceneSummary renders settings, cameras and primitives as tables
func sceneSummary(sc *scene.Scene) string {
	var buf bytes.Buffer

	settings := tablewriter.NewWriter(&buf)
	settings.SetAutoFormatHeaders(false)
	settings.SetHeader([]string{"Size", "Max depth", "Output", "Cameras", "Spheres", "Triangles", "Bounds"})
	bounds := "empty"
	if box := sc.Bounds(); !box.IsEmpty() {
		bounds = fmt.Sprintf("%s - %s", formatVec(box.Min), formatVec(box.Max))
	}
	settings.Append([]string{
		fmt.Sprintf("%dx%d", sc.Width, sc.Height),
		fmt.Sprintf("%d", sc.MaxDepth),
		sc.Output,
		fmt.Sprintf("%d", len(sc.Cameras)),
		fmt.Sprintf("%d", len(sc.Spheres)),
		fmt.Sprintf("%d", len(sc.Triangles)),
		bounds,
	})
	settings.Render()

	cameras := tablewriter.NewWriter(&buf)
	cameras.SetAutoFormatHeaders(false)
	cameras.SetAutoWrapText(false)
	cameras.SetHeader([]string{"Camera", "Look from", "Look at", "Up", "FOV y", "FOV x"})
	for i, c := range sc.Cameras {
		cameras.Append([]string{
			fmt.Sprintf("%d", i),
			formatVec(c.LookFrom()),
			formatVec(c.LookAt()),
			formatVec(c.Up()),
			fmt.Sprintf("%.2f", c.FovY()),
			fmt.Sprintf("%.2f", c.FovX()*180/math.Pi),
		})
	}
	cameras.Render()

	primitives := tablewriter.NewWriter(&buf)
	primitives.SetAutoFormatHeaders(false)
	primitives.SetAutoWrapText(false)
	primitives.SetHeader([]string{"#", "Kind", "World geometry"})
	for i, p := range sc.Primitives() {
		var desc string
		switch p.Kind() {
		case geometry.KindSphere:
			sp := p.Sphere()
			desc = fmt.Sprintf("center %s radius %g (object space)", formatVec(sp.Center), sp.Radius)
		case geometry.KindTriangle:
			a, b, c := p.Triangle().WorldVertices()
			desc = fmt.Sprintf("%s %s %s", formatVec(a), formatVec(b), formatVec(c))
		}
		primitives.Append([]string{fmt.Sprintf("%d", i), p.Kind().String(), desc})
	}
	primitives.Render()

	return buf.String()
}
