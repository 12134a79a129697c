package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/df07/go-scene-raytracer/pkg/config"
	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/renderer"
	"github.com/df07/go-scene-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a scene to a PNG file.
func RenderScene(ctx *cli.Context) error {
	cfg, err := setupLogging(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one scene argument (a scene file or %s)", builtinDemo)
	}
	sc, err := loadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	opts, err := renderOptions(ctx, cfg)
	if err != nil {
		return err
	}
	if ctx.Bool("progress") {
		opts.Progress = progressLogger()
	}

	rt, err := renderer.NewRaytracer(sc, opts)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := rt.Render(runCtx)
	if err != nil {
		return err
	}

	out := outputPath(ctx.String("out"), cfg, sc)
	if err := writePNG(out, img); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("wrote %s", out)
	return nil
}

// renderOptions merges environment defaults with command line flags
func renderOptions(ctx *cli.Context, cfg *config.Config) (renderer.Options, error) {
	if ctx.IsSet("mode") {
		cfg.Mode = ctx.String("mode")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("tmax") {
		cfg.TMax = ctx.Float64("tmax")
	}
	if err := cfg.Validate(); err != nil {
		return renderer.Options{}, err
	}
	return cfg.RenderOptions()
}

// outputPath picks the --out flag, then the environment, then the scene's
// output directive.
func outputPath(flag string, cfg *config.Config, sc *scene.Scene) string {
	switch {
	case flag != "":
		return flag
	case cfg != nil && cfg.Output != "":
		return cfg.Output
	case sc.Output != "":
		return sc.Output
	default:
		return loaders.DefaultOutput
	}
}

// progressLogger reports progress in steps of 10%
func progressLogger() renderer.ProgressFunc {
	lastDecile := -1
	return func(p renderer.Progress) {
		decile := p.RowsDone * 10 / p.TotalRows
		if decile == lastDecile {
			return
		}
		lastDecile = decile
		logger.Noticef("rendered %d/%d rows (%d%%)", p.RowsDone, p.TotalRows, p.RowsDone*100/p.TotalRows)
	}
}

func writePNG(path string, img *renderer.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %v", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img.RGBA()); err != nil {
		return fmt.Errorf("error encoding PNG: %v", err)
	}
	return file.Close()
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Render", "Mode", "Workers", "Size", "Hit", "Background", "Failed", "Render time"})
	table.Append([]string{
		stats.RenderID.String(),
		stats.Mode.String(),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.HitPixels),
		fmt.Sprintf("%d", stats.BackgroundPixels),
		fmt.Sprintf("%d", stats.FailedPixels),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", stats.TotalPixels), "", "", stats.Duration.String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
