package renderer

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/log"
	"github.com/df07/go-scene-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// Mode selects how pixels are scheduled across goroutines
type Mode int

const (
	ModeParallel Mode = iota
	ModeSequential
)

func (m Mode) String() string {
	switch m {
	case ModeParallel:
		return "parallel"
	case ModeSequential:
		return "sequential"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "parallel":
		return ModeParallel, nil
	case "sequential", "seq":
		return ModeSequential, nil
	default:
		return ModeParallel, fmt.Errorf("unknown render mode %q (expected parallel or sequential)", name)
	}
}

// Progress describes one finished row
type Progress struct {
	Row       int // Row that just finished
	RowsDone  int // Rows finished so far, including Row
	TotalRows int
}

// ProgressFunc receives row completion events. It is always called from the
// goroutine that invoked Render, never concurrently.
type ProgressFunc func(Progress)

// Options controls a render
type Options struct {
	Mode       Mode
	NumWorkers int        // Parallel mode only; 0 means runtime.NumCPU()
	TMin       float64    // Minimum hit distance
	TMax       float64    // Maximum hit distance for primary rays
	Background core.Color // Color of pixels whose ray hits nothing
	Progress   ProgressFunc
}

// DefaultOptions returns parallel rendering over all CPUs with a black background
func DefaultOptions() Options {
	return Options{
		Mode:       ModeParallel,
		NumWorkers: 0,
		TMin:       core.Epsilon,
		TMax:       core.DefaultTMax,
		Background: core.Black,
	}
}

// Raytracer renders one scene. The scene is only read during a render.
type Raytracer struct {
	scene       *scene.Scene
	camera      *geometry.Camera
	intersector *Intersector
	options     Options
	logger      log.Logger

	// pixelFunc computes a pixel; replaced in tests to inject failures
	pixelFunc func(x, y int) (core.Color, bool)
}

// NewRaytracer creates a raytracer for a validated scene
func NewRaytracer(s *scene.Scene, options Options) (*Raytracer, error) {
	camera, err := s.Camera()
	if err != nil {
		return nil, err
	}
	if options.TMin <= 0 {
		options.TMin = core.Epsilon
	}
	if options.TMax <= 0 {
		options.TMax = core.DefaultTMax
	}

	intersector := NewIntersector(s)
	intersector.tMin = options.TMin

	rt := &Raytracer{
		scene:       s,
		camera:      camera,
		intersector: intersector,
		options:     options,
		logger:      log.New("renderer"),
	}
	rt.pixelFunc = rt.tracePixel
	return rt, nil
}

// Width returns the width of the rendered image
func (rt *Raytracer) Width() int { return rt.camera.Width() }

// Height returns the height of the rendered image
func (rt *Raytracer) Height() int { return rt.camera.Height() }

// PixelColor traces the primary ray through the center of pixel (x, y)
func (rt *Raytracer) PixelColor(x, y int) core.Color {
	c, _ := rt.tracePixel(x, y)
	return c
}

func (rt *Raytracer) tracePixel(x, y int) (core.Color, bool) {
	ray := rt.camera.RayThroughPixel(float64(x)+0.5, float64(y)+0.5)
	ray.TMax = rt.options.TMax
	if hit, ok := rt.intersector.NearestHit(ray); ok {
		return hit.Color, true
	}
	return rt.options.Background, false
}

// safePixel computes a pixel, turning a panic into the background color
func (rt *Raytracer) safePixel(x, y int, stats *rowStats) (c core.Color) {
	defer func() {
		if r := recover(); r != nil {
			rt.logger.Warningf("pixel (%d, %d) failed: %v", x, y, r)
			stats.failed++
			c = rt.options.Background
		}
	}()
	c, hit := rt.pixelFunc(x, y)
	if hit {
		stats.hits++
	}
	return c
}

// renderRow fills row y of img. Rows never share pixels, so concurrent
// calls for different rows need no locking.
func (rt *Raytracer) renderRow(img *Image, y int, stats *rowStats) {
	row := img.Row(y)
	for x := range row {
		row[x] = rt.safePixel(x, y, stats)
		stats.rendered++
	}
}

// Render produces the image. Every pixel is written exactly once. On
// cancellation the partially filled image is returned with ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	width, height := rt.Width(), rt.Height()
	img := NewImage(width, height)
	rows := make([]rowStats, height)

	stats := RenderStats{
		RenderID:    uuid.New(),
		Mode:        rt.options.Mode,
		Width:       width,
		Height:      height,
		TotalPixels: width * height,
	}

	rowsDone := 0
	onRowDone := func(row int) {
		rowsDone++
		rt.logger.Debugf("render %s: row %d done (%d/%d)", stats.RenderID, row, rowsDone, height)
		if rt.options.Progress != nil {
			rt.options.Progress(Progress{Row: row, RowsDone: rowsDone, TotalRows: height})
		}
	}

	start := time.Now()
	var err error

	switch rt.options.Mode {
	case ModeSequential:
		stats.Workers = 1
		rt.logger.Infof("render %s: %dx%d sequential", stats.RenderID, width, height)
		for y := 0; y < height; y++ {
			if err = ctx.Err(); err != nil {
				break
			}
			rt.renderRow(img, y, &rows[y])
			onRowDone(y)
		}
	case ModeParallel:
		numWorkers := rt.options.NumWorkers
		if numWorkers <= 0 {
			numWorkers = runtime.NumCPU()
		}
		pool := NewWorkerPool(numWorkers)
		stats.Workers = pool.NumWorkers()
		rt.logger.Infof("render %s: %dx%d parallel with %d workers", stats.RenderID, width, height, stats.Workers)
		err = pool.Run(ctx, height, func(y int) {
			rt.renderRow(img, y, &rows[y])
		}, onRowDone)
	default:
		return nil, stats, fmt.Errorf("unsupported render mode %v", rt.options.Mode)
	}

	stats.Duration = time.Since(start)
	mergeRowStats(&stats, rows)

	if err != nil {
		rt.logger.Warningf("render %s cancelled after %d of %d rows", stats.RenderID, rowsDone, height)
		return img, stats, err
	}
	if stats.FailedPixels > 0 {
		rt.logger.Warningf("render %s: %d pixels failed and were written as background", stats.RenderID, stats.FailedPixels)
	}
	rt.logger.Infof("render %s finished in %v", stats.RenderID, stats.Duration)
	return img, stats, nil
}

// Render renders a scene with DefaultOptions
func Render(s *scene.Scene) (*Image, error) {
	rt, err := NewRaytracer(s, DefaultOptions())
	if err != nil {
		return nil, err
	}
	img, _, err := rt.Render(context.Background())
	return img, err
}
