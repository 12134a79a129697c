package renderer

import (
	"time"

	"github.com/google/uuid"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	RenderID         uuid.UUID     // Identifies the render in logs
	Mode             Mode          // Execution mode used
	Workers          int           // Number of goroutines that traced pixels
	Width            int           // Image width
	Height           int           // Image height
	TotalPixels      int           // Width * Height
	RenderedPixels   int           // Pixels written; below TotalPixels only when cancelled
	HitPixels        int           // Pixels whose primary ray hit a primitive
	BackgroundPixels int           // Rendered pixels written with the background color
	FailedPixels     int           // Pixels whose computation panicked; written as background
	Duration         time.Duration // Wall-clock render time
}

// rowStats is owned by the single worker that renders the row
type rowStats struct {
	rendered int
	hits     int
	failed   int
}

// mergeRowStats sums per-row counters into stats
func mergeRowStats(stats *RenderStats, rows []rowStats) {
	for _, r := range rows {
		stats.RenderedPixels += r.rendered
		stats.HitPixels += r.hits
		stats.FailedPixels += r.failed
	}
	stats.BackgroundPixels = stats.RenderedPixels - stats.HitPixels
}
