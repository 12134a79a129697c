package renderer

import (
	"image"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Image is a row-major RGB raster with one entry per pixel. Row j holds the
// pixels cast through y = j + 0.5, which puts the bottom of the view in row 0
// (bottom-left origin).
type Image struct {
	Width  int
	Height int
	Pix    []core.Color
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]core.Color, width*height),
	}
}

// At returns the color at (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pix[y*img.Width+x]
}

// Set writes the color at (x, y)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pix[y*img.Width+x] = c
}

// Row returns the pixels of row y. Writes through the slice land in the image.
func (img *Image) Row(y int) []core.Color {
	return img.Pix[y*img.Width : (y+1)*img.Width]
}

// Bytes returns the raster as 3 bytes (R, G, B) per pixel in storage order,
// suitable for encoders with a bottom-left origin.
func (img *Image) Bytes() []byte {
	buf := make([]byte, 0, len(img.Pix)*3)
	for _, c := range img.Pix {
		buf = append(buf, c.R, c.G, c.B)
	}
	return buf
}

// RGBA converts the raster to an image.RGBA, flipping rows so that it reads
// correctly with the top-left origin used by image/png.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := img.Row(y)
		dstY := img.Height - 1 - y
		for x, c := range row {
			out.SetRGBA(x, dstY, c.RGBA())
		}
	}
	return out
}
