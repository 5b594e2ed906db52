package renderer

import "github.com/df07/go-mirror-raytracer/pkg/core"

// Image is a width×height grid of linear colors. (0,0) is the lower left
// pixel. Distinct pixels may be written concurrently.
type Image struct {
	width, height int
	pixels        []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels
func (img *Image) Height() int {
	return img.height
}

// At returns the color of pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.pixels[y*img.width+x]
}

// Set stores the color of pixel (x, y)
func (img *Image) Set(x, y int, color core.Vec3) {
	img.pixels[y*img.width+x] = color
}
