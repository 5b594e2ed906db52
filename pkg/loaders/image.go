package loaders

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/xerrors"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// ColorGrid is a rendered image of linear colors. (0,0) is the lower left
// pixel and y grows upward.
type ColorGrid interface {
	Width() int
	Height() int
	At(x, y int) core.Vec3
}

// channelByte converts a linear channel value to 8 bits, clamping to [0,1]
func channelByte(c float64) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	}
	return uint8(255 * c)
}

// WriteTGA encodes the grid as an uncompressed 24-bit TGA. TGA stores rows
// bottom-up, so row y=0 is written first.
func WriteTGA(w io.Writer, img ColorGrid) error {
	width, height := img.Width(), img.Height()
	if width > 0xFFFF || height > 0xFFFF {
		return xerrors.Errorf("image %dx%d too large for TGA", width, height)
	}

	bw := bufio.NewWriter(w)
	header := [18]byte{
		2:  2, // uncompressed true-color
		12: byte(width), 13: byte(width >> 8),
		14: byte(height), 15: byte(height >> 8),
		16: 24, // bits per pixel
	}
	if _, err := bw.Write(header[:]); err != nil {
		return xerrors.Errorf("while writing TGA header: %w", err)
	}

	pixel := make([]byte, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(x, y)
			pixel[0], pixel[1], pixel[2] = channelByte(c.Z), channelByte(c.Y), channelByte(c.X)
			if _, err := bw.Write(pixel); err != nil {
				return xerrors.Errorf("while writing TGA pixels: %w", err)
			}
		}
	}
	return bw.Flush()
}

// ToRGBA converts the grid to an image with the usual top-left origin
func ToRGBA(img ColorGrid) *image.RGBA {
	width, height := img.Width(), img.Height()
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(x, y)
			out.SetRGBA(x, height-1-y, color.RGBA{
				R: channelByte(c.X),
				G: channelByte(c.Y),
				B: channelByte(c.Z),
				A: 255,
			})
		}
	}
	return out
}

// WritePNG encodes the grid as a PNG
func WritePNG(w io.Writer, img ColorGrid) error {
	if err := png.Encode(w, ToRGBA(img)); err != nil {
		return xerrors.Errorf("while encoding PNG: %w", err)
	}
	return nil
}

// SaveImage writes the grid to filename, choosing the encoder from the
// extension (.tga or .png)
func SaveImage(filename string, img ColorGrid) error {
	var encode func(io.Writer, ColorGrid) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".tga":
		encode = WriteTGA
	case ".png":
		encode = WritePNG
	default:
		return xerrors.Errorf("unsupported image format %q, want .tga or .png", ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return xerrors.Errorf("while creating image file: %w", err)
	}
	if err := encode(file, img); err != nil {
		file.Close()
		return xerrors.Errorf("while writing %s: %w", filename, err)
	}
	return file.Close()
}
