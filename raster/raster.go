// Package raster loads input images and reduces them to the black-and-white
// bitmaps tracers work on.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load reads and decodes the image at filename. PNG, JPEG, GIF, BMP and TIFF
// are supported.
func Load(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %s: %w", filename, err)
	}
	return img, nil
}

// Threshold converts img to a black-and-white grayscale image. Pixels whose
// luminance is below level become ink (black), all others background (white).
func Threshold(img image.Image, level uint8) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			lum := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if lum < level {
				gray.SetGray(x, y, color.Gray{0})
			} else {
				gray.SetGray(x, y, color.Gray{255})
			}
		}
	}
	return gray
}

// Ink returns true if the pixel at (x, y) is ink.
func Ink(gray *image.Gray, x, y int) bool {
	return gray.GrayAt(x, y).Y < 128
}
