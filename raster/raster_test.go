package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 255, 255, 255})

	gray := Threshold(img, 128)
	test.T(t, gray.GrayAt(0, 0).Y, uint8(0))
	test.T(t, gray.GrayAt(1, 0).Y, uint8(255))
	test.That(t, Ink(gray, 0, 0))
	test.That(t, !Ink(gray, 1, 0))
}

func TestThresholdLevel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(0, 0, color.Gray{100})
	img.SetGray(1, 0, color.Gray{128})
	img.SetGray(2, 0, color.Gray{200})

	// pixels strictly below the level become ink
	gray := Threshold(img, 128)
	test.That(t, Ink(gray, 0, 0))
	test.That(t, !Ink(gray, 1, 0))
	test.That(t, !Ink(gray, 2, 0))
}
