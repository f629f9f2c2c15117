// Package texture decodes texture images and uploads them to GL texture units.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

// TGA has no magic number and the tga package registers itself with
// image.RegisterFormat under an empty prefix, which would claim every
// input. Formats are therefore dispatched here by signature instead of
// through image.Decode.
var decoders = []struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
}{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"bmp", "BM", bmp.Decode},
}

// Sniff returns the format name for data: png, jpeg or bmp by signature,
// tga for anything else.
func Sniff(data []byte) string {
	for _, d := range decoders {
		if bytes.HasPrefix(data, []byte(d.magic)) {
			return d.name
		}
	}
	return "tga"
}

// Decode decodes a PNG, JPEG, BMP or TGA image into RGBA. Images larger
// than maxSize on either side are downscaled to fit; maxSize <= 0 keeps the
// original size.
func Decode(data []byte, maxSize int) (*image.RGBA, string, error) {
	format := Sniff(data)
	decode := tga.Decode
	for _, d := range decoders {
		if d.name == format {
			decode = d.decode
		}
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s image: %w", format, err)
	}
	return ToRGBA(Fit(img, maxSize)), format, nil
}

// Fit downscales img so neither side exceeds maxSize, keeping its aspect
// ratio.
func Fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	if maxSize <= 0 || (b.Dx() <= maxSize && b.Dy() <= maxSize) {
		return img
	}
	return resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Bilinear)
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Checker returns a size x size two-color checkerboard with 1-pixel cells.
// It stands in for textures that fail to load.
func Checker(size int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

// Fallback is the checker used for missing textures.
func Fallback() *image.RGBA {
	return Checker(2, color.RGBA{R: 255, B: 255, A: 255}, color.RGBA{A: 255})
}
