// Package capture saves rendered frames to image files.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Format is an output image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat resolves a format name. Empty means PNG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	}
	return "", fmt.Errorf("unknown capture format %q", name)
}

func (f Format) encode(w io.Writer, img image.Image) error {
	if f == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}

// Capturer writes timestamped frame captures into a directory.
type Capturer struct {
	dir    string
	prefix string
	format Format
	now    func() time.Time
}

// New creates a capturer. An empty dir writes to the working directory.
func New(dir, prefix string, format Format) *Capturer {
	return &Capturer{dir: dir, prefix: prefix, format: format, now: time.Now}
}

// maxSuffix bounds the collision counter appended by Save.
const maxSuffix = 1000

// path names the n-th capture taken at t. Stamps carry millisecond
// resolution.
func (c *Capturer) path(t time.Time, n int) string {
	stamp := fmt.Sprintf("%s-%03d", t.Format("2006-01-02_15-04-05"), t.Nanosecond()/int(time.Millisecond))
	if n > 0 {
		stamp = fmt.Sprintf("%s_%d", stamp, n)
	}
	name := fmt.Sprintf("%s_%s.%s", c.prefix, stamp, c.format)
	if c.dir != "" {
		name = filepath.Join(c.dir, name)
	}
	return name
}

// create opens a file that did not exist before, appending a counter to
// the name when captures share a timestamp.
func (c *Capturer) create() (*os.File, string, error) {
	t := c.now()
	for n := 0; n < maxSuffix; n++ {
		name := c.path(t, n)
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("creating file: %w", err)
		}
		return f, name, nil
	}
	return nil, "", fmt.Errorf("creating file: %d captures share %s", maxSuffix, c.path(t, 0))
}

// FromFramebuffer converts bottom-up RGBA rows, as read back from GL, into
// a top-down image.
func FromFramebuffer(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		dst := y * img.Stride
		copy(img.Pix[dst:dst+row], pixels[src:src+row])
	}
	return img, nil
}

// Save encodes img to a new file and returns its path.
func (c *Capturer) Save(img image.Image) (string, error) {
	if c.dir != "" {
		if err := os.MkdirAll(c.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, name, err := c.create()
	if err != nil {
		return "", err
	}
	if err := c.format.encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", c.format, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return name, nil
}
