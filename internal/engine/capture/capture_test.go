package capture

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 42*int(time.Millisecond), time.UTC)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFilename(t *testing.T) {
	c := New("shots", "texscene", FormatPNG)
	c.now = fixedClock
	assert.Equal(t, filepath.Join("shots", "texscene_2024-03-09_14-05-07-042.png"), c.path(c.now(), 0))

	c = New("", "frame", FormatBMP)
	c.now = fixedClock
	assert.Equal(t, "frame_2024-03-09_14-05-07-042.bmp", c.path(c.now(), 0))
}

func TestFromFramebufferFlips(t *testing.T) {
	// 1x2 frame: bottom row red, top row blue, stored bottom-up.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromFramebuffer(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
}

func TestFromFramebufferErrors(t *testing.T) {
	_, err := FromFramebuffer(make([]byte, 8), 2, 2)
	assert.ErrorContains(t, err, "mismatch")

	_, err = FromFramebuffer(nil, 0, 4)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	img, err := FromFramebuffer(make([]byte, 4*3*2), 3, 2)
	require.NoError(t, err)

	for _, f := range []Format{FormatPNG, FormatBMP} {
		t.Run(string(f), func(t *testing.T) {
			c := New(filepath.Join(t.TempDir(), "nested"), "frame", f)
			c.now = fixedClock

			name, err := c.Save(img)
			require.NoError(t, err)

			file, err := os.Open(name)
			require.NoError(t, err)
			defer file.Close()

			if f == FormatBMP {
				cfg, err := bmp.DecodeConfig(file)
				require.NoError(t, err)
				assert.Equal(t, 3, cfg.Width)
				return
			}
			cfg, err := png.DecodeConfig(file)
			require.NoError(t, err)
			assert.Equal(t, 2, cfg.Height)
		})
	}
}

func TestSaveSameInstant(t *testing.T) {
	img, err := FromFramebuffer(make([]byte, 4), 1, 1)
	require.NoError(t, err)

	dir := t.TempDir()
	c := New(dir, "frame", FormatPNG)
	c.now = fixedClock

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		name, err := c.Save(img)
		require.NoError(t, err)
		assert.False(t, seen[name], "capture %d overwrote %s", i, name)
		seen[name] = true
	}
	assert.True(t, seen[filepath.Join(dir, "frame_2024-03-09_14-05-07-042.png")])
	assert.True(t, seen[filepath.Join(dir, "frame_2024-03-09_14-05-07-042_2.png")])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestFilenameMilliseconds(t *testing.T) {
	c := New("", "frame", FormatPNG)
	c.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 999_999_999, time.UTC) }
	assert.Equal(t, "frame_2024-03-09_14-05-07-999.png", c.path(c.now(), 0))
}
