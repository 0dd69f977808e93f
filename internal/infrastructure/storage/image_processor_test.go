package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	p := NewImageProcessor()

	assert.NoError(t, p.ValidateImage(pngBytes(t, 10, 10)))
	assert.ErrorIs(t, p.ValidateImage(nil), ErrInvalidImage)
	assert.ErrorIs(t, p.ValidateImage([]byte("not an image")), ErrInvalidImage)

	p.MaxSize = 10
	assert.ErrorIs(t, p.ValidateImage(pngBytes(t, 10, 10)), ErrInvalidImage)
}

func TestProcessResizesLargeImage(t *testing.T) {
	p := NewImageProcessor()

	out, err := p.Process(pngBytes(t, 1600, 400))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestProcessKeepsSmallImage(t *testing.T) {
	p := NewImageProcessor()

	out, err := p.Process(pngBytes(t, 100, 50))
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}
