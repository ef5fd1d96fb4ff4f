package imgcrop

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, w, h int, format imaging.Format) []byte {
	t.Helper()

	img := imaging.New(w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestCrop(t *testing.T) {
	t.Run("crops inside bounds and keeps format", func(t *testing.T) {
		src := encodeTestImage(t, 100, 80, imaging.PNG)

		out, format, err := Crop(bytes.NewReader(src), Region{X: 10, Y: 10, Width: 40, Height: 30})
		require.NoError(t, err)
		assert.Equal(t, "png", format)

		decoded, decodedFormat, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "png", decodedFormat)
		assert.Equal(t, 40, decoded.Bounds().Dx())
		assert.Equal(t, 30, decoded.Bounds().Dy())
	})

	t.Run("clamps region overflowing the image", func(t *testing.T) {
		src := encodeTestImage(t, 50, 50, imaging.JPEG)

		out, format, err := Crop(bytes.NewReader(src), Region{X: 30, Y: 30, Width: 100, Height: 100})
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)

		decoded, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 20, decoded.Bounds().Dx())
		assert.Equal(t, 20, decoded.Bounds().Dy())
	})

	t.Run("region fully outside bounds is an error", func(t *testing.T) {
		src := encodeTestImage(t, 50, 50, imaging.PNG)

		_, _, err := Crop(bytes.NewReader(src), Region{X: 200, Y: 200, Width: 10, Height: 10})
		assert.Error(t, err)
	})

	t.Run("zero-area region is an error", func(t *testing.T) {
		src := encodeTestImage(t, 50, 50, imaging.PNG)

		_, _, err := Crop(bytes.NewReader(src), Region{X: 10, Y: 10, Width: 0, Height: 10})
		assert.Error(t, err)
	})

	t.Run("garbage input is a decode error", func(t *testing.T) {
		_, _, err := Crop(bytes.NewReader([]byte("not an image")), Region{X: 0, Y: 0, Width: 10, Height: 10})
		assert.Error(t, err)
	})
}
