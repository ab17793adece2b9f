package image

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))))

	img, format, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
}

func TestDecodeGarbage(t *testing.T) {
	t.Parallel()

	_, _, err := Decode([]byte("not an image"))
	require.Error(t, err)
}

func TestResetCache(t *testing.T) {
	cachedImages.Set(imageKey{id: "a", cols: 10, rows: 10}, cachedImage{
		img:  image.NewRGBA(image.Rect(0, 0, 1, 1)),
		cols: 10,
		rows: 10,
	})
	cachedImages.Set(imageKey{id: "b", cols: 20, rows: 20}, cachedImage{
		img:  image.NewRGBA(image.Rect(0, 0, 1, 1)),
		cols: 20,
		rows: 20,
	})

	ResetCache()

	require.Equal(t, 0, cachedImages.Len())
}

func TestResetIdempotent(t *testing.T) {
	// Calling ResetCache on an empty cache must not panic.
	ResetCache()
	ResetCache()

	require.Equal(t, 0, cachedImages.Len())
}
