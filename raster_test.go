package litho

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGray(t *testing.T) {
	t.Parallel()

	t.Run("gray passthrough", func(t *testing.T) {
		t.Parallel()
		img := grayImage(4, 4, 77)
		assert.Same(t, img, ToGray(img))
	})

	t.Run("converts color", func(t *testing.T) {
		t.Parallel()
		src := image.NewRGBA(image.Rect(0, 0, 3, 1))
		src.Set(0, 0, color.RGBA{255, 255, 255, 255})
		src.Set(1, 0, color.RGBA{0, 0, 0, 255})
		src.Set(2, 0, color.RGBA{128, 128, 128, 255})

		gray := ToGray(src)
		assert.Equal(t, uint8(255), gray.GrayAt(0, 0).Y)
		assert.Equal(t, uint8(0), gray.GrayAt(1, 0).Y)
		assert.Equal(t, uint8(128), gray.GrayAt(2, 0).Y)
	})

	t.Run("normalizes origin", func(t *testing.T) {
		t.Parallel()
		src := image.NewRGBA(image.Rect(5, 7, 9, 10))
		gray := ToGray(src)
		assert.Equal(t, image.Rect(0, 0, 4, 3), gray.Bounds())
	})
}

func TestInvert(t *testing.T) {
	t.Parallel()

	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.SetGray(0, 0, grayColor(0))
	img.SetGray(1, 0, grayColor(100))
	img.SetGray(2, 0, grayColor(255))

	inv := Invert(img)
	assert.Equal(t, uint8(255), inv.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(155), inv.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(0), inv.GrayAt(2, 0).Y)

	// input untouched, double inversion restores it
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Empty(t, cmp.Diff(img.Pix, Invert(Invert(img)).Pix))
}

func TestInvertSubImage(t *testing.T) {
	t.Parallel()

	parent := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			parent.SetGray(x, y, grayColor(uint8(16*y+x)))
		}
	}

	// A sub-image aliases the parent's buffer and keeps its stride.
	sub := parent.SubImage(image.Rect(2, 2, 6, 6)).(*image.Gray)
	inv := Invert(sub)

	require.Equal(t, sub.Bounds(), inv.Bounds())
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			assert.Equal(t, 255-parent.GrayAt(x, y).Y, inv.GrayAt(x, y).Y, "pixel (%d,%d)", x, y)
		}
	}
}

func TestFlipVertical(t *testing.T) {
	t.Parallel()

	img := image.NewGray(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			img.SetGray(x, y, grayColor(uint8(10*y+x)))
		}
	}

	flipped := FlipVertical(img)
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, img.GrayAt(x, 2-y).Y, flipped.GrayAt(x, y).Y, "pixel (%d,%d)", x, y)
		}
	}
	assert.Empty(t, cmp.Diff(img.Pix, FlipVertical(FlipVertical(img)).Pix))
}

func TestResizeToFit(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		img := grayImage(100, 50, 128)
		assert.Same(t, image.Image(img), ResizeToFit(img, 0))
	})

	t.Run("already fits", func(t *testing.T) {
		t.Parallel()
		img := grayImage(10, 10, 128)
		assert.Same(t, image.Image(img), ResizeToFit(img, 10))
	})

	t.Run("landscape", func(t *testing.T) {
		t.Parallel()
		got := ResizeToFit(grayImage(100, 50, 128), 10)
		require.Equal(t, image.Rect(0, 0, 10, 5), got.Bounds())
	})

	t.Run("portrait", func(t *testing.T) {
		t.Parallel()
		got := ResizeToFit(grayImage(50, 100, 128), 10)
		require.Equal(t, image.Rect(0, 0, 5, 10), got.Bounds())
	})

	t.Run("preserves intensity", func(t *testing.T) {
		t.Parallel()
		got := ResizeToFit(grayImage(100, 100, 200), 10)
		gray := ToGray(got)
		assert.Equal(t, uint8(200), gray.GrayAt(5, 5).Y)
	})
}
