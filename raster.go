package litho

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ToGray converts img to 8-bit grayscale with the origin normalized
// to (0,0). An input that is already *image.Gray is returned as is.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}

// Invert returns a copy of img with every intensity flipped, so that
// bright pixels become thick mesh regions. Lithophanes are usually
// generated from inverted images.
func Invert(img *image.Gray) *image.Gray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x, v := range src {
			dst[x] = 255 - v
		}
	}
	return out
}

// FlipVertical returns a copy of img mirrored across its horizontal
// axis.
func FlipVertical(img *image.Gray) *image.Gray {
	bounds := img.Bounds()
	h := bounds.Dy()
	out := image.NewGray(bounds)
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+bounds.Dx()]
		dst := out.Pix[(h-1-y)*out.Stride:]
		copy(dst, src)
	}
	return out
}

// ResizeToFit scales img down so its longer edge is at most maxSize
// pixels, preserving aspect ratio. Images that already fit, and any
// maxSize <= 0, pass through unchanged.
func ResizeToFit(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	var newW, newH int
	if w > h {
		newW = maxSize
		newH = h * maxSize / w
	} else {
		newH = maxSize
		newW = w * maxSize / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
