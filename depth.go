package litho

import "image"

// depthBuffer holds per-pixel thickness values, row-major. Row order
// is vertically flipped relative to the raster's native top-down
// order: buffer row 0 is the bottom image row. The flip puts the image
// upright in the mesh's millimeter space; tessellation and backside
// generation both depend on it.
type depthBuffer struct {
	width  int
	height int
	depths []float32
}

// newDepthBuffer samples img once. The result is read-only during
// tessellation and may be shared freely between workers.
func newDepthBuffer(img *image.Gray, depthFactor float32) *depthBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &depthBuffer{width: w, height: h, depths: make([]float32, w*h)}
	for y := 0; y < h; y++ {
		off := img.PixOffset(bounds.Min.X, bounds.Min.Y+h-1-y)
		src := img.Pix[off : off+w]
		dst := buf.depths[y*w : y*w+w]
		for x := range dst {
			dst[x] = float32(src[x]) * depthFactor
		}
	}
	return buf
}

func (b *depthBuffer) row(y int) []float32 {
	return b.depths[y*b.width : (y+1)*b.width]
}

func (b *depthBuffer) at(x, y int) float32 {
	return b.depths[y*b.width+x]
}
