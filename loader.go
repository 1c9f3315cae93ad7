package litho

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
	"gonum.org/v1/gonum/stat"
)

// DefaultMaxRasterSize is the longest raster edge fed to generation by
// default. A 1024 px edge keeps the surface around two million
// triangles.
const DefaultMaxRasterSize = 1024

// LoadResult is a decoded raster plus what loading did to it.
type LoadResult struct {
	// Image is the grayscale raster, resized when requested.
	Image *image.Gray
	// Format is the sniffed format name, e.g. "jpeg".
	Format string
	// OriginalWidth and OriginalHeight are the pre-resize pixel
	// dimensions.
	OriginalWidth  int
	OriginalHeight int
	// Resized is set when the raster was scaled down to maxSize.
	Resized bool
	// Converted is set when the input was not 8-bit grayscale.
	Converted bool
	// QualityWarning is set for JPEG inputs with visible compression
	// artifacts, which turn into ridges on the printed surface.
	QualityWarning bool
}

// LoadRaster decodes the image at path and prepares it for mesh
// generation. When maxSize is positive, images with a longer edge are
// scaled down to it; pass 0 to keep the original resolution.
func LoadRaster(path string, maxSize int) (*LoadResult, error) {
	reader, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read image %s: %w", path, err)
	}
	defer reader.Close()

	cfg, format, err := image.DecodeConfig(reader)
	if err != nil {
		return nil, fmt.Errorf("cannot read image %s: %w", path, err)
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("cannot read image %s: %w", path, err)
	}

	var img image.Image
	switch format {
	case "jpeg":
		img, err = jpeg.Decode(reader)
	case "png":
		img, err = png.Decode(reader)
	case "gif":
		img, err = gif.Decode(reader)
	case "bmp":
		img, err = bmp.Decode(reader)
	case "tiff":
		img, err = tiff.Decode(reader)
	case "webp":
		img, err = webp.Decode(reader)
	default:
		return nil, fmt.Errorf("%s: unsupported image format %q", path, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	result := &LoadResult{
		Format:         format,
		OriginalWidth:  cfg.Width,
		OriginalHeight: cfg.Height,
	}
	_, alreadyGray := img.(*image.Gray)

	// Blockiness is measured before resampling smears it away.
	if format == "jpeg" {
		result.QualityWarning = HasCompressionArtifacts(ToGray(img))
	}

	if maxSize > 0 && (cfg.Width > maxSize || cfg.Height > maxSize) {
		img = ResizeToFit(img, maxSize)
		result.Resized = true
	}
	result.Image = ToGray(img)
	result.Converted = !alreadyGray
	return result, nil
}

// SupportedExtensions lists the raster file extensions LoadRaster
// accepts, without dots.
func SupportedExtensions() []string {
	return []string{"png", "jpg", "jpeg", "webp", "tiff", "tif", "bmp"}
}

// IsFormatSupported reports whether ext, with or without a leading dot
// and in any case, names a loadable raster format.
func IsFormatSupported(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, e := range SupportedExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}

// HasCompressionArtifacts reports whether img shows the blockiness of
// aggressive JPEG compression. JPEG encodes 8x8 DCT blocks, so
// artifacts appear as intensity steps at block boundaries that are
// absent inside blocks. Intensity deltas across sampled boundaries are
// compared against deltas at mid-block offsets.
func HasCompressionArtifacts(img *image.Gray) bool {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 16 || h < 16 {
		return false
	}
	var boundary, internal []float64
	for y := 8; y < h-8; y += 32 {
		for x := 8; x < w-8; x += 32 {
			px := bounds.Min.X + x
			py := bounds.Min.Y + y
			boundary = append(boundary, absDiff(img.GrayAt(px, py).Y, img.GrayAt(px-1, py).Y))
			internal = append(internal, absDiff(img.GrayAt(px-4, py).Y, img.GrayAt(px-5, py).Y))
		}
	}
	if len(boundary) == 0 {
		return false
	}
	boundaryAvg := stat.Mean(boundary, nil)
	internalAvg := stat.Mean(internal, nil)
	return boundaryAvg > internalAvg*1.5 && boundaryAvg > 10
}

func absDiff(a, b uint8) float64 {
	if a > b {
		return float64(a - b)
	}
	return float64(b - a)
}
