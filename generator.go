package litho

import (
	"context"
	"fmt"
	"image"

	"github.com/flywave/go3d/vec3"
)

const progressTotal = 100

// Generator builds complete lithophane meshes: the tessellated relief
// surface, a closing backside, the beveled frame, and optional
// stabilizer feet and hanger tabs. It keeps the last produced mesh and
// its physical size for later export. A Generator is not safe for
// concurrent use; give each goroutine its own.
type Generator struct {
	config MeshConfig

	mesh       *Mesh
	meshWidth  float32
	meshHeight float32

	// factors of the running generation
	border      float32
	depthFactor float32
	widthFactor float32
}

func NewGenerator(config MeshConfig) *Generator {
	return &Generator{config: config}
}

func (g *Generator) SetConfig(config MeshConfig) {
	g.config = config
}

func (g *Generator) Config() MeshConfig {
	return g.config
}

// Mesh returns the last generated mesh, or nil if no generation has
// succeeded yet.
func (g *Generator) Mesh() *Mesh {
	return g.mesh
}

// Size returns the external dimensions of the last generated mesh in
// millimeters, width then height.
func (g *Generator) Size() (float32, float32) {
	return g.meshWidth, g.meshHeight
}

// Generate converts an 8-bit grayscale raster into a printable
// triangle soup. Higher intensity produces a thicker surface; callers
// wanting the usual bright-is-thin lithophane behavior must Invert the
// raster first, the engine never inverts. progress may be nil. The
// context is checked between phases and every 32 rows of the parallel
// surface phase; on cancellation the partial mesh is discarded and
// ctx.Err() returned.
func (g *Generator) Generate(ctx context.Context, img *image.Gray, progress ProgressFunc) (*Mesh, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("%w: nil raster", ErrInvalidConfig)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: raster is %dx%d", ErrInvalidConfig, w, h)
	}

	g.border = g.config.FrameBorder
	g.depthFactor = (g.config.TotalThickness - g.config.MinThickness) / 255
	g.widthFactor = (g.config.Width - g.border*2) / float32(w)
	totalHeight := g.border*2 + float32(h)*g.widthFactor

	estimate := (w-1)*(h-1)*18 + 12 + 500
	if g.config.EnableStabilizers {
		estimate += 1000
	}
	if g.config.EnableHangers {
		estimate += g.config.HangerCount * 300
	}
	g.mesh = &Mesh{Vertices: make([]vec3.T, 0, estimate)}

	buf := newDepthBuffer(img, g.depthFactor)

	if err := g.tessellate(ctx, buf); err != nil {
		g.mesh = nil
		return nil, err
	}
	g.report(progress, 50)

	if g.config.EnableSegmentation && g.config.BacksideSegments > 1 {
		g.addSegmentedBackside(buf)
	} else {
		g.addBackside(buf)
	}
	g.report(progress, 60)
	if err := ctx.Err(); err != nil {
		g.mesh = nil
		return nil, err
	}

	g.addFrame(g.config.Width, totalHeight)
	g.report(progress, 80)
	if err := ctx.Err(); err != nil {
		g.mesh = nil
		return nil, err
	}

	if g.config.EnableStabilizers && totalHeight > g.config.StabilizerThreshold {
		g.addStabilizers(g.config.Width, totalHeight)
	}
	if g.config.EnableHangers {
		g.addHangers(g.config.Width, totalHeight)
	}
	g.report(progress, 100)

	g.meshWidth, g.meshHeight = g.config.Width, totalHeight
	return g.mesh, nil
}

func (g *Generator) report(progress ProgressFunc, current int) {
	if progress != nil {
		progress(current, progressTotal)
	}
}

// scaleVertex maps pixel coordinates into millimeter space; z passes
// through unchanged.
func (g *Generator) scaleVertex(x, y, z float32) vec3.T {
	return vec3.T{x*g.widthFactor + g.border, y*g.widthFactor + g.border, z}
}
