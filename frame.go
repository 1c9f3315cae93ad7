package litho

import "github.com/flywave/go3d/vec3"

// addFrame surrounds the relief with a beveled rectangular shell of
// outer size width x height: four outer walls, the outer back
// rectangle, a front window plane at z=0, four inner faces at the
// relief back plane, and four bevel slopes connecting window to inner
// faces. Coordinates are raw millimeters, independent of the raster
// scale. The bevel inset is (TotalThickness-MinThickness) scaled by
// FrameSlopeFactor.
func (g *Generator) addFrame(width, height float32) {
	minThickness := g.config.MinThickness
	depth := g.config.TotalThickness - minThickness
	frameSlope := depth * g.config.FrameSlopeFactor
	border := g.config.FrameBorder

	// bottom wall
	g.mesh.append(
		vec3.T{width, height, -minThickness},
		vec3.T{0, height, -minThickness},
		vec3.T{0, height, depth},

		vec3.T{width, height, -minThickness},
		vec3.T{0, height, depth},
		vec3.T{width, height, depth},
	)

	// front window plane
	g.mesh.append(
		vec3.T{width - border - frameSlope, border + frameSlope, 0},
		vec3.T{width - border - frameSlope, height - border - frameSlope, 0},
		vec3.T{border + frameSlope, height - border - frameSlope, 0},

		vec3.T{width - border - frameSlope, border + frameSlope, 0},
		vec3.T{border + frameSlope, height - border - frameSlope, 0},
		vec3.T{border + frameSlope, border + frameSlope, 0},
	)

	// left wall
	g.mesh.append(
		vec3.T{0, 0, depth},
		vec3.T{0, height, depth},
		vec3.T{0, height, -minThickness},

		vec3.T{0, 0, depth},
		vec3.T{0, height, -minThickness},
		vec3.T{0, 0, -minThickness},
	)

	// top wall
	g.mesh.append(
		vec3.T{0, 0, -minThickness},
		vec3.T{width, 0, -minThickness},
		vec3.T{width, 0, depth},

		vec3.T{0, 0, -minThickness},
		vec3.T{width, 0, depth},
		vec3.T{0, 0, depth},
	)

	// right wall
	g.mesh.append(
		vec3.T{width, 0, -minThickness},
		vec3.T{width, height, -minThickness},
		vec3.T{width, height, depth},

		vec3.T{width, 0, -minThickness},
		vec3.T{width, height, depth},
		vec3.T{width, 0, depth},
	)

	// outer back rectangle
	g.mesh.append(
		vec3.T{0, 0, -minThickness},
		vec3.T{0, height, -minThickness},
		vec3.T{width, height, -minThickness},

		vec3.T{0, 0, -minThickness},
		vec3.T{width, height, -minThickness},
		vec3.T{width, 0, -minThickness},
	)

	// inner left
	g.mesh.append(
		vec3.T{border, border, depth},
		vec3.T{border, height - border, depth},
		vec3.T{0, height, depth},

		vec3.T{border, border, depth},
		vec3.T{0, height, depth},
		vec3.T{0, 0, depth},
	)

	// inner right
	g.mesh.append(
		vec3.T{width - border, height - border, depth},
		vec3.T{width - border, border, depth},
		vec3.T{width, 0, depth},

		vec3.T{width - border, height - border, depth},
		vec3.T{width, 0, depth},
		vec3.T{width, height, depth},
	)

	// inner bottom
	g.mesh.append(
		vec3.T{border, height - border, depth},
		vec3.T{width - border, height - border, depth},
		vec3.T{width, height, depth},

		vec3.T{border, height - border, depth},
		vec3.T{width, height, depth},
		vec3.T{0, height, depth},
	)

	// inner top
	g.mesh.append(
		vec3.T{width - border, border, depth},
		vec3.T{border, border, depth},
		vec3.T{0, 0, depth},

		vec3.T{width - border, border, depth},
		vec3.T{0, 0, depth},
		vec3.T{width, 0, depth},
	)

	// left slope
	g.mesh.append(
		vec3.T{border + frameSlope, border + frameSlope, 0},
		vec3.T{border + frameSlope, height - border - frameSlope, 0},
		vec3.T{border, height - border, depth},

		vec3.T{border + frameSlope, border + frameSlope, 0},
		vec3.T{border, height - border, depth},
		vec3.T{border, border, depth},
	)

	// right slope
	g.mesh.append(
		vec3.T{width - border - frameSlope, height - border - frameSlope, 0},
		vec3.T{width - border - frameSlope, border + frameSlope, 0},
		vec3.T{width - border, border, depth},

		vec3.T{width - border - frameSlope, height - border - frameSlope, 0},
		vec3.T{width - border, border, depth},
		vec3.T{width - border, height - border, depth},
	)

	// bottom slope
	g.mesh.append(
		vec3.T{border + frameSlope, height - border - frameSlope, 0},
		vec3.T{width - border - frameSlope, height - border - frameSlope, 0},
		vec3.T{width - border, height - border, depth},

		vec3.T{border + frameSlope, height - border - frameSlope, 0},
		vec3.T{width - border, height - border, depth},
		vec3.T{border, height - border, depth},
	)

	// top slope
	g.mesh.append(
		vec3.T{width - border - frameSlope, border + frameSlope, 0},
		vec3.T{border + frameSlope, border + frameSlope, 0},
		vec3.T{border, border, depth},

		vec3.T{width - border - frameSlope, border + frameSlope, 0},
		vec3.T{border, border, depth},
		vec3.T{width - border, border, depth},
	)
}
