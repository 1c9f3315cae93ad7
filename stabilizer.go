package litho

import "github.com/flywave/go3d/vec3"

// addStabilizers puts a wedge-shaped foot assembly on the left and
// right mesh edges. Each assembly has a front support past the relief
// surface and a mirrored back support behind the base plane. Removable
// feet attach 1mm off the body so the joint snaps cleanly; permanent
// feet sit flush.
func (g *Generator) addStabilizers(width, height float32) {
	stabHeight := height * g.config.StabilizerHeightFactor
	stabWidth := min(g.border, 4)
	depth := stabHeight * 0.5
	minThickness := g.config.MinThickness
	totalThickness := g.config.TotalThickness
	var zDelta float32
	if g.config.PermanentStabilizers {
		zDelta = 1
	}

	g.addSingleStabilizer(0, stabHeight, depth, minThickness, totalThickness, zDelta)
	g.addSingleStabilizer(width-stabWidth, stabHeight, depth, minThickness, totalThickness, zDelta)
}

// addSingleStabilizer emits one assembly at edge offset x: 16 front
// triangles and 16 mirrored back triangles.
func (g *Generator) addSingleStabilizer(x, stabHeight, depth, minThickness, totalThickness, zDelta float32) {
	stabWidth := min(g.border, 4)
	h := stabHeight

	// front support, past the relief surface
	z := totalThickness - minThickness

	// front face, left side
	g.mesh.append(
		vec3.T{x, 0, z + 1 - zDelta},
		vec3.T{x, 0, z + depth},
		vec3.T{x, h, z + 3},

		vec3.T{x, h, z + 3},
		vec3.T{x, h, z + 1 - zDelta},
		vec3.T{x, h - 1, z + 1 - zDelta},

		vec3.T{x, h, z + 3},
		vec3.T{x, h - 1, z + 1 - zDelta},
		vec3.T{x, 0, z + 1 - zDelta},
	)

	// front face, right side
	g.mesh.append(
		vec3.T{x + stabWidth, h, z + 3},
		vec3.T{x + stabWidth, 0, z + depth},
		vec3.T{x + stabWidth, 0, z + 1 - zDelta},

		vec3.T{x + stabWidth, h - 1, z + 1 - zDelta},
		vec3.T{x + stabWidth, h, z + 1 - zDelta},
		vec3.T{x + stabWidth, h, z + 3},

		vec3.T{x + stabWidth, 0, z + 1 - zDelta},
		vec3.T{x + stabWidth, h - 1, z + 1 - zDelta},
		vec3.T{x + stabWidth, h, z + 3},
	)

	// top faces
	g.mesh.append(
		vec3.T{x + 1, h, z + 1 - zDelta},
		vec3.T{x, h, z + 1 - zDelta},
		vec3.T{x, h, z + 3},

		vec3.T{x, h, z + 3},
		vec3.T{x + stabWidth, h, z + 3},
		vec3.T{x + stabWidth, h, z + 1 - zDelta},

		vec3.T{x + stabWidth - 1, h, z + 1 - zDelta},
		vec3.T{x + 1, h, z + 1 - zDelta},
		vec3.T{x, h, z + 3},

		vec3.T{x, h, z + 3},
		vec3.T{x + stabWidth, h, z + 1 - zDelta},
		vec3.T{x + stabWidth - 1, h, z + 1 - zDelta},
	)

	// bottom face
	g.mesh.append(
		vec3.T{x, 0, z + depth},
		vec3.T{x, 0, z + 1 - zDelta},
		vec3.T{x + stabWidth, 0, z + 1 - zDelta},

		vec3.T{x, 0, z + depth},
		vec3.T{x + stabWidth, 0, z + 1 - zDelta},
		vec3.T{x + stabWidth, 0, z + depth},
	)

	// sloped front face
	g.mesh.append(
		vec3.T{x, h, z + 3},
		vec3.T{x, 0, z + depth},
		vec3.T{x + stabWidth, 0, z + depth},

		vec3.T{x, h, z + 3},
		vec3.T{x + stabWidth, 0, z + depth},
		vec3.T{x + stabWidth, h, z + 3},
	)

	// inner connection faces
	g.mesh.append(
		vec3.T{x + 1, h - 1, z + 1 - zDelta},
		vec3.T{x + 1, h, z + 1 - zDelta},
		vec3.T{x + stabWidth - 1, h, z + 1 - zDelta},

		vec3.T{x + 1, h - 1, z + 1 - zDelta},
		vec3.T{x + stabWidth - 1, h, z + 1 - zDelta},
		vec3.T{x + stabWidth - 1, h - 1, z + 1 - zDelta},
	)

	// back support, behind the base plane
	z = -minThickness

	// back face, right side
	g.mesh.append(
		vec3.T{x + stabWidth, 0, z - 1 + zDelta},
		vec3.T{x + stabWidth, 0, z - depth},
		vec3.T{x + stabWidth, h, z - 3},

		vec3.T{x + stabWidth, h, z - 3},
		vec3.T{x + stabWidth, h, z - 1 + zDelta},
		vec3.T{x + stabWidth, h - 1, z - 1 + zDelta},

		vec3.T{x + stabWidth, h, z - 3},
		vec3.T{x + stabWidth, h - 1, z - 1 + zDelta},
		vec3.T{x + stabWidth, 0, z - 1 + zDelta},
	)

	// back face, left side
	g.mesh.append(
		vec3.T{x, h, z - 3},
		vec3.T{x, 0, z - depth},
		vec3.T{x, 0, z - 1 + zDelta},

		vec3.T{x, h - 1, z - 1 + zDelta},
		vec3.T{x, h, z - 1 + zDelta},
		vec3.T{x, h, z - 3},

		vec3.T{x, 0, z - 1 + zDelta},
		vec3.T{x, h - 1, z - 1 + zDelta},
		vec3.T{x, h, z - 3},
	)

	// back top faces
	g.mesh.append(
		vec3.T{x + stabWidth - 1, h, z - 1 + zDelta},
		vec3.T{x + stabWidth, h, z - 1 + zDelta},
		vec3.T{x + stabWidth, h, z - 3},

		vec3.T{x + stabWidth, h, z - 3},
		vec3.T{x, h, z - 3},
		vec3.T{x, h, z - 1 + zDelta},

		vec3.T{x + 1, h, z - 1 + zDelta},
		vec3.T{x + stabWidth - 1, h, z - 1 + zDelta},
		vec3.T{x + stabWidth, h, z - 3},

		vec3.T{x + stabWidth, h, z - 3},
		vec3.T{x, h, z - 1 + zDelta},
		vec3.T{x + 1, h, z - 1 + zDelta},
	)

	// back bottom face
	g.mesh.append(
		vec3.T{x + stabWidth, 0, z - depth},
		vec3.T{x + stabWidth, 0, z - 1 + zDelta},
		vec3.T{x, 0, z - 1 + zDelta},

		vec3.T{x + stabWidth, 0, z - depth},
		vec3.T{x, 0, z - 1 + zDelta},
		vec3.T{x, 0, z - depth},
	)

	// back sloped face
	g.mesh.append(
		vec3.T{x + stabWidth, h, z - 3},
		vec3.T{x + stabWidth, 0, z - depth},
		vec3.T{x, 0, z - depth},

		vec3.T{x + stabWidth, h, z - 3},
		vec3.T{x, 0, z - depth},
		vec3.T{x, h, z - 3},
	)

	// back inner faces
	g.mesh.append(
		vec3.T{x + stabWidth - 1, h - 1, z - 1 + zDelta},
		vec3.T{x + stabWidth - 1, h, z - 1 + zDelta},
		vec3.T{x + 1, h, z - 1 + zDelta},

		vec3.T{x + stabWidth - 1, h - 1, z - 1 + zDelta},
		vec3.T{x + 1, h, z - 1 + zDelta},
		vec3.T{x + 1, h - 1, z - 1 + zDelta},
	)
}
