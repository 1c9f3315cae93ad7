package litho

import "github.com/flywave/go3d/vec3"

// addHangers spaces HangerCount tabs evenly along the top edge. Each
// tab is a 9mm wide, 3mm tall extruded ring with a straight-edged hole
// for a nail or cord: front face at z=0, back face at z=2, and side
// faces joining the two. The ring rises above the frame so height here
// is the top edge of the generated mesh.
func (g *Generator) addHangers(width, height float32) {
	xDelta := (width / float32(g.config.HangerCount)) / 2
	x := xDelta - 4.5 // half the tab width left of each center

	for n := 0; n < g.config.HangerCount; n++ {
		// front face
		g.mesh.append(
			vec3.T{x + 3, height, 0},
			vec3.T{x, height, 0},
			vec3.T{x + 3, height + 3, 0},

			vec3.T{x + 3, height + 3, 0},
			vec3.T{x + 6, height + 3, 0},
			vec3.T{x + 9, height, 0},
		)

		// around the hole
		g.mesh.append(
			vec3.T{x + 9, height, 0},
			vec3.T{x + 6, height, 0},
			vec3.T{x + 5, height + 1, 0},

			vec3.T{x + 4, height + 1, 0},
			vec3.T{x + 3, height, 0},
			vec3.T{x + 3, height + 3, 0},

			vec3.T{x + 3, height + 3, 0},
			vec3.T{x + 9, height, 0},
			vec3.T{x + 5, height + 1, 0},

			vec3.T{x + 3, height + 3, 0},
			vec3.T{x + 5, height + 1, 0},
			vec3.T{x + 4, height + 1, 0},
		)

		// back face at z=2
		g.mesh.append(
			vec3.T{x + 3, height + 3, 2},
			vec3.T{x, height, 2},
			vec3.T{x + 3, height, 2},

			vec3.T{x + 3, height + 3, 2},
			vec3.T{x + 3, height, 2},
			vec3.T{x + 4, height + 1, 2},

			vec3.T{x + 9, height, 2},
			vec3.T{x + 6, height + 3, 2},
			vec3.T{x + 3, height + 3, 2},

			vec3.T{x + 5, height + 1, 2},
			vec3.T{x + 6, height, 2},
			vec3.T{x + 9, height, 2},

			vec3.T{x + 3, height + 3, 2},
			vec3.T{x + 4, height + 1, 2},
			vec3.T{x + 5, height + 1, 2},

			vec3.T{x + 5, height + 1, 2},
			vec3.T{x + 9, height, 2},
			vec3.T{x + 3, height + 3, 2},
		)

		// inner hole sides
		g.mesh.append(
			vec3.T{x + 5, height + 1, 0},
			vec3.T{x + 6, height, 0},
			vec3.T{x + 6, height, 2},

			vec3.T{x + 5, height + 1, 0},
			vec3.T{x + 6, height, 2},
			vec3.T{x + 5, height + 1, 2},
		)

		// top arch
		g.mesh.append(
			vec3.T{x + 6, height + 3, 0},
			vec3.T{x + 3, height + 3, 0},
			vec3.T{x + 3, height + 3, 2},

			vec3.T{x + 6, height + 3, 0},
			vec3.T{x + 3, height + 3, 2},
			vec3.T{x + 6, height + 3, 2},
		)

		x += xDelta * 2
	}
}
