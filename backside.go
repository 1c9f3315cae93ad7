package litho

// addBackside closes the relief with two triangles spanning the full
// back rectangle at z = -MinThickness.
func (g *Generator) addBackside(buf *depthBuffer) {
	base := -g.config.MinThickness
	lastX := float32(buf.width - 1)
	lastY := float32(buf.height - 1)

	g.mesh.append(
		g.scaleVertex(0, lastY, base),
		g.scaleVertex(lastX, lastY, base),
		g.scaleVertex(0, 0, base),

		g.scaleVertex(lastX, lastY, base),
		g.scaleVertex(lastX, 0, base),
		g.scaleVertex(0, 0, base),
	)
}

// addSegmentedBackside is the declared hook for bendable lithophanes.
// TODO: split the back plane into BacksideSegments strips; until then
// this intentionally produces the flat variant.
func (g *Generator) addSegmentedBackside(buf *depthBuffer) {
	g.addBackside(buf)
}
