package litho

import (
	"math"

	"github.com/flywave/go3d/vec3"
)

// Mesh is a flat triangle soup: every three consecutive vertices form
// one triangle. No index buffer and no normals are kept at this layer,
// and winding is not guaranteed consistent; downstream consumers must
// treat the triangles as an unordered set. Coordinates are millimeters.
type Mesh struct {
	Vertices []vec3.T
}

func NewMesh() *Mesh {
	return &Mesh{}
}

func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Vertices) == 0
}

// Triangle returns the corners of the i-th triangle.
func (m *Mesh) Triangle(i int) [3]vec3.T {
	return [3]vec3.T{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

func (m *Mesh) append(verts ...vec3.T) {
	m.Vertices = append(m.Vertices, verts...)
}

// Bounds returns the axis-aligned bounding box of all vertices as
// (min, max). An empty mesh yields two zero vectors.
func (m *Mesh) Bounds() (vec3.T, vec3.T) {
	if m.IsEmpty() {
		return vec3.T{}, vec3.T{}
	}
	bmin := vec3.T{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	bmax := vec3.T{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for i := range m.Vertices {
		for c := 0; c < 3; c++ {
			v := m.Vertices[i][c]
			if v < bmin[c] {
				bmin[c] = v
			}
			if v > bmax[c] {
				bmax[c] = v
			}
		}
	}
	return bmin, bmax
}
