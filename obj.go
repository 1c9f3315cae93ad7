package litho

import (
	"bufio"
	"fmt"
	"io"
)

// OBJExporter writes Wavefront OBJ with a shared vertex table.
// Vertices are deduplicated at 6 decimal places, which collapses the
// raster grid's repeated corners to roughly a sixth of the raw count.
type OBJExporter struct{}

func NewOBJExporter() *OBJExporter { return &OBJExporter{} }

func (e *OBJExporter) Name() string { return "OBJ" }

func (e *OBJExporter) Extension() string { return "obj" }

func (e *OBJExporter) FileFilter() string { return "Wavefront OBJ (*.obj)" }

func (e *OBJExporter) ExportMesh(mesh *Mesh, path string) (*ExportResult, error) {
	if err := validateMesh(mesh); err != nil {
		return nil, err
	}
	n, err := writeAtomic(path, func(w io.Writer) error {
		return writeOBJ(w, mesh)
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{BytesWritten: n}, nil
}

func writeOBJ(w io.Writer, mesh *Mesh) error {
	bw := bufio.NewWriter(w)

	// OBJ face indices are 1-based.
	unique, indices := dedupVertices(mesh, 1)

	if _, err := fmt.Fprintf(bw, "# go-litho export\n# Triangles: %d\n\no %s\n\n", mesh.TriangleCount(), SOLID_NAME); err != nil {
		return err
	}
	for _, v := range unique {
		if _, err := fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n# Faces\n"); err != nil {
		return err
	}
	for i := 0; i < len(indices); i += 3 {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", indices[i], indices[i+1], indices[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
