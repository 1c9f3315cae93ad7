package litho

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// STLFormat selects the binary or ASCII flavor of STL output.
type STLFormat int

const (
	STLBinary STLFormat = iota
	STLASCII
)

// STLExporter writes STL, the least common denominator of slicers.
// Binary STL stores a zeroed normal per facet and lets consumers
// recompute normals from winding, which every slicer does anyway.
type STLExporter struct {
	format STLFormat
}

func NewSTLExporter(format STLFormat) *STLExporter {
	return &STLExporter{format: format}
}

func (e *STLExporter) Name() string {
	if e.format == STLASCII {
		return "STL (ASCII)"
	}
	return "STL"
}

func (e *STLExporter) Extension() string { return "stl" }

func (e *STLExporter) FileFilter() string { return "STL Files (*.stl)" }

func (e *STLExporter) ExportMesh(mesh *Mesh, path string) (*ExportResult, error) {
	if err := validateMesh(mesh); err != nil {
		return nil, err
	}
	n, err := writeAtomic(path, func(w io.Writer) error {
		if e.format == STLASCII {
			return writeASCIISTL(w, mesh)
		}
		return writeBinarySTL(w, mesh)
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{BytesWritten: n}, nil
}

func writeBinarySTL(w io.Writer, mesh *Mesh) error {
	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], STL_SIGNATURE)
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(mesh.TriangleCount()))
	if _, err := bw.Write(count[:]); err != nil {
		return err
	}

	// 12 bytes zeroed normal, 36 bytes vertices, 2 bytes attribute.
	var tri [50]byte
	for i := 0; i < len(mesh.Vertices); i += 3 {
		off := 12
		for j := 0; j < 3; j++ {
			v := mesh.Vertices[i+j]
			binary.LittleEndian.PutUint32(tri[off:], math.Float32bits(v[0]))
			binary.LittleEndian.PutUint32(tri[off+4:], math.Float32bits(v[1]))
			binary.LittleEndian.PutUint32(tri[off+8:], math.Float32bits(v[2]))
			off += 12
		}
		if _, err := bw.Write(tri[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeASCIISTL(w io.Writer, mesh *Mesh) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "solid %s\n", SOLID_NAME); err != nil {
		return err
	}
	for i := 0; i < len(mesh.Vertices); i += 3 {
		if _, err := bw.WriteString("facet normal 0.0 0.0 0.0\n\touter loop\n"); err != nil {
			return err
		}
		for j := 0; j < 3; j++ {
			v := mesh.Vertices[i+j]
			if _, err := fmt.Fprintf(bw, "\t\tvertex %.6g %.6g %.6g\n", v[0], v[1], v[2]); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\tendloop\nendfacet\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("endsolid\n"); err != nil {
		return err
	}
	return bw.Flush()
}
