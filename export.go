package litho

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/flywave/go3d/vec3"
)

var (
	ErrEmptyMesh            = errors.New("empty mesh")
	ErrInvalidTriangleCount = errors.New("invalid mesh: vertex count not divisible by 3")
	ErrPackaging            = errors.New("failed to create 3mf archive")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrUnknownFormat        = errors.New("unknown export format")
)

// ExportResult reports a completed export.
type ExportResult struct {
	BytesWritten int64
}

// Exporter serializes a triangle mesh into one file format. Exporters
// always replace the destination; confirming overwrites is the
// caller's business. A failed export leaves no file behind.
type Exporter interface {
	// ExportMesh writes mesh to path.
	ExportMesh(mesh *Mesh, path string) (*ExportResult, error)
	// Name is the short format name.
	Name() string
	// Extension is the canonical file extension without the dot.
	Extension() string
	// FileFilter is a file dialog filter string.
	FileFilter() string
}

// Exporters returns one instance of every available exporter, in a
// fixed order suitable for format pickers.
func Exporters() []Exporter {
	return []Exporter{
		NewSTLExporter(STLBinary),
		NewSTLExporter(STLASCII),
		NewOBJExporter(),
		NewThreeMFExporter(),
		NewGLBExporter(),
	}
}

// ExporterForFormat resolves a Format constant to its exporter.
func ExporterForFormat(format Format) (Exporter, error) {
	switch format {
	case FormatSTLBinary:
		return NewSTLExporter(STLBinary), nil
	case FormatSTLASCII:
		return NewSTLExporter(STLASCII), nil
	case FormatOBJ:
		return NewOBJExporter(), nil
	case Format3MF:
		return NewThreeMFExporter(), nil
	case FormatGLB:
		return NewGLBExporter(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func validateMesh(m *Mesh) error {
	if m.IsEmpty() {
		return ErrEmptyMesh
	}
	if len(m.Vertices)%3 != 0 {
		return ErrInvalidTriangleCount
	}
	return nil
}

// writeAtomic streams write's output into a temporary file next to
// path and renames it over path once everything succeeded. On any
// failure the temporary file is removed and the destination is left
// untouched. Returns the number of bytes handed to the writer.
func writeAtomic(path string, write func(w io.Writer) error) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".litho-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("cannot open file for writing: %w", err)
	}
	cw := &countingWriter{writer: tmp}

	err = tmp.Chmod(0o644)
	if err == nil {
		err = write(cw)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return 0, err
	}
	return cw.size, nil
}

// countingWriter tracks how many bytes pass through so exporters can
// report written sizes without stat-ing the destination afterwards.
type countingWriter struct {
	writer io.Writer
	size   int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.writer.Write(p)
	w.size += int64(n)
	return n, err
}

// dedupVertices collapses vertices whose coordinates match after
// rounding to 6 decimal places, preserving first-seen order. base is
// the index of the first unique vertex: 1 for OBJ, 0 for 3MF and glTF.
// The second return value maps every mesh vertex to its table index.
func dedupVertices(mesh *Mesh, base int) ([]vec3.T, []int) {
	seen := make(map[string]int, len(mesh.Vertices)/4)
	unique := make([]vec3.T, 0, len(mesh.Vertices)/4)
	indices := make([]int, 0, len(mesh.Vertices))
	for _, v := range mesh.Vertices {
		key := vertexKey(v)
		idx, ok := seen[key]
		if !ok {
			idx = len(unique) + base
			seen[key] = idx
			unique = append(unique, v)
		}
		indices = append(indices, idx)
	}
	return unique, indices
}

func vertexKey(v vec3.T) string {
	return fmt.Sprintf("%.6f_%.6f_%.6f", v[0], v[1], v[2])
}
