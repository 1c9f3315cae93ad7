package litho

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/flywave/go3d/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleMesh has three triangles, two of them sharing an edge, so
// vertex deduplication has something to collapse.
func sampleMesh() *Mesh {
	m := NewMesh()
	m.append(
		vec3.T{0, 0, 0},
		vec3.T{10, 0, 0},
		vec3.T{0, 10, 0},

		vec3.T{10, 0, 0},
		vec3.T{10, 10, 0},
		vec3.T{0, 10, 0},

		vec3.T{0, 0, 2.5},
		vec3.T{10, 0, 2.5},
		vec3.T{5, 5, 4},
	)
	return m
}

// generatedMesh runs a clean-numbered generation: grid steps land on
// whole millimeters and depths on tenths, so text formats round-trip
// without fuzz.
func generatedMesh(t *testing.T) *Mesh {
	t.Helper()
	img := grayImage(4, 3, 0)
	for y := 0; y < 3; y++ {
		img.SetGray(0, y, grayColor(255))
		img.SetGray(1, y, grayColor(255))
	}
	mesh, err := NewGenerator(testConfig()).Generate(context.Background(), img, nil)
	require.NoError(t, err)
	return mesh
}

func triKey(a, b, c vec3.T) string {
	return fmt.Sprintf("%.3f,%.3f,%.3f|%.3f,%.3f,%.3f|%.3f,%.3f,%.3f",
		a[0], a[1], a[2], b[0], b[1], b[2], c[0], c[1], c[2])
}

// triangleMultiset keys triangles by their rounded corners so exported
// and re-parsed geometry can be compared as unordered sets.
func triangleMultiset(verts []vec3.T) map[string]int {
	set := make(map[string]int, len(verts)/3)
	for i := 0; i+2 < len(verts); i += 3 {
		set[triKey(verts[i], verts[i+1], verts[i+2])]++
	}
	return set
}

func TestExportersMetadata(t *testing.T) {
	t.Parallel()

	exporters := Exporters()
	require.Len(t, exporters, 5)

	names := make([]string, 0, len(exporters))
	for _, e := range exporters {
		names = append(names, e.Name())
		assert.NotEmpty(t, e.Extension())
		assert.NotContains(t, e.Extension(), ".")
		assert.Contains(t, e.FileFilter(), "*."+e.Extension())
	}
	assert.Equal(t, []string{"STL", "STL (ASCII)", "OBJ", "3MF", "glTF (binary)"}, names)
}

func TestExporterForFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatSTLBinary, FormatSTLASCII, FormatOBJ, Format3MF, FormatGLB} {
		e, err := ExporterForFormat(format)
		require.NoError(t, err, "format %q", format)
		require.NotNil(t, e)
	}

	_, err := ExporterForFormat(Format("amf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestExportRejectsBadMeshes(t *testing.T) {
	t.Parallel()

	for _, e := range Exporters() {
		e := e
		t.Run(e.Name(), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()

			path := filepath.Join(dir, "empty."+e.Extension())
			_, err := e.ExportMesh(NewMesh(), path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyMesh))
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "failed export must not leave a file")

			ragged := NewMesh()
			ragged.append(vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0}, vec3.T{1, 1, 0})
			path = filepath.Join(dir, "ragged."+e.Extension())
			_, err = e.ExportMesh(ragged, path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTriangleCount))
			_, statErr = os.Stat(path)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestExportNilMesh(t *testing.T) {
	t.Parallel()

	e := NewSTLExporter(STLBinary)
	_, err := e.ExportMesh(nil, filepath.Join(t.TempDir(), "nil.stl"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyMesh))
}

func TestExportLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	for _, e := range Exporters() {
		e := e
		t.Run(e.Name(), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			path := filepath.Join(dir, "out."+e.Extension())
			result, err := e.ExportMesh(sampleMesh(), path)
			require.NoError(t, err)
			assert.Greater(t, result.BytesWritten, int64(0))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, filepath.Base(path), entries[0].Name())

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, result.BytesWritten, info.Size())
			assert.Equal(t, os.FileMode(0o644), info.Mode().Perm(), "exports must be world readable")
		})
	}
}

func TestExportOverwritesExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.obj")
	e := NewOBJExporter()

	_, err := e.ExportMesh(sampleMesh(), path)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	small := NewMesh()
	small.append(vec3.T{0, 0, 0}, vec3.T{1, 0, 0}, vec3.T{0, 1, 0})
	_, err = e.ExportMesh(small, path)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestExportMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.stl")
	_, err := NewSTLExporter(STLBinary).ExportMesh(sampleMesh(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open file for writing")
}

func TestDedupVertices(t *testing.T) {
	t.Parallel()

	m := sampleMesh()

	t.Run("zero based", func(t *testing.T) {
		t.Parallel()
		unique, indices := dedupVertices(m, 0)
		assert.Len(t, unique, 7)
		require.Len(t, indices, 9)
		assert.Equal(t, []int{0, 1, 2, 1, 3, 2, 4, 5, 6}, indices)
	})

	t.Run("one based", func(t *testing.T) {
		t.Parallel()
		unique, indices := dedupVertices(m, 1)
		assert.Len(t, unique, 7)
		assert.Equal(t, []int{1, 2, 3, 2, 4, 3, 5, 6, 7}, indices)
	})
}
