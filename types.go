package litho

// Format selects one of the supported export serializations.
type Format string

const (
	FormatSTLBinary Format = "stl_bin"
	FormatSTLASCII  Format = "stl_ascii"
	FormatOBJ       Format = "obj"
	Format3MF       Format = "3mf"
	FormatGLB       Format = "glb"
)

const STL_SIGNATURE string = "go-litho export"
const SOLID_NAME string = "lithophane"
const GLTF_VERSION string = "2.0"

const (
	STLEXT = ".stl"
	OBJEXT = ".obj"
	TMFEXT = ".3mf"
	GLBEXT = ".glb"
)

// ProgressFunc receives coarse generation checkpoints as
// (current, total) pairs. current is non-decreasing and reaches total
// when generation completes. Callbacks run synchronously on the
// generating goroutine and must not block.
type ProgressFunc func(current, total int)
