package litho

import "fmt"

// MeshConfig holds every parameter of a single generation run. It is a
// plain value: copy it, fill it in, pass it to NewGenerator. All
// lengths are millimeters.
type MeshConfig struct {
	MinThickness   float32 // thinnest printed point, the brightest pixels
	TotalThickness float32 // thickest printed point, must exceed MinThickness
	FrameBorder    float32 // frame width around the relief
	Width          float32 // total external width including the frame

	// FrameSlopeFactor sets the bevel depth between the frame front
	// plane and the relief back plane, as a fraction of
	// TotalThickness-MinThickness. Valid range 0 to 1.
	FrameSlopeFactor float32

	EnableStabilizers      bool
	PermanentStabilizers   bool
	StabilizerThreshold    float32 // minimum mesh height before feet are added
	StabilizerHeightFactor float32 // foot height as a fraction of mesh height

	EnableHangers bool
	HangerCount   int

	// Segmentation is reserved for bending support. The knobs are
	// accepted but the backside currently falls back to the flat
	// variant regardless.
	EnableSegmentation bool
	BacksideSegments   int
	FrameSegments      int
}

// DefaultMeshConfig returns the stock configuration: a 200mm wide
// lithophane with a 3mm beveled frame, removable stabilizer feet and
// two hanger tabs.
func DefaultMeshConfig() MeshConfig {
	return MeshConfig{
		MinThickness:           0.8,
		TotalThickness:         4.0,
		FrameBorder:            3.0,
		Width:                  200.0,
		FrameSlopeFactor:       0.75,
		EnableStabilizers:      true,
		PermanentStabilizers:   false,
		StabilizerThreshold:    60.0,
		StabilizerHeightFactor: 0.15,
		EnableHangers:          true,
		HangerCount:            2,
		EnableSegmentation:     false,
		BacksideSegments:       1,
		FrameSegments:          1,
	}
}

// Validate reports the first configuration problem found. Generate
// calls it before touching the raster so degenerate scale factors
// never reach the geometry phases.
func (c *MeshConfig) Validate() error {
	if c.MinThickness <= 0 {
		return fmt.Errorf("%w: min thickness %g must be positive", ErrInvalidConfig, c.MinThickness)
	}
	if c.TotalThickness <= c.MinThickness {
		return fmt.Errorf("%w: total thickness %g must exceed min thickness %g",
			ErrInvalidConfig, c.TotalThickness, c.MinThickness)
	}
	if c.FrameBorder < 0 {
		return fmt.Errorf("%w: frame border %g must not be negative", ErrInvalidConfig, c.FrameBorder)
	}
	if c.Width <= c.FrameBorder*2 {
		return fmt.Errorf("%w: width %g leaves no room inside a %gmm frame",
			ErrInvalidConfig, c.Width, c.FrameBorder)
	}
	if c.FrameSlopeFactor < 0 || c.FrameSlopeFactor > 1 {
		return fmt.Errorf("%w: frame slope factor %g outside [0,1]", ErrInvalidConfig, c.FrameSlopeFactor)
	}
	if c.EnableHangers && c.HangerCount < 1 {
		return fmt.Errorf("%w: hanger count %d must be at least 1", ErrInvalidConfig, c.HangerCount)
	}
	return nil
}
