package layout

// This file keeps the pt conversion helpers shared with the canvas renderer.
// The renderer treats one canvas unit as one pixel, so font sizes specified
// in pixels are converted to pt only when creating font faces.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// PxToPt converts a pixel-denominated font size to pt for face creation.
func PxToPt(px float64) float64 { return px * MmToPt }
