// Package panel fits grids of physical PV panels into rectangular roof
// surfaces ("calepinage").
package panel

import "math"

// Model is the physical panel being laid out.
type Model struct {
	Length float64 // long side (m)
	Width  float64 // short side (m)
	PowerW float64 // rated power (W)
}

// DefaultModel is a common 500 W module.
var DefaultModel = Model{Length: 2.278, Width: 1.134, PowerW: 500}

// Orientation selects how the panel's long side is placed on the surface.
type Orientation int

const (
	// OrientationAuto picks whichever orientation fits more panels,
	// portrait winning ties.
	OrientationAuto Orientation = iota
	// OrientationPortrait runs the panel's long side up the rafter.
	OrientationPortrait
	// OrientationLandscape runs the panel's long side along the building.
	OrientationLandscape
)

func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "portrait"
	case OrientationLandscape:
		return "landscape"
	default:
		return "auto"
	}
}

// Parameters tune the layout around the panels.
type Parameters struct {
	Margin      float64 // clearance kept from every surface edge (m)
	Gap         float64 // spacing between adjacent panels (m)
	Orientation Orientation
}

// DefaultParameters matches the standard mounting-rail kit.
var DefaultParameters = Parameters{Margin: 0.3, Gap: 0.02}

// SurfaceLayoutResult is the best-fit grid for one surface.
type SurfaceLayoutResult struct {
	Columns     int // along the building length
	Rows        int // up the rafter
	Count       int
	PowerKW     float64
	Orientation Orientation
}

// fitCount is how many panels of size s, separated by gap, fit in the
// available run. The first panel needs no leading gap, hence the +gap in
// the numerator.
func fitCount(available, size, gap float64) int {
	if size <= 0 {
		return 0
	}
	n := int(math.Floor((available + gap) / (size + gap)))
	if n < 0 {
		return 0
	}
	return n
}

// Layout computes the densest valid panel grid on a rectangular surface.
// surfaceHeight runs up the rafter, surfaceWidth along the building
// length. Degenerate surfaces yield a zero-panel result, never an error.
func Layout(surfaceHeight, surfaceWidth float64, m Model, p Parameters) SurfaceLayoutResult {
	orientation := p.Orientation
	if orientation == OrientationAuto {
		orientation = OrientationPortrait
	}
	zero := SurfaceLayoutResult{Orientation: orientation}

	if surfaceHeight == 0 || surfaceWidth == 0 {
		return zero
	}
	usableH := surfaceHeight - 2*p.Margin
	usableW := surfaceWidth - 2*p.Margin
	if usableH <= 0 || usableW <= 0 {
		return zero
	}

	portrait := grid(usableH, usableW, m.Length, m.Width, p.Gap, OrientationPortrait)
	landscape := grid(usableH, usableW, m.Width, m.Length, p.Gap, OrientationLandscape)

	var best SurfaceLayoutResult
	switch p.Orientation {
	case OrientationPortrait:
		best = portrait
	case OrientationLandscape:
		best = landscape
	default:
		// ties go to portrait
		best = portrait
		if landscape.Count > portrait.Count {
			best = landscape
		}
	}

	best.PowerKW = round2(float64(best.Count) * m.PowerW / 1000)
	return best
}

// grid fills the usable rectangle with panels whose rafter-direction side
// is alongRafter and length-direction side is alongLength.
func grid(usableH, usableW, alongRafter, alongLength, gap float64, o Orientation) SurfaceLayoutResult {
	rows := fitCount(usableH, alongRafter, gap)
	cols := fitCount(usableW, alongLength, gap)
	return SurfaceLayoutResult{
		Columns:     cols,
		Rows:        rows,
		Count:       cols * rows,
		Orientation: o,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
