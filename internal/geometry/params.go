// Package geometry derives the complete geometric description of a shed
// from its building parameters: pitch lengths, ridge position, pan widths,
// rafter lengths, pole rows, PV eligibility, and the fitted panel grids.
package geometry

import (
	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/panel"
)

// Extension is an optional lean-to added on one side of the main span.
type Extension struct {
	Kind  string  // e.g. "lean-to", "awning"
	Width float64 // m
}

// BuildingParameters is the user-facing configuration of a shed. It is
// owned and mutated by the calling workflow layer; this package only reads
// it. Width/type pairing and spacing validity are enforced upstream.
type BuildingParameters struct {
	Type     catalog.StructuralType
	Width    float64 // main span width (m)
	Spacing  float64 // bay spacing (m)
	BayCount int     // 1–20

	// Defining heights (m). A zero height falls back to the catalog
	// variant's canonical value.
	LeftEave    float64
	RightEave   float64
	RidgeHeight float64

	LeftExtension  *Extension
	RightExtension *Extension

	Color string // structure RAL color, display metadata
}

// DerivedGeometry is the read-only computed snapshot. It is recomputed in
// full on every parameter or registry change, never patched in place. All
// numeric fields are rounded to 2 decimals.
type DerivedGeometry struct {
	Length     float64 // bayCount × spacing (m)
	TotalWidth float64 // span + extensions (m)

	// NominalPitchDeg is the type's fixed display pitch. It is metadata:
	// rafter math below uses the configured heights, which may imply a
	// different slope.
	NominalPitchDeg float64

	// RidgePosition is the ridge's distance from the left edge; 0 for
	// single-pan and canopy types.
	RidgePosition float64

	// Pan A is the right-hand (or only) pan, pan B the left-hand pan.
	PanWidthA    float64
	PanWidthB    float64
	HeightDeltaA float64
	HeightDeltaB float64
	RafterA      float64
	RafterB      float64
	SurfaceA     float64
	SurfaceB     float64
	SurfaceTotal float64

	HasPoles      bool
	PoleCount     int
	PolePositions []float64 // row offsets from the left edge (m)

	ZonePVA bool
	ZonePVB bool

	LayoutA     panel.SurfaceLayoutResult
	LayoutB     panel.SurfaceLayoutResult
	PanelCount  int
	PowerKW     float64

	// RulesetTag records the rule revision that produced this snapshot;
	// Synthesized reports that the catalog variant was fabricated rather
	// than found.
	RulesetTag  string
	Synthesized bool
}
