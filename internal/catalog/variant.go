package catalog

import "math"

// Variant is the canonical defining geometry for one (type, width) catalog
// entry. Optional fields use 0 as "not set"; none of them is meaningful at
// zero.
type Variant struct {
	Type  StructuralType
	Width float64 // span width (m)

	// Defining heights (m)
	LeftEave    float64
	RightEave   float64
	RidgeHeight float64

	// Optional explicit ridge offset from the left edge (m).
	RidgeOffset float64
	// Optional explicit pole-row offset from the left edge (m).
	PoleOffset float64
	// Legacy zone widths from older catalog revisions (m); ZoneLeft still
	// participates in ridge and pole resolution for AsymmetricPole.
	ZoneLeft  float64
	ZoneRight float64

	// Synthesized marks a variant fabricated by ResolveOrSynthesize
	// rather than found in the catalog.
	Synthesized bool
}

// Key identifies a catalog entry.
type Key struct {
	Type  StructuralType
	Width float64
}

// synthesize fabricates a usable variant for an uncataloged (type, width)
// pair: fixed 4 m eaves and a flat 10° pitch on whatever pan topology the
// type has.
func synthesize(t StructuralType, width float64) Variant {
	rise := math.Tan(SynthesisPitchDeg*math.Pi/180) // per meter of run

	v := Variant{
		Type:        t,
		Width:       width,
		LeftEave:    SynthesisEaveM,
		RightEave:   SynthesisEaveM,
		RidgeHeight: SynthesisEaveM,
		Synthesized: true,
	}

	props := PropertiesOf(t)
	switch {
	case props.TwoPan:
		v.RidgeHeight = SynthesisEaveM + rise*width/2
	case t == CarportFlat:
		// flat stays flat
	default:
		// single sloped pan: raise the left eave over the full run
		v.LeftEave = SynthesisEaveM + rise*width
	}
	return v
}
