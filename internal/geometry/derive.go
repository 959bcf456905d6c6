package geometry

import (
	"math"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/panel"
)

// Derive computes the full geometry snapshot for p. It is a total
// function: every well-formed input produces a snapshot, with catalog
// misses recovered by variant synthesis and degenerate surfaces yielding
// zero-panel layouts. reg is injected so tests and callers control the
// catalog in use.
func Derive(reg *catalog.Registry, p BuildingParameters, m panel.Model, lp panel.Parameters, rulesetTag string) DerivedGeometry {
	v := reg.ResolveOrSynthesize(p.Type, p.Width)
	props := catalog.PropertiesOf(p.Type)

	leftEave := pick(p.LeftEave, v.LeftEave)
	rightEave := pick(p.RightEave, v.RightEave)
	ridgeHeight := pick(p.RidgeHeight, v.RidgeHeight)

	g := DerivedGeometry{
		Length:          float64(p.BayCount) * p.Spacing,
		TotalWidth:      p.Width + extWidth(p.LeftExtension) + extWidth(p.RightExtension),
		NominalPitchDeg: props.NominalPitchDeg,
		RulesetTag:      rulesetTag,
		Synthesized:     v.Synthesized,
	}

	g.RidgePosition = ridgePosition(props, v, p.Width, leftEave, ridgeHeight)

	// Pan widths: two-pan types split at the ridge, single-pan types put
	// the whole span in pan A.
	if props.TwoPan {
		g.PanWidthA = p.Width - g.RidgePosition
		g.PanWidthB = g.RidgePosition
	} else {
		g.PanWidthA = p.Width
		g.PanWidthB = 0
	}

	// Height deltas: two-pan types pair the ridge with each eave; single
	// pans run from eave to eave.
	if props.TwoPan {
		g.HeightDeltaA = math.Abs(ridgeHeight - rightEave)
		g.HeightDeltaB = math.Abs(ridgeHeight - leftEave)
	} else {
		g.HeightDeltaA = math.Abs(leftEave - rightEave)
		g.HeightDeltaB = 0
	}

	// Exact rafter lengths from the configured heights, not the nominal
	// pitch, so catalog data whose real slope differs still derives
	// consistently.
	g.RafterA = math.Hypot(g.PanWidthA, g.HeightDeltaA)
	if g.PanWidthB > 0 {
		g.RafterB = math.Hypot(g.PanWidthB, g.HeightDeltaB)
	}

	g.SurfaceA = g.Length * g.RafterA
	g.SurfaceB = g.Length * g.RafterB
	g.SurfaceTotal = g.SurfaceA + g.SurfaceB

	g.PolePositions = polePositions(props, v, p.Width, g.RidgePosition)
	g.HasPoles = len(g.PolePositions) > 0
	if g.HasPoles {
		g.PoleCount = len(g.PolePositions) * (p.BayCount + 1)
	}

	g.ZonePVA = pvEligible(props, g.SurfaceA)
	g.ZonePVB = pvEligible(props, g.SurfaceB)

	if g.ZonePVA {
		g.LayoutA = panel.Layout(g.RafterA, g.Length, m, lp)
	}
	if g.ZonePVB {
		g.LayoutB = panel.Layout(g.RafterB, g.Length, m, lp)
	}
	g.PanelCount, g.PowerKW = Totals(g.LayoutA, g.LayoutB)

	g.round()
	return g
}

// ridgePosition resolves the ridge's distance from the left edge per the
// type's rule.
func ridgePosition(props catalog.Properties, v catalog.Variant, width, leftEave, ridgeHeight float64) float64 {
	switch props.RidgeRule {
	case catalog.RidgeCenter:
		return width / 2
	case catalog.RidgeNone:
		return 0
	case catalog.RidgeOffsetLegacy:
		if v.RidgeOffset > 0 {
			return v.RidgeOffset
		}
		if v.ZoneLeft > 0 {
			return v.ZoneLeft
		}
		return ridgeFromPitch(props, leftEave, ridgeHeight)
	default: // RidgeOffset
		if v.RidgeOffset > 0 {
			return v.RidgeOffset
		}
		return ridgeFromPitch(props, leftEave, ridgeHeight)
	}
}

// ridgeFromPitch places the ridge where the type's nominal slope, rising
// from the left eave, reaches the ridge height.
func ridgeFromPitch(props catalog.Properties, leftEave, ridgeHeight float64) float64 {
	t := math.Tan(props.NominalPitchDeg * math.Pi / 180)
	if t == 0 {
		return 0
	}
	return math.Abs(ridgeHeight-leftEave) / t
}

// polePositions resolves the intermediate pole-row offsets, precedence:
// explicit variant offset > legacy zone width > ridge position > the
// type's fractional defaults.
func polePositions(props catalog.Properties, v catalog.Variant, width, ridgePos float64) []float64 {
	switch props.PoleRule {
	case catalog.PoleNever:
		return nil
	case catalog.PoleAboveWidth:
		if width <= catalog.SymmetricPoleMinWidthM {
			return nil
		}
	}

	if v.PoleOffset > 0 {
		return []float64{v.PoleOffset}
	}
	if v.ZoneLeft > 0 {
		return []float64{v.ZoneLeft}
	}
	if ridgePos > 0 {
		return []float64{ridgePos}
	}
	positions := make([]float64, len(props.PoleFractions))
	for i, f := range props.PoleFractions {
		positions[i] = f * width
	}
	return positions
}

// pvEligible: the pan's nominal pitch must sit in the eligibility window,
// except for always-eligible mount-adjusted types; a pan with no physical
// surface never qualifies.
func pvEligible(props catalog.Properties, surface float64) bool {
	if surface <= 0 {
		return false
	}
	if props.AlwaysPV {
		return true
	}
	return catalog.PVEligiblePitch(props.NominalPitchDeg)
}

// pick prefers the configured height, falling back to the catalog value.
func pick(configured, canonical float64) float64 {
	if configured > 0 {
		return configured
	}
	return canonical
}

func extWidth(e *Extension) float64 {
	if e == nil {
		return 0
	}
	return e.Width
}

// round applies the 2-decimal output contract to every numeric field.
func (g *DerivedGeometry) round() {
	g.Length = round2(g.Length)
	g.TotalWidth = round2(g.TotalWidth)
	g.NominalPitchDeg = round2(g.NominalPitchDeg)
	g.RidgePosition = round2(g.RidgePosition)
	g.PanWidthA = round2(g.PanWidthA)
	g.PanWidthB = round2(g.PanWidthB)
	g.HeightDeltaA = round2(g.HeightDeltaA)
	g.HeightDeltaB = round2(g.HeightDeltaB)
	g.RafterA = round2(g.RafterA)
	g.RafterB = round2(g.RafterB)
	g.SurfaceA = round2(g.SurfaceA)
	g.SurfaceB = round2(g.SurfaceB)
	g.SurfaceTotal = round2(g.SurfaceTotal)
	g.PowerKW = round2(g.PowerKW)
	for i, p := range g.PolePositions {
		g.PolePositions[i] = round2(p)
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
