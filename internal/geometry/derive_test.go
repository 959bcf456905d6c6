package geometry

import (
	"math"
	"testing"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/panel"
)

func derive(t *testing.T, p BuildingParameters) DerivedGeometry {
	t.Helper()
	return Derive(catalog.NewRegistry(), p, panel.DefaultModel,
		panel.Parameters{Margin: 0.3, Gap: 0.02}, catalog.DefaultRulesetTag)
}

func almost(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDeriveSymmetric15(t *testing.T) {
	// scenario: symmetric, width 15, 4 bays of 6 m
	g := derive(t, BuildingParameters{
		Type:     catalog.Symmetric,
		Width:    15,
		Spacing:  6,
		BayCount: 4,
	})

	if g.Length != 24 {
		t.Errorf("length = %.2f, want 24", g.Length)
	}
	if g.RidgePosition != 7.5 {
		t.Errorf("ridge position = %.2f, want 7.5", g.RidgePosition)
	}
	if g.PanWidthA != 7.5 || g.PanWidthB != 7.5 {
		t.Errorf("pan widths = %.2f / %.2f, want 7.5 / 7.5", g.PanWidthA, g.PanWidthB)
	}
	// catalog variant: eaves 4.5, ridge 6.1
	if g.HeightDeltaA != 1.6 || g.HeightDeltaB != 1.6 {
		t.Errorf("height deltas = %.2f / %.2f, want 1.6 / 1.6", g.HeightDeltaA, g.HeightDeltaB)
	}
	if !g.ZonePVA || !g.ZonePVB {
		t.Error("both pans of a symmetric gable should be PV-eligible")
	}
	if g.Synthesized {
		t.Error("catalog hit flagged as synthesized")
	}
	if g.RulesetTag != catalog.DefaultRulesetTag {
		t.Errorf("ruleset tag not carried: %q", g.RulesetTag)
	}

	// symmetric pans are identical, so both layouts must match
	if g.LayoutA != g.LayoutB {
		t.Errorf("symmetric pans produced different layouts: %+v vs %+v", g.LayoutA, g.LayoutB)
	}
	if g.PanelCount != g.LayoutA.Count+g.LayoutB.Count {
		t.Errorf("panel total %d does not aggregate per-pan counts", g.PanelCount)
	}
}

func TestDeriveAsymmetricPole25(t *testing.T) {
	// scenario: asymmetric-pole, width 25.5, catalog defaults
	// (ridgeOffset 6.55, ridge 8.9, eaves 6.9 / 4)
	g := derive(t, BuildingParameters{
		Type:     catalog.AsymmetricPole,
		Width:    25.5,
		Spacing:  6,
		BayCount: 6,
	})

	if g.PanWidthB != 6.55 {
		t.Errorf("pan B = %.2f, want 6.55", g.PanWidthB)
	}
	if g.PanWidthA != 18.95 {
		t.Errorf("pan A = %.2f, want 18.95", g.PanWidthA)
	}
	if g.HeightDeltaB != 2.0 {
		t.Errorf("delta B = %.2f, want 2.0", g.HeightDeltaB)
	}
	if g.HeightDeltaA != 4.9 {
		t.Errorf("delta A = %.2f, want 4.9", g.HeightDeltaA)
	}

	if !g.HasPoles {
		t.Fatal("asymmetric-pole must carry poles")
	}
	if g.PoleCount != 7 {
		t.Errorf("pole count = %d, want bays+1 = 7", g.PoleCount)
	}
	// no explicit pole offset or legacy zone: the row sits under the ridge
	if len(g.PolePositions) != 1 || g.PolePositions[0] != 6.55 {
		t.Errorf("pole positions = %v, want [6.55]", g.PolePositions)
	}
}

func TestDeriveLengthAndTotalWidth(t *testing.T) {
	for bays := 1; bays <= 20; bays++ {
		for _, spacing := range []float64{catalog.SpacingStandard, catalog.SpacingWide} {
			g := derive(t, BuildingParameters{
				Type: catalog.Symmetric, Width: 15, Spacing: spacing, BayCount: bays,
			})
			if g.Length != float64(bays)*spacing {
				t.Fatalf("bays=%d spacing=%.1f: length %.2f", bays, spacing, g.Length)
			}
		}
	}

	g := derive(t, BuildingParameters{
		Type: catalog.Symmetric, Width: 15, Spacing: 6, BayCount: 2,
		LeftExtension:  &Extension{Kind: "lean-to", Width: 4},
		RightExtension: &Extension{Kind: "awning", Width: 2.5},
	})
	if g.TotalWidth != 21.5 {
		t.Errorf("total width = %.2f, want 15 + 4 + 2.5 = 21.5", g.TotalWidth)
	}
}

func TestDerivePythagoreanInvariant(t *testing.T) {
	params := []BuildingParameters{
		{Type: catalog.Symmetric, Width: 15, Spacing: 6, BayCount: 4},
		{Type: catalog.Symmetric, Width: 25, Spacing: 5, BayCount: 10},
		{Type: catalog.Asymmetric, Width: 15, Spacing: 6, BayCount: 3},
		{Type: catalog.AsymmetricPole, Width: 25.5, Spacing: 6, BayCount: 6},
		{Type: catalog.MonoPitch, Width: 10, Spacing: 5, BayCount: 2},
		{Type: catalog.CarportLeft, Width: 6, Spacing: 5, BayCount: 2},
		{Type: catalog.CarportFlat, Width: 8, Spacing: 5, BayCount: 4},
	}
	// outputs are rounded to 2 decimals, so the exact invariant holds to
	// half a centimeter
	const tol = 0.005 + 1e-9
	for _, p := range params {
		g := derive(t, p)
		if !almost(g.RafterA, math.Hypot(g.PanWidthA, g.HeightDeltaA), tol) {
			t.Errorf("%s/%.1f: rafter A %.4f vs hypot %.4f", p.Type, p.Width, g.RafterA, math.Hypot(g.PanWidthA, g.HeightDeltaA))
		}
		if g.PanWidthB > 0 && !almost(g.RafterB, math.Hypot(g.PanWidthB, g.HeightDeltaB), tol) {
			t.Errorf("%s/%.1f: rafter B %.4f vs hypot %.4f", p.Type, p.Width, g.RafterB, math.Hypot(g.PanWidthB, g.HeightDeltaB))
		}
	}
}

func TestDeriveMonoPitch(t *testing.T) {
	g := derive(t, BuildingParameters{
		Type: catalog.MonoPitch, Width: 10, Spacing: 5, BayCount: 3,
	})

	if g.RidgePosition != 0 {
		t.Errorf("mono-pitch ridge position = %.2f, want 0", g.RidgePosition)
	}
	if g.PanWidthB != 0 || g.SurfaceB != 0 || g.RafterB != 0 {
		t.Errorf("mono-pitch pan B must be empty: width %.2f, surface %.2f", g.PanWidthB, g.SurfaceB)
	}
	if g.ZonePVB {
		t.Error("a pan with no surface is never PV-eligible")
	}
	if g.PanWidthA != 10 {
		t.Errorf("pan A = %.2f, want full span", g.PanWidthA)
	}
	// catalog: eaves 6.1 / 4
	if g.HeightDeltaA != 2.1 {
		t.Errorf("delta A = %.2f, want 2.1", g.HeightDeltaA)
	}
	if g.HasPoles {
		t.Error("mono-pitch has no intermediate poles")
	}
}

func TestDeriveMonoPitchIgnoresRidgeHeight(t *testing.T) {
	// the ridge height must not leak into a single-pan derivation
	base := derive(t, BuildingParameters{Type: catalog.MonoPitch, Width: 10, Spacing: 5, BayCount: 3})
	withRidge := derive(t, BuildingParameters{Type: catalog.MonoPitch, Width: 10, Spacing: 5, BayCount: 3, RidgeHeight: 12})
	if base.PanWidthB != withRidge.PanWidthB || base.RafterA != withRidge.RafterA {
		t.Error("configured ridge height changed mono-pitch geometry")
	}
}

func TestDeriveCarportFlat(t *testing.T) {
	g := derive(t, BuildingParameters{
		Type: catalog.CarportFlat, Width: 6, Spacing: 5, BayCount: 3,
	})

	if !g.ZonePVA {
		t.Error("flat canopy is always PV-eligible (adjustable mounts)")
	}
	if g.HeightDeltaA != 0 {
		t.Errorf("flat delta = %.2f, want 0", g.HeightDeltaA)
	}
	if g.RafterA != 6 {
		t.Errorf("flat rafter = %.2f, want the span width", g.RafterA)
	}
	if !g.HasPoles || len(g.PolePositions) != 1 || g.PolePositions[0] != 3 {
		t.Errorf("flat canopy pole row = %v, want [3] (center)", g.PolePositions)
	}
}

func TestDeriveCarportDouble(t *testing.T) {
	g := derive(t, BuildingParameters{
		Type: catalog.CarportDouble, Width: 12, Spacing: 5, BayCount: 4,
	})

	if len(g.PolePositions) != 2 || g.PolePositions[0] != 3 || g.PolePositions[1] != 9 {
		t.Errorf("double canopy pole rows = %v, want [3 9] (both quarters)", g.PolePositions)
	}
	if g.PoleCount != 10 {
		t.Errorf("pole count = %d, want 2 rows × (bays+1) = 10", g.PoleCount)
	}
	if g.RidgePosition != 0 {
		t.Errorf("canopy ridge position = %.2f, want 0", g.RidgePosition)
	}
}

func TestDeriveCarportLeaning(t *testing.T) {
	left := derive(t, BuildingParameters{Type: catalog.CarportLeft, Width: 8, Spacing: 5, BayCount: 2})
	if len(left.PolePositions) != 1 || left.PolePositions[0] != 2 {
		t.Errorf("left canopy pole = %v, want [2] (quarter from left)", left.PolePositions)
	}

	right := derive(t, BuildingParameters{Type: catalog.CarportRight, Width: 8, Spacing: 5, BayCount: 2})
	if len(right.PolePositions) != 1 || right.PolePositions[0] != 6 {
		t.Errorf("right canopy pole = %v, want [6] (quarter from right)", right.PolePositions)
	}
}

func TestDeriveSymmetricPoleThreshold(t *testing.T) {
	narrow := derive(t, BuildingParameters{Type: catalog.Symmetric, Width: 20, Spacing: 5, BayCount: 2})
	if narrow.HasPoles {
		t.Error("symmetric 20 m span must not carry poles")
	}
	wide := derive(t, BuildingParameters{Type: catalog.Symmetric, Width: 25, Spacing: 5, BayCount: 2})
	if !wide.HasPoles {
		t.Error("symmetric 25 m span must carry a mid-span pole row")
	}
	if len(wide.PolePositions) != 1 || wide.PolePositions[0] != 12.5 {
		t.Errorf("pole row = %v, want [12.5] (under the ridge)", wide.PolePositions)
	}
}

func TestDeriveAsymmetricRidgeFormulaFallback(t *testing.T) {
	// no catalog entry for this width: variant is synthesized, then the
	// ridge falls back to |ridge − leftEave| / tan(nominal) with the
	// configured heights
	p := BuildingParameters{
		Type: catalog.Asymmetric, Width: 14, Spacing: 5, BayCount: 2,
		LeftEave: 5, RightEave: 4, RidgeHeight: 6,
	}
	g := derive(t, p)
	if !g.Synthesized {
		t.Fatal("expected synthesized flag for uncataloged width")
	}
	nominal := catalog.PropertiesOf(catalog.Asymmetric).NominalPitchDeg
	want := round2(math.Abs(6-5) / math.Tan(nominal*math.Pi/180))
	if g.RidgePosition != want {
		t.Errorf("ridge position = %.2f, want %.2f from the pitch formula", g.RidgePosition, want)
	}
}

func TestDeriveLegacyZonePrecedence(t *testing.T) {
	// asymmetric-pole prefers explicit offset, then the legacy zone width
	reg := catalog.NewRegistry()
	reg.ReplaceOverrides(map[catalog.Key]catalog.Variant{
		{Type: catalog.AsymmetricPole, Width: 22}: {
			Type: catalog.AsymmetricPole, Width: 22,
			LeftEave: 6.5, RightEave: 4, RidgeHeight: 8,
			ZoneLeft: 5.5, ZoneRight: 16.5,
		},
	})
	g := Derive(reg, BuildingParameters{
		Type: catalog.AsymmetricPole, Width: 22, Spacing: 5, BayCount: 2,
	}, panel.DefaultModel, panel.Parameters{Margin: 0.3, Gap: 0.02}, catalog.DefaultRulesetTag)

	if g.RidgePosition != 5.5 {
		t.Errorf("ridge position = %.2f, want legacy zone width 5.5", g.RidgePosition)
	}
	if len(g.PolePositions) != 1 || g.PolePositions[0] != 5.5 {
		t.Errorf("pole row = %v, want [5.5]", g.PolePositions)
	}
}

func TestDeriveExplicitPoleOffsetWins(t *testing.T) {
	reg := catalog.NewRegistry()
	reg.ReplaceOverrides(map[catalog.Key]catalog.Variant{
		{Type: catalog.AsymmetricPole, Width: 22}: {
			Type: catalog.AsymmetricPole, Width: 22,
			LeftEave: 6.5, RightEave: 4, RidgeHeight: 8,
			RidgeOffset: 5.5, PoleOffset: 7.2, ZoneLeft: 5.5,
		},
	})
	g := Derive(reg, BuildingParameters{
		Type: catalog.AsymmetricPole, Width: 22, Spacing: 5, BayCount: 2,
	}, panel.DefaultModel, panel.Parameters{Margin: 0.3, Gap: 0.02}, catalog.DefaultRulesetTag)

	if len(g.PolePositions) != 1 || g.PolePositions[0] != 7.2 {
		t.Errorf("pole row = %v, want explicit offset [7.2]", g.PolePositions)
	}
}

func TestDeriveNarrowSurfaceYieldsZeroPanels(t *testing.T) {
	// rafter shorter than twice the margin: layout recovers with zero
	// panels, never an error
	g := Derive(catalog.NewRegistry(), BuildingParameters{
		Type: catalog.CarportFlat, Width: 0.5, Spacing: 5, BayCount: 2,
	}, panel.DefaultModel, panel.Parameters{Margin: 0.3, Gap: 0.02}, catalog.DefaultRulesetTag)

	if g.PanelCount != 0 || g.PowerKW != 0 {
		t.Errorf("expected zero panels on a degenerate surface, got %d / %.2f kW", g.PanelCount, g.PowerKW)
	}
}

func TestDeriveRecomputesWholesale(t *testing.T) {
	p := BuildingParameters{Type: catalog.Symmetric, Width: 15, Spacing: 6, BayCount: 4}
	a := derive(t, p)
	p.BayCount = 5
	b := derive(t, p)
	if b.Length != 30 {
		t.Errorf("length = %.2f, want 30 after bay change", b.Length)
	}
	if a.Length != 24 {
		t.Error("earlier snapshot mutated by recomputation")
	}
}

func TestTotals(t *testing.T) {
	a := panel.SurfaceLayoutResult{Count: 60, PowerKW: 30}
	b := panel.SurfaceLayoutResult{Count: 18, PowerKW: 9}
	count, power := Totals(a, b)
	if count != 78 || power != 39 {
		t.Errorf("Totals = %d / %.2f, want 78 / 39.00", count, power)
	}
}
