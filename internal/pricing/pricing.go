// Package pricing produces single-shot cost estimates for a configured
// shed. Multi-year amortization and financing live in an external
// collaborator; this is the itemized construction quote only.
package pricing

import (
	"math"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/geometry"
)

// Rates are the global pricing parameters shared across estimates.
type Rates struct {
	StructurePerM2   float64 // frame + cladding, per m² of roof surface
	PanelUnit        float64 // per installed panel
	MountingPerPanel float64 // rails, clamps, wiring, per panel
	PolePerUnit      float64 // per intermediate pole
	MarginPercent    float64
}

// DefaultRates reflects the current standard price list (EUR).
var DefaultRates = Rates{
	StructurePerM2:   68,
	PanelUnit:        145,
	MountingPerPanel: 38,
	PolePerUnit:      420,
	MarginPercent:    12,
}

// structureFactor scales the frame rate per structural type: open
// canopies are lighter than closed gables.
var structureFactor = map[catalog.StructuralType]float64{
	catalog.Symmetric:      1.0,
	catalog.Asymmetric:     1.05,
	catalog.AsymmetricPole: 1.1,
	catalog.MonoPitch:      0.95,
	catalog.CarportLeft:    0.8,
	catalog.CarportRight:   0.8,
	catalog.CarportDouble:  0.85,
	catalog.CarportFlat:    0.75,
}

// Quote itemizes the estimate. All amounts are rounded to 2 decimals and
// Total is the exact sum of the lines.
type Quote struct {
	Structure float64
	Panels    float64
	Mounting  float64
	Poles     float64
	Margin    float64
	Total     float64
}

// Estimate prices a derived shed configuration.
func Estimate(t catalog.StructuralType, g geometry.DerivedGeometry, r Rates) Quote {
	factor, ok := structureFactor[t]
	if !ok {
		factor = 1
	}

	q := Quote{
		Structure: round2(g.SurfaceTotal * r.StructurePerM2 * factor),
		Panels:    round2(float64(g.PanelCount) * r.PanelUnit),
		Mounting:  round2(float64(g.PanelCount) * r.MountingPerPanel),
		Poles:     round2(float64(g.PoleCount) * r.PolePerUnit),
	}
	subtotal := q.Structure + q.Panels + q.Mounting + q.Poles
	q.Margin = round2(subtotal * r.MarginPercent / 100)
	q.Total = round2(subtotal + q.Margin)
	return q
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
