package geometry

import "github.com/pvshed/pvshed/internal/panel"

// Totals rolls up the per-pan layout results into the snapshot-level panel
// count and installed power. Purely structural.
func Totals(a, b panel.SurfaceLayoutResult) (count int, powerKW float64) {
	return a.Count + b.Count, round2(a.PowerKW + b.PowerKW)
}
