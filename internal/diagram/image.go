package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pvshed/pvshed/internal/panel"
)

var (
	pvFill    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	pvOutline = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	poleColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportCrossSection exports the shed cross-section to an image file.
// The format follows the file extension (png, svg, pdf); anything else
// falls back to png.
func ExportCrossSection(d SectionData, filename string) error {
	p := plot.New()
	p.Title.Text = "Shed Cross-Section"
	p.X.Label.Text = "Width (m)"
	p.Y.Label.Text = "Height (m)"

	// Outline: ground, left wall, roof profile, right wall
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: 0, Y: d.LeftEave},
	}
	if d.TwoPan && d.RidgePosition > 0 {
		outline = append(outline, plotter.XY{X: d.RidgePosition, Y: d.RidgeHeight})
	}
	outline = append(outline,
		plotter.XY{X: d.Width, Y: d.RightEave},
		plotter.XY{X: d.Width, Y: 0},
		plotter.XY{X: 0, Y: 0},
	)

	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Shade PV-eligible pans as thick bands on the roof profile
	if d.ZonePVB && d.RidgePosition > 0 {
		if err := addPanBand(p, 0, d.LeftEave, d.RidgePosition, d.RidgeHeight); err != nil {
			return err
		}
	}
	if d.ZonePVA {
		x0, y0 := d.RidgePosition, d.RidgeHeight
		if !d.TwoPan || d.RidgePosition == 0 {
			x0, y0 = 0, d.LeftEave
		}
		if err := addPanBand(p, x0, y0, d.Width, d.RightEave); err != nil {
			return err
		}
	}

	// Intermediate pole rows
	for _, pos := range d.PolePositions {
		poleLine, err := plotter.NewLine(plotter.XYs{
			{X: pos, Y: 0},
			{X: pos, Y: d.roofHeight(pos)},
		})
		if err != nil {
			return err
		}
		poleLine.LineStyle.Width = vg.Points(2.5)
		poleLine.LineStyle.Color = poleColor
		poleLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(poleLine)
	}

	if d.TwoPan && d.RidgePosition > 0 {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: d.RidgePosition, Y: d.RidgeHeight}},
			Labels: []string{fmt.Sprintf("ridge %.2fm", d.RidgeHeight)},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	return save(p, filename)
}

// addPanBand draws a PV-eligible pan as a shaded band following the roof
// slope.
func addPanBand(p *plot.Plot, x0, y0, x1, y1 float64) error {
	const thickness = 0.18
	band, err := plotter.NewPolygon(plotter.XYs{
		{X: x0, Y: y0},
		{X: x1, Y: y1},
		{X: x1, Y: y1 + thickness},
		{X: x0, Y: y0 + thickness},
	})
	if err != nil {
		return err
	}
	band.Color = pvFill
	band.LineStyle.Color = pvOutline
	p.Add(band)
	return nil
}

// ExportPanelGrid exports a roof-plan view of one pan with its fitted
// panel grid.
func ExportPanelGrid(length, rafter float64, res panel.SurfaceLayoutResult, m panel.Model, lp panel.Parameters, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Panel Layout — %d panels (%s)", res.Count, res.Orientation)
	p.X.Label.Text = "Building length (m)"
	p.Y.Label.Text = "Rafter (m)"

	surface := plotter.XYs{
		{X: 0, Y: 0},
		{X: length, Y: 0},
		{X: length, Y: rafter},
		{X: 0, Y: rafter},
		{X: 0, Y: 0},
	}
	surfaceLine, err := plotter.NewLine(surface)
	if err != nil {
		return err
	}
	surfaceLine.LineStyle.Width = vg.Points(2)
	surfaceLine.LineStyle.Color = color.Black
	p.Add(surfaceLine)

	alongRafter, alongLength := m.Length, m.Width
	if res.Orientation == panel.OrientationLandscape {
		alongRafter, alongLength = m.Width, m.Length
	}

	for row := 0; row < res.Rows; row++ {
		for col := 0; col < res.Columns; col++ {
			x := lp.Margin + float64(col)*(alongLength+lp.Gap)
			y := lp.Margin + float64(row)*(alongRafter+lp.Gap)
			rect, err := plotter.NewPolygon(plotter.XYs{
				{X: x, Y: y},
				{X: x + alongLength, Y: y},
				{X: x + alongLength, Y: y + alongRafter},
				{X: x, Y: y + alongRafter},
			})
			if err != nil {
				return err
			}
			rect.Color = pvFill
			rect.LineStyle.Color = pvOutline
			p.Add(rect)
		}
	}

	return save(p, filename)
}

func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
