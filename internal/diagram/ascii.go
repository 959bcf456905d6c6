package diagram

import (
	"fmt"
	"strings"
)

// SectionData holds everything needed to draw a shed cross-section, as
// seen from the gable end (left edge of the span at x=0).
type SectionData struct {
	// Span geometry (m)
	Width       float64
	LeftEave    float64
	RightEave   float64
	RidgeHeight float64

	// Ridge position from the left edge (0 = no true ridge)
	RidgePosition float64
	TwoPan        bool

	// Intermediate pole rows, offsets from the left edge (m)
	PolePositions []float64

	// PV eligibility per pan (A = right/only pan, B = left pan)
	ZonePVA bool
	ZonePVB bool

	// Layout summary for the legend
	PanelCount int
	PowerKW    float64
}

// roofHeight returns the roof height at horizontal position x.
func (d SectionData) roofHeight(x float64) float64 {
	if d.TwoPan && d.RidgePosition > 0 {
		if x <= d.RidgePosition {
			return d.LeftEave + (d.RidgeHeight-d.LeftEave)*x/d.RidgePosition
		}
		run := d.Width - d.RidgePosition
		return d.RidgeHeight + (d.RightEave-d.RidgeHeight)*(x-d.RidgePosition)/run
	}
	// single pan from left eave to right eave
	return d.LeftEave + (d.RightEave-d.LeftEave)*x/d.Width
}

// DrawCrossSection renders an ASCII cross-section of the shed with walls,
// roof pans, pole rows and a legend.
func DrawCrossSection(d SectionData) string {
	var sb strings.Builder

	widthChars := 60
	heightChars := 16

	maxH := d.LeftEave
	if d.RightEave > maxH {
		maxH = d.RightEave
	}
	if d.RidgeHeight > maxH {
		maxH = d.RidgeHeight
	}
	if maxH <= 0 || d.Width <= 0 {
		return "  (no drawable section)\n"
	}

	xOf := func(col int) float64 { return d.Width * float64(col) / float64(widthChars) }
	rowOf := func(h float64) int { return heightChars - int(h/maxH*float64(heightChars)+0.5) }

	poleCols := make(map[int]bool)
	for _, p := range d.PolePositions {
		poleCols[int(p/d.Width*float64(widthChars)+0.5)] = true
	}
	ridgeCol := -1
	if d.TwoPan && d.RidgePosition > 0 {
		ridgeCol = int(d.RidgePosition / d.Width * float64(widthChars))
	}

	sb.WriteString("\n")
	sb.WriteString("  CROSS-SECTION (left edge at x=0)\n")
	sb.WriteString("  ────────────────────────────────\n")

	for row := 0; row <= heightChars; row++ {
		line := make([]rune, widthChars+1)
		for col := range line {
			line[col] = ' '
		}

		for col := 0; col <= widthChars; col++ {
			x := xOf(col)
			roofRow := rowOf(d.roofHeight(x))

			switch {
			case row == roofRow:
				// roof surface; shade PV-eligible pans
				pv := d.ZonePVA
				if ridgeCol >= 0 && col < ridgeCol {
					pv = d.ZonePVB
				}
				if pv {
					line[col] = '░'
				} else {
					line[col] = '─'
				}
			case row > roofRow && row < heightChars:
				if col == 0 || col == widthChars {
					line[col] = '│'
				} else if poleCols[col] {
					line[col] = '║'
				}
			case row == heightChars:
				line[col] = '─'
			}
		}

		sb.WriteString("  " + string(line))
		if ridgeCol >= 0 && row == rowOf(d.RidgeHeight) {
			sb.WriteString(fmt.Sprintf("  ◄─ ridge at %.2f m", d.RidgePosition))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = PV-eligible pan    ─── = non-eligible pan\n")
	sb.WriteString(fmt.Sprintf("  │ walls at 0 and %.1f m", d.Width))
	if len(d.PolePositions) > 0 {
		offsets := make([]string, len(d.PolePositions))
		for i, p := range d.PolePositions {
			offsets[i] = fmt.Sprintf("%.2f m", p)
		}
		sb.WriteString(fmt.Sprintf("    ║ pole rows at %s", strings.Join(offsets, ", ")))
	}
	sb.WriteString("\n")
	if d.PanelCount > 0 {
		sb.WriteString(fmt.Sprintf("  %d panels, %.2f kWc installed\n", d.PanelCount, d.PowerKW))
	}

	return sb.String()
}

// DrawSummaryBox frames a result summary the way the report commands
// print their headline numbers.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
