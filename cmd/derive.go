package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/diagram"
	"github.com/pvshed/pvshed/internal/geometry"
	"github.com/pvshed/pvshed/internal/panel"
	"github.com/spf13/cobra"
)

var (
	deriveBuilding buildingFlags
	derivePanel    panelFlags

	deriveShowDiagram bool
	deriveExportFile  string
	deriveGridFile    string
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive the full geometry and panel layout of a shed",
	Long: `Derive the complete geometric description of a shed from its
structural parameters: ridge position, pan widths, exact rafter lengths,
roof surfaces, intermediate pole rows, PV eligibility per pan, and the
best-fit panel grid on every eligible surface.

Heights left at 0 fall back to the catalog variant for the (type, width)
pair; unknown pairs are synthesized from a flat 10° pitch on 4 m eaves.

Examples:
  # Symmetric 15 m gable, 4 bays of 6 m
  pvshed derive --type symmetric --width 15 --bays 4 --spacing 6

  # Asymmetric span on its catalog heights, with section diagram
  pvshed derive -t asymmetric-pole -w 25.5 -n 6 --diagram

  # Export the cross-section to an image
  pvshed derive -t mono-pitch -w 10 -n 3 -o section.png`,
	RunE: runDerive,
}

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveBuilding.register(deriveCmd)
	derivePanel.register(deriveCmd)

	deriveCmd.Flags().BoolVar(&deriveShowDiagram, "diagram", false, "Show ASCII cross-section")
	deriveCmd.Flags().StringVarP(&deriveExportFile, "output", "o", "", "Export cross-section to file (png, svg, pdf)")
	deriveCmd.Flags().StringVar(&deriveGridFile, "grid-output", "", "Export pan A panel grid to file (png, svg, pdf)")
}

func runDerive(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	params, err := deriveBuilding.params()
	if err != nil {
		return err
	}
	lp, err := derivePanel.layoutParams()
	if err != nil {
		return err
	}
	reg, err := deriveBuilding.registry()
	if err != nil {
		return err
	}

	m := derivePanel.model()
	g := geometry.Derive(reg, params, m, lp, catalog.DefaultRulesetTag)
	if g.Synthesized {
		logger.Warn("no catalog variant for this type and width; geometry synthesized from a 10° pitch",
			"type", params.Type, "width", params.Width)
	}

	printDerived(params, g)

	if deriveShowDiagram {
		fmt.Println(diagram.DrawCrossSection(sectionData(reg, params, g)))
	}
	if deriveExportFile != "" {
		if err := diagram.ExportCrossSection(sectionData(reg, params, g), deriveExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Cross-section exported to: %s\n", deriveExportFile)
	}
	if deriveGridFile != "" && g.LayoutA.Count > 0 {
		if err := diagram.ExportPanelGrid(g.Length, g.RafterA, g.LayoutA, m, lp, deriveGridFile); err != nil {
			return fmt.Errorf("exporting panel grid: %w", err)
		}
		fmt.Printf("Panel grid exported to: %s\n", deriveGridFile)
	}
	return nil
}

func printDerived(params geometry.BuildingParameters, g geometry.DerivedGeometry) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHED GEOMETRY DERIVATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Structural type:\t%s\n", params.Type)
	fmt.Fprintf(w, "  Span width:\t%.2f m\n", params.Width)
	fmt.Fprintf(w, "  Bays:\t%d × %.2f m\n", params.BayCount, params.Spacing)
	if params.Color != "" {
		fmt.Fprintf(w, "  Color:\t%s\n", params.Color)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length:\t%.2f m\n", g.Length)
	fmt.Fprintf(w, "  Total width:\t%.2f m\n", g.TotalWidth)
	fmt.Fprintf(w, "  Nominal pitch:\t%.2f°\n", g.NominalPitchDeg)
	fmt.Fprintf(w, "  Ridge position:\t%.2f m from left\n", g.RidgePosition)
	fmt.Fprintf(w, "  Pan A (right):\t%.2f m wide, Δh %.2f m, rafter %.2f m\n", g.PanWidthA, g.HeightDeltaA, g.RafterA)
	if g.PanWidthB > 0 {
		fmt.Fprintf(w, "  Pan B (left):\t%.2f m wide, Δh %.2f m, rafter %.2f m\n", g.PanWidthB, g.HeightDeltaB, g.RafterB)
	}
	fmt.Fprintf(w, "  Surface A / B / total:\t%.2f / %.2f / %.2f m²\n", g.SurfaceA, g.SurfaceB, g.SurfaceTotal)
	w.Flush()
	fmt.Println()

	fmt.Println("SUPPORT POLES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if g.HasPoles {
		fmt.Fprintf(w, "  Pole count:\t%d\n", g.PoleCount)
		for i, pos := range g.PolePositions {
			fmt.Fprintf(w, "  Row %d position:\t%.2f m from left\n", i+1, pos)
		}
	} else {
		fmt.Fprintln(w, "  No intermediate poles")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("PHOTOVOLTAIC LAYOUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	printPan(w, "A", g.ZonePVA, g.LayoutA)
	if g.PanWidthB > 0 {
		printPan(w, "B", g.ZonePVB, g.LayoutB)
	}
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("%d panels", g.PanelCount),
		fmt.Sprintf("%.2f kWc installed power", g.PowerKW),
		fmt.Sprintf("%.2f m² of roof", g.SurfaceTotal),
	}))

	if g.Synthesized {
		fmt.Println("  Note: geometry synthesized (no catalog entry for this span).")
		fmt.Println()
	}
}

func printPan(w *tabwriter.Writer, name string, eligible bool, r panel.SurfaceLayoutResult) {
	if !eligible {
		fmt.Fprintf(w, "  Pan %s:\tnot PV-eligible\n", name)
		return
	}
	fmt.Fprintf(w, "  Pan %s:\t%d × %d = %d panels (%s), %.2f kWc\n",
		name, r.Columns, r.Rows, r.Count, r.Orientation, r.PowerKW)
}

// sectionData assembles the diagram input from the resolved variant and
// the derived snapshot.
func sectionData(reg *catalog.Registry, params geometry.BuildingParameters, g geometry.DerivedGeometry) diagram.SectionData {
	v := reg.ResolveOrSynthesize(params.Type, params.Width)
	props := catalog.PropertiesOf(params.Type)

	left := params.LeftEave
	if left == 0 {
		left = v.LeftEave
	}
	right := params.RightEave
	if right == 0 {
		right = v.RightEave
	}
	ridge := params.RidgeHeight
	if ridge == 0 {
		ridge = v.RidgeHeight
	}

	return diagram.SectionData{
		Width:         params.Width,
		LeftEave:      left,
		RightEave:     right,
		RidgeHeight:   ridge,
		RidgePosition: g.RidgePosition,
		TwoPan:        props.TwoPan,
		PolePositions: g.PolePositions,
		ZonePVA:       g.ZonePVA,
		ZonePVB:       g.ZonePVB,
		PanelCount:    g.PanelCount,
		PowerKW:       g.PowerKW,
	}
}
