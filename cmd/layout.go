package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pvshed/pvshed/internal/diagram"
	"github.com/pvshed/pvshed/internal/panel"
	"github.com/spf13/cobra"
)

var (
	layoutLength float64
	layoutRafter float64
	layoutPanel  panelFlags

	layoutGridFile string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Fit a panel grid into one rectangular roof surface",
	Long: `Run the panel layout engine on a single rectangular surface,
independent of any shed configuration. The surface is described by its
run along the building length and its rafter length.

Examples:
  # 24 m long pan with a 7.66 m rafter
  pvshed layout --length 24 --rafter 7.66

  # Force landscape orientation with a wider margin
  pvshed layout -l 10 -r 3 --orientation landscape --margin 0.2`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().Float64VarP(&layoutLength, "length", "l", 0, "Surface run along the building (m) [required]")
	layoutCmd.Flags().Float64VarP(&layoutRafter, "rafter", "r", 0, "Surface rafter length (m) [required]")
	layoutPanel.register(layoutCmd)
	layoutCmd.Flags().StringVarP(&layoutGridFile, "output", "o", "", "Export the panel grid to file (png, svg, pdf)")

	layoutCmd.MarkFlagRequired("length")
	layoutCmd.MarkFlagRequired("rafter")
}

func runLayout(cmd *cobra.Command, args []string) error {
	lp, err := layoutPanel.layoutParams()
	if err != nil {
		return err
	}
	m := layoutPanel.model()

	result := panel.Layout(layoutRafter, layoutLength, m, lp)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PANEL LAYOUT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Surface:\t%.2f m × %.2f m (length × rafter)\n", layoutLength, layoutRafter)
	fmt.Fprintf(w, "  Panel:\t%.3f m × %.3f m, %.0f W\n", m.Length, m.Width, m.PowerW)
	fmt.Fprintf(w, "  Margin / gap:\t%.2f m / %.2f m\n", lp.Margin, lp.Gap)
	fmt.Fprintf(w, "  Orientation:\t%s\n", lp.Orientation)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("LAYOUT RESULT", []string{
		fmt.Sprintf("%d columns × %d rows = %d panels", result.Columns, result.Rows, result.Count),
		fmt.Sprintf("orientation: %s", result.Orientation),
		fmt.Sprintf("%.2f kWc", result.PowerKW),
	}))

	if layoutGridFile != "" && result.Count > 0 {
		if err := diagram.ExportPanelGrid(layoutLength, layoutRafter, result, m, lp, layoutGridFile); err != nil {
			return fmt.Errorf("exporting panel grid: %w", err)
		}
		fmt.Printf("Panel grid exported to: %s\n", layoutGridFile)
	}
	return nil
}
