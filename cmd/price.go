package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/pvshed/pvshed/internal/diagram"
	"github.com/pvshed/pvshed/internal/geometry"
	"github.com/pvshed/pvshed/internal/pricing"
	"github.com/spf13/cobra"
)

var (
	priceBuilding buildingFlags
	pricePanel    panelFlags

	priceStructureRate float64
	pricePanelRate     float64
	priceMarginPct     float64
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Estimate the construction cost of a configured shed",
	Long: `Derive a shed configuration and produce an itemized single-shot
cost estimate: structure, panels, mounting hardware, poles, and margin.
Financing and amortization are out of scope.

Examples:
  pvshed price --type symmetric --width 15 --bays 4 --spacing 6
  pvshed price -t carport-double -w 12 -n 8 --structure-rate 75`,
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)

	priceBuilding.register(priceCmd)
	pricePanel.register(priceCmd)

	priceCmd.Flags().Float64Var(&priceStructureRate, "structure-rate", pricing.DefaultRates.StructurePerM2, "Structure rate (per m² of roof)")
	priceCmd.Flags().Float64Var(&pricePanelRate, "panel-rate", pricing.DefaultRates.PanelUnit, "Panel unit price")
	priceCmd.Flags().Float64Var(&priceMarginPct, "margin-pct", pricing.DefaultRates.MarginPercent, "Margin percentage")
}

func runPrice(cmd *cobra.Command, args []string) error {
	params, err := priceBuilding.params()
	if err != nil {
		return err
	}
	lp, err := pricePanel.layoutParams()
	if err != nil {
		return err
	}
	reg, err := priceBuilding.registry()
	if err != nil {
		return err
	}

	g := geometry.Derive(reg, params, pricePanel.model(), lp, catalog.DefaultRulesetTag)

	rates := pricing.DefaultRates
	rates.StructurePerM2 = priceStructureRate
	rates.PanelUnit = pricePanelRate
	rates.MarginPercent = priceMarginPct

	q := pricing.Estimate(params.Type, g, rates)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COST ESTIMATE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CONFIGURATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s, %.2f m span, %d bays\n", params.Type, params.Width, params.BayCount)
	fmt.Fprintf(w, "  Roof surface:\t%.2f m²\n", g.SurfaceTotal)
	fmt.Fprintf(w, "  Panels:\t%d (%.2f kWc)\n", g.PanelCount, g.PowerKW)
	w.Flush()
	fmt.Println()

	fmt.Println("BREAKDOWN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Structure:\t%.2f\n", q.Structure)
	fmt.Fprintf(w, "  Panels:\t%.2f\n", q.Panels)
	fmt.Fprintf(w, "  Mounting:\t%.2f\n", q.Mounting)
	if q.Poles > 0 {
		fmt.Fprintf(w, "  Poles:\t%.2f\n", q.Poles)
	}
	fmt.Fprintf(w, "  Margin:\t%.2f\n", q.Margin)
	w.Flush()
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("TOTAL", []string{
		fmt.Sprintf("%.2f EUR excl. tax", q.Total),
	}))
	return nil
}
