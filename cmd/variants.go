package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/pvshed/pvshed/internal/catalog"
	"github.com/spf13/cobra"
)

var variantsFile string

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Inspect the variant catalog",
	Long: `Inspect the variant catalog that supplies canonical heights and
offsets per (type, width) pair. An override file installed with --file
takes precedence over the built-in catalog for matching keys; this
process keeps overrides in memory only — persisting them is the variant
administration tool's job.`,
}

var variantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog variants",
	RunE:  runVariantsList,
}

var variantsCheckCmd = &cobra.Command{
	Use:   "check <type> <width>",
	Short: "Resolve one (type, width) pair",
	Long: `Resolve a (type, width) pair the way the derivation engine does:
a catalog miss is answered with geometry synthesized from a flat 10°
pitch on 4 m eaves, flagged as such.`,
	Args: cobra.ExactArgs(2),
	RunE: runVariantsCheck,
}

func init() {
	rootCmd.AddCommand(variantsCmd)
	variantsCmd.AddCommand(variantsListCmd)
	variantsCmd.AddCommand(variantsCheckCmd)

	variantsCmd.PersistentFlags().StringVar(&variantsFile, "file", "", "TOML variant override file")
}

func loadRegistry() (*catalog.Registry, error) {
	reg := catalog.NewRegistry()
	if variantsFile == "" {
		return reg, nil
	}
	set, err := catalog.LoadOverrides(variantsFile)
	if err != nil {
		return nil, err
	}
	reg.ReplaceOverrides(set)
	newLogger().Debug("installed variant overrides", "file", variantsFile, "entries", len(set))
	return reg, nil
}

func runVariantsList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	table := catalog.Builtins()
	overrides := reg.Overrides()
	fmt.Println()
	fmt.Printf("VARIANT CATALOG (%d built-in", len(table))
	if len(overrides) > 0 {
		fmt.Printf(", %d overridden", len(overrides))
	}
	fmt.Println("):")
	fmt.Println("───────────────────────────────────────────────────────────────")

	keys := make([]catalog.Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	for k := range overrides {
		if _, builtin := table[k]; !builtin {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].Width < keys[j].Width
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  TYPE\tWIDTH\tEAVES L/R\tRIDGE\tRIDGE OFFSET\tSOURCE")
	for _, k := range keys {
		v, _ := reg.Lookup(k.Type, k.Width)
		source := "built-in"
		if _, ok := overrides[k]; ok {
			source = "override"
		}
		ridgeOffset := "-"
		if v.RidgeOffset > 0 {
			ridgeOffset = fmt.Sprintf("%.2f", v.RidgeOffset)
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%.2f / %.2f\t%.2f\t%s\t%s\n",
			k.Type, k.Width, v.LeftEave, v.RightEave, v.RidgeHeight, ridgeOffset, source)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func runVariantsCheck(cmd *cobra.Command, args []string) error {
	t, err := catalog.ParseType(args[0])
	if err != nil {
		return err
	}
	var width float64
	if _, err := fmt.Sscanf(args[1], "%f", &width); err != nil {
		return fmt.Errorf("invalid width %q", args[1])
	}

	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	v := reg.ResolveOrSynthesize(t, width)

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", v.Type)
	fmt.Fprintf(w, "  Width:\t%.2f m\n", v.Width)
	fmt.Fprintf(w, "  Left / right eave:\t%.2f / %.2f m\n", v.LeftEave, v.RightEave)
	fmt.Fprintf(w, "  Ridge height:\t%.2f m\n", v.RidgeHeight)
	if v.RidgeOffset > 0 {
		fmt.Fprintf(w, "  Ridge offset:\t%.2f m\n", v.RidgeOffset)
	}
	if v.PoleOffset > 0 {
		fmt.Fprintf(w, "  Pole offset:\t%.2f m\n", v.PoleOffset)
	}
	if v.ZoneLeft > 0 || v.ZoneRight > 0 {
		fmt.Fprintf(w, "  Legacy zones:\t%.2f / %.2f m\n", v.ZoneLeft, v.ZoneRight)
	}
	if v.Synthesized {
		fmt.Fprintf(w, "  Source:\tsynthesized (no catalog entry)\n")
	} else {
		fmt.Fprintf(w, "  Source:\tcatalog\n")
	}
	w.Flush()
	fmt.Println()
	return nil
}
