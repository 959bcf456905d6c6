package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pvshed/pvshed/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pvshed",
	Short: "Photovoltaic Shed Configurator",
	Long: `pvshed - Photovoltaic Shed Configurator

A CLI tool for configuring agricultural and industrial shed structures
fitted with rooftop photovoltaic panels.

Given a structural type, span width, bay layout and defining heights,
pvshed derives the complete building geometry (ridge position, pan
widths, rafter lengths, pole rows, PV eligibility) and fits the densest
valid panel grid into each eligible roof surface.

Eight structural types are supported: symmetric and asymmetric gables
(with or without a mid-span pole row), mono-pitch sheds, and four
carport/canopy variants.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   pvshed v%-48s║\n", version.Version)
		fmt.Println("  ║   Photovoltaic Shed Configurator                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Derive shed geometry and solar panel layouts from a handful")
		fmt.Println("  of structural parameters.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Eight roof topologies (gables, mono-pitch, canopies)")
		fmt.Println("    • Exact rafter and surface computation per roof pan")
		fmt.Println("    • Panel layout with portrait/landscape auto-selection")
		fmt.Println("    • Variant catalog with TOML override files")
		fmt.Println("    • Cost estimation and section diagrams")
		fmt.Println()
		fmt.Println("  Use 'pvshed --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger builds the command logger; debug level under --verbose.
func newLogger() *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
