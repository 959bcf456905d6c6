package cmd

import (
	"fmt"

	"github.com/pvshed/pvshed/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pvshed",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pvshed v%s\n", version.Version)
		fmt.Println("Photovoltaic Shed Configurator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
