package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "weft is a deterministic finite state machine engine",
	Long:  `weft loads a machine definition from a CSV or YAML file and runs input symbol sequences against it, reporting each transition and the final acceptance verdict.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "machine.csv", "Machine definition file")
	rootCmd.PersistentFlags().String("format", "", "Definition format: csv or yaml (default: by extension)")
}
