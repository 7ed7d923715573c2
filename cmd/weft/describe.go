package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/weft/internal/cli"
	"github.com/aretw0/weft/internal/presentation/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print a human-readable snapshot of the machine",
	Long:  `Renders the state set, alphabet, initial and terminal states and the transition table, grouped by source state.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")

		def, err := cli.LoadDefinition(file, format)
		cli.ExitOnError(err)

		tui.PrintBanner()
		md := tui.DescribeMarkdown(def, def.InitialState())
		fmt.Print(tui.Render(md))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
