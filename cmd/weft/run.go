package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/weft/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [sequences...]",
	Short: "Run symbol sequences against the machine",
	Long: `Replays each sequence through the machine, printing the transition trace
and whether the machine terminated in an accepting state. Sequences are read
from the arguments, or from stdin (one per line) when none are given.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			Path:      file,
			Format:    format,
			Sequences: args,
			JSON:      jsonMode,
			Debug:     debug,
		}
		cli.ExitOnError(cli.Run(opts, os.Stdin, os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Emit NDJSON results instead of text")
	runCmd.Flags().Bool("debug", false, "Log every transition")

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
}
