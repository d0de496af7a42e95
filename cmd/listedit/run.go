package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"listedit/internal/clipboard"
	"listedit/internal/replay"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay an edit script without the terminal UI",
	Long: `Reads edit commands one per line from the script file, or from stdin
when no file is given, and prints the resulting list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	}

	runner, err := replay.New(cfg, clipboard.SystemHost{}, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return runner.Run(in)
}
