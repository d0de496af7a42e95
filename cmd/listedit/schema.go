package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"listedit/internal/config"
)

var schemaCmd = &cobra.Command{
	Use:                "schema",
	Short:              "Print the JSON schema of the config file",
	PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
	PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	RunE:               runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generating schema: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
