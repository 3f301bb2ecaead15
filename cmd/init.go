package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"driveshare/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default driveshare config file",
	Long:  `Creates the config file (see --config) with default settings, unless one exists.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	created, err := config.EnsureFile(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	if !created {
		return fmt.Errorf("config file already exists: %s", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
