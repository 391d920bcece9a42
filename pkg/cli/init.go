package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmgcanvas/dmgcanvas/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate example dmgcanvas configuration",
	Long: `Generate an example .dmgcanvas.yaml configuration file in the current directory.
This file contains all the basic configuration sections with example values.`,
	Run: runInit,
}

// runInit executes the init command
func runInit(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := ".dmgcanvas.yaml"

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		logger.Infof("Configuration file %s already exists", configPath)
		os.Exit(0)
	}

	exampleConfig := config.ExampleConfig()

	if err := config.SaveConfig(configPath, exampleConfig); err != nil {
		ExitWithErrorf(logger, "Failed to save configuration: %v", err)
	}

	logger.Infof("Example configuration created: %s", configPath)
	logger.Info("Edit this file to match your installer layout")
}
