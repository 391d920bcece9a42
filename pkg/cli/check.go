package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmgcanvas/dmgcanvas/pkg/config"
	dmgContext "github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/pipeline"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration file",
	Long: `Validate the .dmgcanvas.yaml configuration file.
This command checks for syntax errors, required fields, and validates
the configuration against expected patterns and constraints.`,
	Run: runCheck,
}

// runCheck executes the check command
func runCheck(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := GetConfigPath()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	logger.Info("Configuration loaded successfully")

	ctx := dmgContext.NewContext(context.Background(), cfg, logger)

	if err := pipeline.RunValidation(ctx); err != nil {
		ExitWithErrorf(logger, "Configuration validation failed: %v", err)
	}

	logger.Info("Configuration is valid")
}
