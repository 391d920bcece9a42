package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmgcanvas/dmgcanvas/pkg/config"
	dmgContext "github.com/dmgcanvas/dmgcanvas/pkg/context"
	"github.com/dmgcanvas/dmgcanvas/pkg/pipeline"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the DMG background image",
	Long: `Generate the DMG background image.
This command validates configuration, writes the SVG template, rasterizes
it through the first available backend, and verifies the PNG's pixel
dimensions exactly match the configured canvas.`,
	Run: runGenerate,
}

// runGenerate executes the generate command
func runGenerate(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())
	configPath := GetConfigPath()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		ExitWithErrorf(logger, "Failed to load configuration: %v", err)
	}

	ctx := dmgContext.NewContext(context.Background(), cfg, logger)

	if err := pipeline.RunAll(ctx); err != nil {
		ExitWithErrorf(logger, "Generation failed: %v", err)
	}

	logger.Infof("Background ready: %s (%dx%d, backend %s)",
		ctx.Artifacts.PNGPath, ctx.Artifacts.Width, ctx.Artifacts.Height, ctx.Artifacts.Backend)
}
