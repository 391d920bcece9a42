package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmgcanvas/dmgcanvas/pkg/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "dmgcanvas",
	Short:   "DMG installer background generator",
	Version: version.VersionInfo(),
	Long: `Dmgcanvas generates the static PNG background for a macOS disk-image
installer window. It templates an SVG with the product name and the
"drag to Applications" instructions, rasterizes it through the first
available tool (rsvg-convert, Inkscape, Quick Look, ImageMagick), and
verifies the output matches the configured pixel dimensions exactly.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Fprintf(os.Stderr, "Error displaying help: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	registerCommands()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	return rootCmd.Execute()
}

// registerCommands initializes flags and registers all subcommands
func registerCommands() {
	rootCmd.PersistentFlags().String("config", ".dmgcanvas.yaml", "config file path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug mode")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(backendsCmd)
}

// GetConfigPath returns the config file path from flags
func GetConfigPath() string {
	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	return configPath
}

// GetDebugMode returns debug mode flag value
func GetDebugMode() bool {
	debug, _ := rootCmd.PersistentFlags().GetBool("debug")
	return debug
}
