package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmgcanvas/dmgcanvas/pkg/backend"
)

// backendsCmd represents the backends command
var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List rasterization backends and their availability",
	Long: `List every known rasterization backend in default priority order and
report whether its tool is installed on this machine.`,
	Run: runBackends,
}

// runBackends executes the backends command
func runBackends(cmd *cobra.Command, args []string) {
	logger := SetupLogger(GetDebugMode())

	for _, b := range backend.All() {
		status := "not installed"
		if b.Available() {
			status = "available"
		}
		logger.Infof("%-12s %s", b.Name(), status)
	}
}
