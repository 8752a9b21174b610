package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "coursecal",
	Short:        "Export and annotate a saved course registration schedule",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(quarterCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
