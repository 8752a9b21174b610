package cli

import (
	"fmt"

	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore factory preferences",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := resolveHome()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		confirm := ResolveConfirmFunc(yes)

		return runPrefsReset(cmd, homeDir, confirm)
	},
}.Build()

func runPrefsReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm("Reset all preferences to factory settings?")
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}

	if err := prefs.Reset(homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("preferences reset to factory settings"))
	return nil
}
