package cli

import "github.com/spf13/cobra"

var prefsCmd = GroupCommand{
	Use:   "prefs",
	Short: "Manage feature toggles and export settings",
	Subcommands: []*cobra.Command{
		prefsGetCmd,
		prefsSetCmd,
		prefsResetCmd,
	},
}.Build()
