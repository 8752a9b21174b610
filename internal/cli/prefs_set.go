package cli

import (
	"fmt"

	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsSetCmd = LeafCommand{
	Use:     "set <key> <value>",
	Short:   "Change one preference",
	Example: "coursecal prefs set earlyMorning 8:30\ncoursecal prefs set timestampMode utc",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := resolveHome()
		if err != nil {
			return err
		}
		return runPrefsSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runPrefsSet(cmd *cobra.Command, homeDir, key, value string) error {
	p, err := prefs.Read(homeDir)
	if err != nil {
		return err
	}

	if err := p.Set(key, value); err != nil {
		return err
	}
	if err := prefs.Write(homeDir, p); err != nil {
		return err
	}

	v, _ := p.Get(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", Primary(key), Text("set to"), Primary(v))
	return nil
}
