package cli

import (
	"fmt"

	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/spf13/cobra"
)

var prefsGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show one preference, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := resolveHome()
		if err != nil {
			return err
		}
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return runPrefsGet(cmd, homeDir, key)
	},
}.Build()

func runPrefsGet(cmd *cobra.Command, homeDir, key string) error {
	p, err := prefs.Read(homeDir)
	if err != nil {
		return err
	}

	if key != "" {
		v, err := p.Get(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	}

	for _, k := range prefs.Keys() {
		v, _ := p.Get(k)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", Primary(k), Text(v))
	}
	return nil
}
