package cli

import (
	"fmt"

	"github.com/Flyrell/coursecal/internal/quarter"
	"github.com/Flyrell/coursecal/internal/snapshot"
	"github.com/spf13/cobra"
)

const quarterDateLayout = "Mon Jan 2, 2006"

var quarterCmd = LeafCommand{
	Use:     "quarter [label]",
	Short:   "List known quarters or resolve a term label to its instruction dates",
	Example: "coursecal quarter \"Winter Quarter 2025\"\ncoursecal quarter --page schedule.html",
	Args:    cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "page", Usage: "saved registration page to detect the term from"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(false)
		if err != nil {
			return err
		}
		defer env.close()

		pagePath, _ := cmd.Flags().GetString("page")
		switch {
		case len(args) == 1:
			return runQuarterResolve(cmd, env.quarters, args[0])
		case pagePath != "":
			page, err := snapshot.Open(pagePath)
			if err != nil {
				return err
			}
			return runQuarterResolve(cmd, env.quarters, page.TermLabel())
		default:
			return runQuarterList(cmd, env.quarters)
		}
	},
}.Build()

func runQuarterList(cmd *cobra.Command, cal *quarter.Calendar) error {
	out := cmd.OutOrStdout()
	for _, e := range cal.Entries() {
		w, err := e.Window()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%-22s %s\n", Primary(w.Label), Text(formatWindow(w)))
	}
	fb := cal.Fallback()
	_, _ = fmt.Fprintf(out, "\n%s\n", Silent("fallback for unknown terms: "+fb.Label))
	return nil
}

func runQuarterResolve(cmd *cobra.Command, cal *quarter.Calendar, label string) error {
	out := cmd.OutOrStdout()

	w, ok := cal.Lookup(label)
	if !ok {
		w = cal.Fallback()
		switch label {
		case "":
			_, _ = fmt.Fprintf(out, "%s\n", Warning("no term label found, using fallback"))
		default:
			_, _ = fmt.Fprintf(out, "%s\n", Warning(fmt.Sprintf("unknown term %q, using fallback", label)))
		}
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", Primary(w.Label), Text(formatWindow(w)))
	_, _ = fmt.Fprintf(out, "%s\n", Silent("recurrences end "+w.Until().Format("20060102T150405Z")))
	return nil
}

func formatWindow(w quarter.Window) string {
	return fmt.Sprintf("%s to %s", w.InstructionStart.Format(quarterDateLayout), w.InstructionEnd.Format(quarterDateLayout))
}
