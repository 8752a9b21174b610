package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Flyrell/coursecal/internal/app"
	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/Flyrell/coursecal/internal/ratings"
	"github.com/Flyrell/coursecal/internal/snapshot"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var annotateCmd = LeafCommand{
	Use:     "annotate",
	Short:   "Show conflicts, seats, ratings and time warnings for every course on a page",
	Example: "coursecal annotate --page search.html --schedule schedule.html",
	StrFlags: []StringFlag{
		{Name: "page", Usage: "saved search or schedule page (HTML)", Required: true},
		{Name: "schedule", Usage: "saved schedule page whose registered courses are the committed schedule"},
	},
	BoolFlags: []BoolFlag{
		{Name: "debug", Usage: "log extraction details to stderr"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		env, err := loadEnvironment(debug)
		if err != nil {
			return err
		}
		defer env.close()

		pagePath, _ := cmd.Flags().GetString("page")
		page, err := snapshot.Open(pagePath)
		if err != nil {
			return err
		}

		var committed app.Snapshot
		if schedulePath, _ := cmd.Flags().GetString("schedule"); schedulePath != "" {
			sp, err := snapshot.Open(schedulePath)
			if err != nil {
				return err
			}
			committed = sp
		}

		return runAnnotate(cmd, env.service(*env.prefs), env.cfg.Home, page, committed)
	},
}.Build()

func runAnnotate(cmd *cobra.Command, svc *app.Service, homeDir string, page, committed app.Snapshot) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p := svc.Prefs()
	if p.ShowRatings {
		if err := svc.LoadReference(ctx); err != nil && !errors.Is(err, ratings.ErrNotConfigured) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Warning("rating data unavailable, using built-in dataset"))
		}
	}

	if committed != nil {
		if err := svc.PinSchedule(committed); err != nil {
			return err
		}
	}

	resp := svc.Handle(app.Request{Action: app.ActionApplyPreferences, Snapshot: page, Prefs: &p})
	if resp.Err != nil {
		return resp.Err
	}

	if len(resp.Annotations) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Warning("no courses found on the page"))
		return nil
	}

	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static list
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		for _, a := range resp.Annotations {
			printAnnotation(cmd, a, p.ShowSeats)
		}
		_, _ = fmt.Fprintf(out, "\n%s\n", Info(resp.Status()))
		return nil
	}

	m := newAnnotateModel(svc, resp.Annotations, func(p prefs.Prefs) error {
		return prefs.Write(homeDir, &p)
	})
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := prog.Run()
	return err
}

func printAnnotation(cmd *cobra.Command, a app.CourseAnnotation, showSeats bool) {
	out := cmd.OutOrStdout()

	status := StatusColor(a.Status)
	if a.ConflictWith != "" {
		status += " " + Silent("with "+a.ConflictWith)
	}
	_, _ = fmt.Fprintf(out, "%s  %s  %s\n", Primary(a.Course.Code), Text(a.Course.Name), status)

	var details []string
	if showSeats && a.Course.Seats.Known {
		seats := fmt.Sprintf("%d open", a.Course.Seats.Open)
		if a.Course.Seats.Capacity > 0 {
			seats = fmt.Sprintf("%d/%d open", a.Course.Seats.Open, a.Course.Seats.Capacity)
		}
		if a.Course.Seats.Waitlist > 0 {
			seats += fmt.Sprintf(", %d waitlisted", a.Course.Seats.Waitlist)
		}
		details = append(details, seats)
	}
	if a.EarlyMorning {
		details = append(details, Warning("early morning"))
	}
	if a.LateNight {
		details = append(details, Warning("late night"))
	}
	if len(details) > 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", strings.Join(details, Silent(" | ")))
	}

	if a.Rating.Found() {
		prof := a.Rating.Professor
		_, _ = fmt.Fprintf(out, "  %s %s\n",
			Text(prof.FullName()),
			Silent(fmt.Sprintf("rating %.1f, difficulty %.1f, %.0f%% would take again (%s match)",
				prof.AvgRating, prof.AvgDifficulty, prof.WouldTakeAgainPercent, a.Rating.Tier)))
	} else if a.Course.Instructor != "" {
		_, _ = fmt.Fprintf(out, "  %s\n", Silent(a.Course.Instructor))
	}
}
