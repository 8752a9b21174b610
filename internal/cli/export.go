package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Flyrell/coursecal/internal/app"
	"github.com/Flyrell/coursecal/internal/calendar"
	"github.com/Flyrell/coursecal/internal/snapshot"
	"github.com/Flyrell/coursecal/internal/stringutil"
	"github.com/spf13/cobra"
)

// exportOptions are the output settings of one export run.
type exportOptions struct {
	Output  string
	PDF     bool
	Confirm ConfirmFunc
}

var exportCmd = LeafCommand{
	Use:     "export",
	Short:   "Export the courses of a saved schedule page as an ICS calendar",
	Example: "coursecal export --page ~/Downloads/schedule.html --pdf",
	StrFlags: []StringFlag{
		{Name: "page", Usage: "saved registration page (HTML)", Required: true},
		{Name: "output", Usage: "calendar file to write", Default: calendar.FileName},
	},
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "overwrite existing files without asking"},
		{Name: "pdf", Usage: "also write a printable PDF schedule next to the calendar"},
		{Name: "utc", Usage: "write times in UTC instead of campus-local time"},
		{Name: "all", Usage: "include courses that are not registered"},
		{Name: "debug", Usage: "log extraction details to stderr"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		env, err := loadEnvironment(debug)
		if err != nil {
			return err
		}
		defer env.close()

		p := *env.prefs
		if utc, _ := cmd.Flags().GetBool("utc"); utc {
			p.TimestampMode = calendar.ModeUTC.String()
		}
		if all, _ := cmd.Flags().GetBool("all"); all {
			p.RegisteredOnly = false
		}

		pagePath, _ := cmd.Flags().GetString("page")
		page, err := snapshot.Open(pagePath)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		withPDF, _ := cmd.Flags().GetBool("pdf")
		yes, _ := cmd.Flags().GetBool("yes")

		return runExport(cmd, env.service(p), page, exportOptions{
			Output:  output,
			PDF:     withPDF,
			Confirm: ResolveConfirmFunc(yes),
		})
	},
}.Build()

func runExport(cmd *cobra.Command, svc *app.Service, page app.Snapshot, opts exportOptions) error {
	resp := svc.Handle(app.Request{Action: app.ActionExtractEvents, Snapshot: page})
	if errors.Is(resp.Err, app.ErrNoEventsFound) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Warning(resp.Status()))
		return nil
	}
	if resp.Err != nil {
		return resp.Err
	}

	exp := resp.Export
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Info(resp.Status()))

	written, err := writeConfirmed(opts.Output, opts.Confirm, func(path string) error {
		return os.WriteFile(path, []byte(exp.ICS), 0644)
	})
	if err != nil {
		return err
	}
	if !written {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		Text("calendar for"), Primary(exp.Window.Label), Text("written to "+opts.Output))

	if !opts.PDF {
		return nil
	}

	pdfPath := filepath.Join(filepath.Dir(opts.Output), stringutil.Slugify(exp.Window.Label)+".pdf")
	written, err = writeConfirmed(pdfPath, opts.Confirm, func(path string) error {
		return renderSchedulePDF(exp, path)
	})
	if err != nil {
		return err
	}
	if !written {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("schedule written to "+pdfPath))
	return nil
}

// writeConfirmed runs write for path, asking first when path already exists.
// It reports whether anything was written.
func writeConfirmed(path string, confirm ConfirmFunc, write func(string) error) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		ok, err := confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := write(path); err != nil {
		return false, err
	}
	return true, nil
}
