package cli

import (
	"fmt"
	"strconv"

	"github.com/Flyrell/coursecal/internal/app"
	"github.com/Flyrell/coursecal/internal/extract"
	"github.com/Flyrell/coursecal/internal/schedule"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderSchedulePDF writes a printable weekly schedule for an export: one
// section per course listing its meetings, session counts and final exam.
func renderSchedulePDF(exp *app.Export, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)
	w := exp.Window

	m.AddRow(14,
		text.NewCol(12, w.Label, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Instruction %s to %s",
			w.InstructionStart.Format("Jan 2"), w.InstructionEnd.Format("Jan 2, 2006")), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	total := 0
	for _, c := range exp.Courses {
		m.AddRow(8,
			text.NewCol(9, c.Code+"  "+c.Name, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, c.Instructor, props.Text{
				Size:  9,
				Align: align.Right,
				Color: &pdfMutedColor,
			}),
		)

		for _, mt := range c.Meetings {
			sessions, err := schedule.Occurrences(mt.Days, w.InstructionStart, w.Until())
			if err != nil {
				return fmt.Errorf("%s: %w", c.Code, err)
			}
			total += len(sessions)

			m.AddRow(6,
				text.NewCol(9, "  "+schedule.FormatMeeting(mt), props.Text{Size: 9}),
				text.NewCol(3, sessionLabel(len(sessions)), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			)
		}

		if c.FinalExam != nil {
			m.AddRow(5,
				text.NewCol(9, "  Final Exam  "+c.FinalExam.Format("Mon, Jan 2 3:04 PM")+" @ "+extract.FinalExamLocation, props.Text{
					Size:  8,
					Color: &pdfMutedColor,
				}),
			)
		}

		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, sessionLabel(total), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

func sessionLabel(n int) string {
	if n == 1 {
		return "1 session"
	}
	return strconv.Itoa(n) + " sessions"
}
