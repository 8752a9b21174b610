package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flyrell/coursecal/internal/calendar"
	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execExport(t *testing.T, p prefs.Prefs, html string, opts exportOptions) (string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	cmd := exportCmd
	cmd.SetOut(stdout)
	err := runExport(cmd, testService(p), testPage(t, html), opts)
	return stdout.String(), err
}

func TestExportWritesCalendar(t *testing.T) {
	out := filepath.Join(t.TempDir(), calendar.FileName)

	stdout, err := execExport(t, prefs.Defaults(), schedulePage, exportOptions{Output: out, Confirm: AlwaysYes()})

	require.NoError(t, err)
	assert.Contains(t, stdout, "Found 2 events! Generating ICS file...")
	assert.Contains(t, stdout, "Winter Quarter 2025")
	assert.Contains(t, stdout, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)
	assert.Equal(t, 3, strings.Count(doc, "BEGIN:VEVENT"))
	assert.Contains(t, doc, "SUMMARY:ECS 32A Lecture")
	assert.Contains(t, doc, "SUMMARY:ECS 32A Final Exam")
	assert.Contains(t, doc, "UNTIL=20250315T065959Z")
	assert.NotContains(t, doc, "MAT 21B")
}

func TestExportAllCourses(t *testing.T) {
	out := filepath.Join(t.TempDir(), calendar.FileName)
	p := prefs.Defaults()
	p.RegisteredOnly = false

	_, err := execExport(t, p, schedulePage, exportOptions{Output: out, Confirm: AlwaysYes()})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:MAT 21B Lecture")
	assert.Contains(t, string(data), "SUMMARY:PHY 9A Lecture")
}

func TestExportUTC(t *testing.T) {
	out := filepath.Join(t.TempDir(), calendar.FileName)
	p := prefs.Defaults()
	p.TimestampMode = "utc"

	_, err := execExport(t, p, schedulePage, exportOptions{Output: out, Confirm: AlwaysYes()})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DTSTART:20250106T170000Z")
	assert.NotContains(t, string(data), "TZID=")
}

func TestExportNoEvents(t *testing.T) {
	out := filepath.Join(t.TempDir(), calendar.FileName)

	stdout, err := execExport(t, prefs.Defaults(), emptyPage, exportOptions{Output: out, Confirm: AlwaysYes()})

	require.NoError(t, err)
	assert.Contains(t, stdout, "No registered courses found on the page")
	assert.NoFileExists(t, out)
}

func TestExportOverwriteDeclined(t *testing.T) {
	out := filepath.Join(t.TempDir(), calendar.FileName)
	require.NoError(t, os.WriteFile(out, []byte("keep"), 0644))

	var asked string
	decline := func(prompt string) (bool, error) {
		asked = prompt
		return false, nil
	}
	stdout, err := execExport(t, prefs.Defaults(), schedulePage, exportOptions{Output: out, Confirm: decline})

	require.NoError(t, err)
	assert.Contains(t, stdout, "cancelled")
	assert.Contains(t, asked, "Overwrite?")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestExportOverwriteConfirmed(t *testing.T) {
	out := filepath.Join(t.TempDir(), calendar.FileName)
	require.NoError(t, os.WriteFile(out, []byte("old"), 0644))

	_, err := execExport(t, prefs.Defaults(), schedulePage, exportOptions{Output: out, Confirm: AlwaysYes()})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BEGIN:VCALENDAR"))
}

func TestExportWithPDF(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, calendar.FileName)

	stdout, err := execExport(t, prefs.Defaults(), schedulePage, exportOptions{Output: out, PDF: true, Confirm: AlwaysYes()})
	require.NoError(t, err)

	pdfPath := filepath.Join(dir, "winter-quarter-2025.pdf")
	assert.Contains(t, stdout, pdfPath)

	info, err := os.Stat(pdfPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportInvalidTimezone(t *testing.T) {
	p := prefs.Defaults()
	p.Timezone = "Mars/Olympus_Mons"

	_, err := execExport(t, p, schedulePage, exportOptions{Output: filepath.Join(t.TempDir(), "x.ics"), Confirm: AlwaysYes()})
	assert.Error(t, err)
}

func TestExportRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "export")

	page := exportCmd.Flags().Lookup("page")
	require.NotNil(t, page)
	output := exportCmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, calendar.FileName, output.DefValue)
}
