package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/Flyrell/coursecal/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T) *Page {
	t.Helper()
	p, err := Open(filepath.Join("testdata", "schedule.html"))
	require.NoError(t, err)
	return p
}

func TestCourses(t *testing.T) {
	courses, err := openFixture(t).Courses()
	require.NoError(t, err)
	require.Len(t, courses, 2)

	ecs := courses[0]
	assert.Equal(t, "ECS 032A 001 - Intro to Programming", ecs.Title)
	assert.True(t, ecs.Registered)
	assert.Equal(t, "Jane Smith", ecs.Instructor)
	assert.Equal(t, "Open Seats: 12 / 150", ecs.Seats)
	assert.Equal(t, "Final Exam: 3/17/2025 8:00 AM", ecs.FinalExam)
	require.Len(t, ecs.Meetings, 3)
	assert.Equal(t, extract.MeetingText{Type: "Lecture", Time: "9:00 AM - 9:50 AM", Days: "MWF", Location: "Wellman 2"}, ecs.Meetings[0])
	assert.Equal(t, extract.MeetingText{Type: "Discussion", Location: "TBA"}, ecs.Meetings[1])
	assert.Equal(t, extract.MeetingText{Type: "Laboratory", Time: "3:10 PM - 6:00 PM", Days: "R", Location: "Kemper 75"}, ecs.Meetings[2])

	mat := courses[1]
	assert.Equal(t, "MAT 021B 002 - Calculus", mat.Title)
	assert.False(t, mat.Registered)
	assert.Empty(t, mat.FinalExam)
	require.Len(t, mat.Meetings, 1)
	assert.Equal(t, "", mat.Meetings[0].Type)
}

func TestCoursesThroughExtractor(t *testing.T) {
	x, err := extract.New(nil)
	require.NoError(t, err)

	courses, err := x.Courses(openFixture(t), true)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "ECS 32A", courses[0].Code)
	assert.Len(t, courses[0].Meetings, 2)
	require.NotNil(t, courses[0].FinalExam)
}

func TestTermLabel(t *testing.T) {
	assert.Equal(t, "Winter Quarter 2025", openFixture(t).TermLabel())

	p, err := ParseString(`<html><body><p>No term</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "", p.TermLabel())
}

func TestEmptyPage(t *testing.T) {
	p, err := ParseString("")
	require.NoError(t, err)

	courses, err := p.Courses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestNilPage(t *testing.T) {
	var p *Page
	_, err := p.Courses()
	assert.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}
