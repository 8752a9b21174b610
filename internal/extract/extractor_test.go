package extract

import (
	"errors"
	"testing"
	"time"

	"github.com/Flyrell/coursecal/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingSource struct{}

func (failingSource) Courses() ([]CourseText, error) {
	return nil, errors.New("document not ready")
}

func newTestExtractor(t *testing.T) (*Extractor, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	x, err := New(zap.New(core))
	require.NoError(t, err)
	return x, logs
}

func sampleCourses() StaticSource {
	return StaticSource{
		{
			Title:      "ECS 032A 001 - Intro to Programming",
			Registered: true,
			Meetings: []MeetingText{
				{Type: "Lecture", Time: "9:00 AM - 9:50 AM", Days: "MWF", Location: "Wellman 2"},
				{Type: "Discussion", Time: "TBA", Days: "", Location: "TBA"},
				{Type: "Lab", Time: "3:10 PM - 6:00 PM", Days: "R", Location: "Kemper 75"},
			},
			FinalExam:  "Final Exam: 3/17/2025 8:00 AM",
			Seats:      "Open Seats: 12 / 150",
			Instructor: " J. Smith ",
		},
		{
			Title:      "MAT 021B 002 - Calculus",
			Registered: false,
			Meetings: []MeetingText{
				{Time: "10:00 AM - 10:50 AM", Days: "TR", Location: "Young 198"},
			},
		},
		{
			Title: "   ",
		},
	}
}

func TestMeetings(t *testing.T) {
	x, logs := newTestExtractor(t)

	meetings := x.Meetings("ECS 32A", []MeetingText{
		{Type: "Lecture", Time: "9:00 AM - 9:50 AM", Days: "MWF", Location: " Wellman 2 "},
		{Type: "", Time: "1:10 PM - 2:00 PM", Days: "TR", Location: "Olson 158"},
		{Type: "Discussion", Time: "TBA", Days: "W"},
		{Type: "Lab", Time: "3:10 PM - 6:00 PM", Days: ""},
		{Type: "Lab", Time: "3:10 PM - 6:00 PM", Days: "SU"},
		{Type: "Seminar", Time: "5:00 PM - 4:00 PM", Days: "F"},
	})

	require.Len(t, meetings, 3)

	assert.Equal(t, schedule.Meeting{
		Type:      "Lecture",
		Time:      schedule.MeetingTimeRange{Start: schedule.TimeOfDay{Hour: 9}, End: schedule.TimeOfDay{Hour: 9, Minute: 50}},
		Days:      schedule.DaySet{schedule.MO, schedule.WE, schedule.FR},
		Location:  "Wellman 2",
		CourseRef: "ECS 32A",
	}, meetings[0])

	assert.Equal(t, DefaultMeetingType, meetings[1].Type)
	assert.Equal(t, schedule.DaySet{schedule.TU, schedule.TH}, meetings[1].Days)

	// Inverted ranges pass through.
	assert.True(t, meetings[2].Time.Inverted())
	assert.Equal(t, 1, logs.FilterMessage("meeting ends before it starts").Len())
}

func TestMeetingsBlankDefaultType(t *testing.T) {
	x, _ := newTestExtractor(t)
	x.DefaultType = ""

	meetings := x.Meetings("ECS 32A", []MeetingText{{Time: "9:00 AM - 9:50 AM", Days: "M"}})
	require.Len(t, meetings, 1)
	assert.Equal(t, "", meetings[0].Type)
}

func TestCourse(t *testing.T) {
	x, _ := newTestExtractor(t)

	c, ok := x.Course(sampleCourses()[0])
	require.True(t, ok)

	assert.Equal(t, "ECS 32A", c.Code)
	assert.Equal(t, "Intro to Programming", c.Name)
	assert.True(t, c.Registered)
	assert.Len(t, c.Meetings, 2)
	assert.Equal(t, "J. Smith", c.Instructor)
	assert.Equal(t, schedule.SeatInfo{Known: true, Open: 12, Capacity: 150}, c.Seats)

	require.NotNil(t, c.FinalExam)
	assert.Equal(t, "2025-03-17 08:00", c.FinalExam.Format("2006-01-02 15:04"))
	assert.Equal(t, "America/Los_Angeles", c.FinalExam.Location().String())

	_, ok = x.Course(CourseText{Title: ""})
	assert.False(t, ok)
}

func TestCourseWithBadFinalExam(t *testing.T) {
	x, logs := newTestExtractor(t)

	c, ok := x.Course(CourseText{Title: "ECS 032A 001 - Intro", FinalExam: "Final Exam: 2/31/2025 25:00 PM"})
	require.True(t, ok)
	assert.Nil(t, c.FinalExam)
	assert.Equal(t, 1, logs.FilterMessage("skipping final exam").Len())
}

func TestCourses(t *testing.T) {
	x, _ := newTestExtractor(t)

	all, err := x.Courses(sampleCourses(), false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ECS 32A", all[0].Code)
	assert.Equal(t, "MAT 21B", all[1].Code)

	registered, err := x.Courses(sampleCourses(), true)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, "ECS 32A", registered[0].Code)
}

func TestCoursesSourceFailure(t *testing.T) {
	x, _ := newTestExtractor(t)

	_, err := x.Courses(failingSource{}, true)
	require.Error(t, err)

	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Contains(t, err.Error(), "extraction failed: document not ready")
}

func TestExtractorNilLogger(t *testing.T) {
	x := &Extractor{DefaultType: DefaultMeetingType, Location: time.UTC}
	courses, err := x.Courses(sampleCourses(), false)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
