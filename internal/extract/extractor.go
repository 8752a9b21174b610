package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/Flyrell/coursecal/internal/schedule"
	"go.uber.org/zap"
)

// DefaultMeetingType labels meetings whose block has no small-title type.
const DefaultMeetingType = "Lecture"

// ExtractionError reports an unexpected structural failure while scanning a
// page. No calendar is produced when it occurs.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extractor turns raw course text into parsed courses. Malformed meetings
// and courses are skipped and logged; they never abort the pass.
type Extractor struct {
	// DefaultType replaces a missing meeting type. Empty keeps it blank.
	DefaultType string
	// Location is the timezone final exam times are read in.
	Location *time.Location
	Logger   *zap.Logger
}

// New creates an Extractor with the "Lecture" default and campus timezone.
func New(logger *zap.Logger) (*Extractor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	loc, err := schedule.LoadLocation(schedule.DefaultTimezone)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		DefaultType: DefaultMeetingType,
		Location:    loc,
		Logger:      logger,
	}, nil
}

func (x *Extractor) logger() *zap.Logger {
	if x.Logger == nil {
		return zap.NewNop()
	}
	return x.Logger
}

// Meetings parses the meeting texts of one course. A meeting lacking a
// parseable time or days is dropped, since the registrar lists many as TBA.
func (x *Extractor) Meetings(courseRef string, texts []MeetingText) []schedule.Meeting {
	log := x.logger()
	meetings := make([]schedule.Meeting, 0, len(texts))

	for _, mt := range texts {
		if mt.Time == "" || mt.Days == "" {
			log.Debug("skipping meeting without time or days",
				zap.String("course", courseRef),
				zap.String("time", mt.Time),
				zap.String("days", mt.Days))
			continue
		}

		tr, err := schedule.ParseRange(mt.Time)
		if err != nil {
			log.Debug("skipping meeting", zap.String("course", courseRef), zap.Error(err))
			continue
		}

		days := schedule.ParseDays(mt.Days)
		if len(days) == 0 {
			log.Debug("skipping meeting with unreadable days",
				zap.String("course", courseRef),
				zap.String("days", mt.Days))
			continue
		}

		if tr.Inverted() {
			log.Debug("meeting ends before it starts",
				zap.String("course", courseRef),
				zap.Stringer("time", tr))
		}

		typ := strings.TrimSpace(mt.Type)
		if typ == "" {
			typ = x.DefaultType
		}

		meetings = append(meetings, schedule.Meeting{
			Type:      typ,
			Time:      tr,
			Days:      days,
			Location:  strings.TrimSpace(mt.Location),
			CourseRef: courseRef,
		})
	}

	return meetings
}

// Course parses one course. ok is false when the course has no title.
func (x *Extractor) Course(ct CourseText) (schedule.Course, bool) {
	title := strings.TrimSpace(ct.Title)
	if title == "" {
		x.logger().Debug("no course title found, skipping")
		return schedule.Course{}, false
	}

	code, name := ParseTitle(title)
	c := schedule.Course{
		Code:       code,
		Name:       name,
		Title:      title,
		Registered: ct.Registered,
		Meetings:   x.Meetings(code, ct.Meetings),
		Seats:      ParseSeats(ct.Seats),
		Instructor: strings.TrimSpace(ct.Instructor),
	}

	if ct.FinalExam != "" {
		loc := x.Location
		if loc == nil {
			loc = time.UTC
		}
		start, ok, err := ParseFinalExam(ct.FinalExam, loc)
		switch {
		case err != nil:
			x.logger().Debug("skipping final exam", zap.String("course", code), zap.Error(err))
		case ok:
			c.FinalExam = &start
		}
	}

	return c, true
}

// Courses reads every course from src. When registeredOnly is set, courses
// without the registered marker are skipped.
func (x *Extractor) Courses(src MeetingTextSource, registeredOnly bool) ([]schedule.Course, error) {
	texts, err := src.Courses()
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	log := x.logger()
	log.Debug("found course items", zap.Int("count", len(texts)))

	courses := make([]schedule.Course, 0, len(texts))
	for _, ct := range texts {
		if registeredOnly && !ct.Registered {
			log.Debug("skipping unregistered course", zap.String("title", ct.Title))
			continue
		}
		c, ok := x.Course(ct)
		if !ok {
			continue
		}
		log.Debug("processed course",
			zap.String("code", c.Code),
			zap.Int("meetings", len(c.Meetings)))
		courses = append(courses, c)
	}

	return courses, nil
}
