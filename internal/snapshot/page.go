package snapshot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Flyrell/coursecal/internal/extract"
	"github.com/Flyrell/coursecal/internal/quarter"
	"github.com/PuerkitoBio/goquery"
)

// Selectors of the registration page layout.
const (
	courseItemSelector = `div[id^="t"][class*="CourseItem"]`
	registeredSelector = "div.statusIndicator.registered"
	titleSelector      = ".classTitle"
	meetingsSelector   = ".data.meeting-times .meeting.clearfix"
	fragmentSelector   = ".float-left.height-justified"
	smallTitleClass    = "smallTitle"
	seatsSelector      = ".seats, .openSeats, .data.seats"
	instructorSelector = ".instructor, .data.instructor"
	finalExamMarker    = "Final Exam:"
)

// Page is a saved registration page. It implements extract.MeetingTextSource.
type Page struct {
	doc *goquery.Document
}

// Parse reads a registration page from r.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// ParseString reads a registration page from an HTML string.
func ParseString(html string) (*Page, error) {
	return Parse(strings.NewReader(html))
}

// Open reads a saved registration page from disk.
func Open(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Courses returns the raw text of every course item on the page, in
// document order.
func (p *Page) Courses() ([]extract.CourseText, error) {
	if p == nil || p.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}

	var courses []extract.CourseText
	p.doc.Find(courseItemSelector).Each(func(_ int, item *goquery.Selection) {
		courses = append(courses, courseText(item))
	})
	return courses, nil
}

// TermLabel returns the term label shown on the page, or "".
func (p *Page) TermLabel() string {
	if p == nil || p.doc == nil {
		return ""
	}
	return quarter.DetectLabel(p.doc.Find("body").Text())
}

func courseText(item *goquery.Selection) extract.CourseText {
	ct := extract.CourseText{
		Title:      strings.TrimSpace(item.Find(titleSelector).First().Text()),
		Registered: item.Find(registeredSelector).Length() > 0,
		Seats:      strings.TrimSpace(item.Find(seatsSelector).First().Text()),
		Instructor: strings.TrimSpace(item.Find(instructorSelector).First().Text()),
	}

	item.Find(meetingsSelector).Each(func(_ int, meeting *goquery.Selection) {
		var fragments []extract.Fragment
		meeting.Find(fragmentSelector).Each(func(_ int, s *goquery.Selection) {
			fragments = append(fragments, extract.Fragment{
				Text:       s.Text(),
				SmallTitle: s.HasClass(smallTitleClass),
			})
		})
		ct.Meetings = append(ct.Meetings, extract.Classify(fragments))
	})

	exam := item.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), finalExamMarker)
	}).First()
	if exam.Length() > 0 {
		ct.FinalExam = strings.Join(strings.Fields(exam.Text()), " ")
	}

	return ct
}
