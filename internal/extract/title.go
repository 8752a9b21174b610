package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Flyrell/coursecal/internal/schedule"
)

var (
	// "ECS 032A 001" -> "ECS 32A"
	sectionCode = regexp.MustCompile(`\s*0+(\d+[A-Z])\s*00\d`)
	// Final Exam: 3/17/2025 8:00 AM
	finalExam = regexp.MustCompile(`(?i)Final Exam:\s*(\d{1,2})/(\d{1,2})/(\d{4})\s*(\d{1,2}:\d{2})\s*(AM|PM)`)
	// Open Seats: 12 / 150, Seats Available: 0
	openSeats = regexp.MustCompile(`(?i)(?:open\s+seats|seats\s+available|available\s+seats)\s*:?\s*(\d+)(?:\s*(?:/|of)\s*(\d+))?`)
	// 12 seats open
	seatsOpen = regexp.MustCompile(`(?i)(\d+)\s+(?:seats?\s+)?(?:open|available)`)
	waitlist  = regexp.MustCompile(`(?i)wait\s*list(?:ed)?\s*:?\s*(\d+)`)
)

// ParseTitle splits a registrar title "ECS 032A 001 - Intro to Programming"
// into the short code "ECS 32A" and the course name.
func ParseTitle(title string) (code, name string) {
	parts := strings.Split(strings.TrimSpace(title), " - ")
	code = sectionCode.ReplaceAllString(parts[0], " ${1}")
	name = strings.Join(parts[1:], " - ")
	return strings.TrimSpace(code), strings.TrimSpace(name)
}

// ParseFinalExam finds "Final Exam: M/D/YYYY H:MM AM/PM" in text and returns
// the exam start in loc. ok is false when no exam is listed.
func ParseFinalExam(text string, loc *time.Location) (start time.Time, ok bool, err error) {
	m := finalExam.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false, nil
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	clock, err := schedule.ParseClockTime(m[4] + " " + m[5])
	if err != nil {
		return time.Time{}, false, err
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false, fmt.Errorf("%w: exam date %s/%s/%s", schedule.ErrMalformedInput, m[1], m[2], m[3])
	}

	return time.Date(year, time.Month(month), day, clock.Hour, clock.Minute, 0, 0, loc), true, nil
}

// ParseSeats reads seat availability from free text. Unrecognized text
// yields a SeatInfo with Known unset.
func ParseSeats(text string) schedule.SeatInfo {
	var info schedule.SeatInfo

	if m := openSeats.FindStringSubmatch(text); m != nil {
		info.Known = true
		info.Open, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			info.Capacity, _ = strconv.Atoi(m[2])
		}
	} else if m := seatsOpen.FindStringSubmatch(text); m != nil {
		info.Known = true
		info.Open, _ = strconv.Atoi(m[1])
	}

	if m := waitlist.FindStringSubmatch(text); m != nil {
		info.Waitlist, _ = strconv.Atoi(m[1])
	}

	return info
}
