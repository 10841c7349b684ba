package school

import (
	"fmt"
	"time"
)

// Semesters
const (
	SemesterFall   = "Fall"
	SemesterSpring = "Spring"
	SemesterSummer = "Summer"
)

// DayOf formats the calendar date of `t` in `loc` (time.Local if nil).
func DayOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayLayout)
}

// SameDay reports whether `a` and `b` fall on the same calendar date in `loc`.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayOf(a, loc) == DayOf(b, loc)
}

// ParseDay parses a YYYY-MM-DD date at midnight in `loc`.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DayLayout, s, loc)
}

// AcademicYear returns the academic year containing `t`, e.g. "2024-2025".
// An academic year starts in August.
func AcademicYear(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.August {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// CurrentSemester returns the semester containing `t`.
func CurrentSemester(t time.Time) string {
	switch m := t.Month(); {
	case m >= time.August:
		return SemesterFall
	case m <= time.May:
		return SemesterSpring
	default:
		return SemesterSummer
	}
}
