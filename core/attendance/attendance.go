package attendance

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
)

// DefaultMinimum is the attendance percentage under which a student is flagged.
const DefaultMinimum = 75

var newID = func() string { return "att-" + uuid.New().String() }

// Summary counts a student's attendance records across all courses.
type Summary struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Late       int `json:"late"`
	Percentage int `json:"percentage"`
}

// Percentage returns the share of a student's records in a course marked present or late,
// rounded to an integer. 0 when there are no records.
func Percentage(doc school.Document, studentID, courseID string) int {
	var total, attended int
	for _, rec := range doc.Attendance {
		if rec.StudentID != studentID || rec.CourseID != courseID {
			continue
		}
		total++
		if rec.Status.Attended() {
			attended++
		}
	}
	return core.Percentage(attended, total)
}

func Summarize(doc school.Document, studentID string) Summary {
	var sum Summary
	for _, rec := range doc.Attendance {
		if rec.StudentID != studentID {
			continue
		}
		sum.Total++
		switch rec.Status {
		case school.StatusPresent:
			sum.Present++
		case school.StatusAbsent:
			sum.Absent++
		case school.StatusLate:
			sum.Late++
		}
	}
	sum.Percentage = core.Percentage(sum.Present+sum.Late, sum.Total)
	return sum
}

// IsBelowMinimum reports whether pct is strictly under minimum (DefaultMinimum if omitted).
func IsBelowMinimum(pct int, minimum ...int) bool {
	threshold := DefaultMinimum
	if len(minimum) > 0 {
		threshold = minimum[0]
	}
	return pct < threshold
}

// ByDate returns a course's records on the calendar date of `day` in `loc`.
func ByDate(doc school.Document, courseID string, day time.Time, loc *time.Location) []school.AttendanceRecord {
	recs := make([]school.AttendanceRecord, 0)
	for _, rec := range doc.Attendance {
		if rec.CourseID == courseID && school.SameDay(rec.Date, day, loc) {
			recs = append(recs, rec)
		}
	}
	return recs
}

// NewSheet builds one record per student of `marks` ({studentID: status}), ordered by student ID.
func NewSheet(courseID string, day time.Time, marks map[string]school.AttendanceStatus) []school.AttendanceRecord {
	ids := make([]string, 0, len(marks))
	for id := range marks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	recs := make([]school.AttendanceRecord, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, school.AttendanceRecord{
			ID:        newID(),
			CourseID:  courseID,
			StudentID: id,
			Date:      day,
			Status:    marks[id],
		})
	}
	return recs
}
