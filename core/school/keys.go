package school

import "time"

// DayLayout is the wire format of calendar dates.
const DayLayout = "2006-01-02"

type (
	// AttendanceKey identifies one attendance mark: a student, in a course, on a calendar day.
	AttendanceKey struct {
		CourseID  string
		StudentID string
		Day       string
	}

	// ResultKey identifies one result: a student's marks for an assessment.
	ResultKey struct {
		AssessmentID string
		StudentID    string
	}
)

// Key returns the record's composite key, with its date taken in `loc`.
func (r AttendanceRecord) Key(loc *time.Location) AttendanceKey {
	return AttendanceKey{CourseID: r.CourseID, StudentID: r.StudentID, Day: DayOf(r.Date, loc)}
}

func (r Result) Key() ResultKey {
	return ResultKey{AssessmentID: r.AssessmentID, StudentID: r.StudentID}
}
