package attendance

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
)

type (
	Store interface {
		Load(ctx context.Context) (school.Document, error)
		UpsertAttendance(ctx context.Context, records []school.AttendanceRecord) error
		Location() *time.Location
	}

	Service struct {
		store   Store
		log     core.Logger
		minimum int
	}

	// Shortfall is an enrolled student whose attendance in a course is under the minimum.
	Shortfall struct {
		Student    school.Student `json:"student"`
		Course     school.Course  `json:"course"`
		Percentage int            `json:"percentage"`
	}
)

// NewService returns a Service flagging students under `minimum` (DefaultMinimum if <= 0).
func NewService(store Store, log core.Logger, minimum int) *Service {
	if minimum <= 0 {
		minimum = DefaultMinimum
	}
	return &Service{store: store, log: log, minimum: minimum}
}

func (svc *Service) Minimum() int { return svc.minimum }

// Location is the time zone calendar days are taken in.
func (svc *Service) Location() *time.Location { return svc.store.Location() }

func (svc *Service) load(ctx context.Context) (school.Document, error) {
	doc, err := svc.store.Load(ctx)
	return doc, errors.Wrap(err, "loading attendance")
}

func (svc *Service) Percentage(ctx context.Context, studentID, courseID string) (int, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	return Percentage(doc, studentID, courseID), nil
}

func (svc *Service) Summary(ctx context.Context, studentID string) (Summary, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(doc, studentID), nil
}

func (svc *Service) IsBelowMinimum(pct int) bool {
	return IsBelowMinimum(pct, svc.minimum)
}

func (svc *Service) ByDate(ctx context.Context, courseID string, day time.Time) ([]school.AttendanceRecord, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.Course(courseID); !ok {
		return nil, school.ErrCourseNotFound
	}
	return ByDate(doc, courseID, day, svc.store.Location()), nil
}

// MarkBulk records one status per student ({studentID: status}) for a course on `day`,
// replacing marks already taken that day. Statuses are matched case-insensitively.
func (svc *Service) MarkBulk(ctx context.Context, courseID string, day time.Time, marks map[string]school.AttendanceStatus) ([]school.AttendanceRecord, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.Course(courseID); !ok {
		return nil, school.ErrCourseNotFound
	}

	var fldErrs []core.FieldError
	sheet := make(map[string]school.AttendanceStatus, len(marks))
	for id, status := range marks {
		st, err := school.ParseAttendanceStatus(string(status))
		if err != nil {
			fldErrs = append(fldErrs, core.FieldError{Field: id, Error: school.ErrInvalidStatus.Error()})
			continue
		}
		sheet[id] = st
	}
	if len(fldErrs) > 0 {
		return nil, core.NewValidationError(school.ErrInvalidStatus, fldErrs...)
	}

	recs := NewSheet(courseID, day, sheet)
	if err := svc.store.UpsertAttendance(ctx, recs); err != nil {
		return nil, errors.Wrap(err, "saving attendance")
	}
	svc.log.Info("attendance marked", map[string]interface{}{
		"course":   courseID,
		"date":     school.DayOf(day, svc.store.Location()),
		"students": len(recs),
	})
	return recs, nil
}

// BelowMinimum lists the enrollments whose attendance is under `minimum`
// (the service's minimum if <= 0). Enrollments without any record are skipped.
func (svc *Service) BelowMinimum(ctx context.Context, minimum int) ([]Shortfall, error) {
	if minimum <= 0 {
		minimum = svc.minimum
	}
	doc, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}

	held := make(map[school.Enrollment]bool)
	for _, rec := range doc.Attendance {
		held[school.Enrollment{StudentID: rec.StudentID, CourseID: rec.CourseID}] = true
	}

	var out []Shortfall
	for _, e := range doc.Enrollments {
		if !held[e] {
			continue
		}
		pct := Percentage(doc, e.StudentID, e.CourseID)
		if !IsBelowMinimum(pct, minimum) {
			continue
		}
		stu, ok := doc.Student(e.StudentID)
		if !ok {
			continue
		}
		crs, _ := doc.Course(e.CourseID)
		out = append(out, Shortfall{Student: stu, Course: crs, Percentage: pct})
	}
	return out, nil
}
