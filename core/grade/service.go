package grade

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
)

type (
	Store interface {
		Load(ctx context.Context) (school.Document, error)
		UpsertResults(ctx context.Context, results []school.Result) error
		UpsertAssessment(ctx context.Context, a school.Assessment) (school.Assessment, error)
	}

	Service struct {
		store    Store
		log      core.Logger
		validate *validator.Validate
		passing  float64
	}

	// markSheet is validated as a whole so errors are keyed by entry, eg: marks[1].marksObtained.
	markSheet struct {
		Marks []school.Marks `json:"marks" validate:"required,min=1,dive"`
	}

	CourseResult struct {
		CourseID   string  `json:"courseId"`
		Code       string  `json:"code"`
		Name       string  `json:"name"`
		Credits    int     `json:"credits"`
		Graded     bool    `json:"graded"`
		Percentage int     `json:"percentage"`
		Grade      string  `json:"grade"`
		GradePoint float64 `json:"gradePoint"`
		Passing    bool    `json:"passing"`
	}

	// Transcript is a student's per-course grades. Courses without any result are listed
	// but left out of the GPA.
	Transcript struct {
		Student school.Student `json:"student"`
		Courses []CourseResult `json:"courses"`
		GPA     string         `json:"gpa"`
		Overall Overall        `json:"overall"`
	}
)

// NewService returns a Service passing grades from `passing` (DefaultPassing if <= 0).
func NewService(store Store, log core.Logger, validate *validator.Validate, passing int) *Service {
	if passing <= 0 {
		passing = DefaultPassing
	}
	return &Service{store: store, log: log, validate: validate, passing: float64(passing)}
}

func (svc *Service) load(ctx context.Context) (school.Document, error) {
	doc, err := svc.store.Load(ctx)
	return doc, errors.Wrap(err, "loading grades")
}

func (svc *Service) IsPassing(pct float64) bool {
	return IsPassing(pct, svc.passing)
}

func (svc *Service) Overall(ctx context.Context, studentID string) (Overall, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return Overall{}, err
	}
	return OverallGrade(doc, studentID), nil
}

func (svc *Service) CourseAverage(ctx context.Context, courseID string) (int, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	if _, ok := doc.Course(courseID); !ok {
		return 0, school.ErrCourseNotFound
	}
	return CourseAverage(doc, courseID), nil
}

func (svc *Service) CourseGrade(ctx context.Context, studentID, courseID string) (float64, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return 0, err
	}
	return CourseGrade(doc, studentID, courseID), nil
}

func (svc *Service) Transcript(ctx context.Context, studentID string) (Transcript, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return Transcript{}, err
	}
	stu, ok := doc.Student(studentID)
	if !ok {
		return Transcript{}, school.ErrStudentNotFound
	}

	tr := Transcript{Student: stu, Courses: make([]CourseResult, 0), Overall: OverallGrade(doc, studentID)}
	var credits []CourseCredit
	for _, c := range doc.StudentCourses(studentID) {
		cr := CourseResult{CourseID: c.ID, Code: c.Code, Name: c.Name, Credits: c.Credits, Grade: NotAvailable}
		scored := ScoredIn(doc, studentID, c.ID)
		if hasWeightage(scored) {
			pct := core.Round(WeightedGrade(scored))
			cr.Graded = true
			cr.Percentage = pct
			cr.Grade = LetterGrade(float64(pct))
			cr.GradePoint = GradePoint(cr.Grade)
			cr.Passing = svc.IsPassing(float64(pct))
			credits = append(credits, CourseCredit{Credits: c.Credits, Grade: cr.Grade})
		}
		tr.Courses = append(tr.Courses, cr)
	}
	tr.GPA = SemesterGPA(credits)
	return tr, nil
}

// SaveAssessment creates or replaces an assessment of an existing course.
func (svc *Service) SaveAssessment(ctx context.Context, a school.Assessment) (school.Assessment, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return school.Assessment{}, err
	}
	if _, ok := doc.Course(a.CourseID); !ok {
		return school.Assessment{}, school.ErrCourseNotFound
	}
	a, err = svc.store.UpsertAssessment(ctx, a)
	if err != nil {
		return school.Assessment{}, errors.Wrap(err, "saving assessment")
	}
	return a, nil
}

// RecordMarks stores the marks obtained in an assessment, replacing previous ones.
// Marks must lie within 0 and the assessment's maximum: validator.ValidationErrors otherwise.
func (svc *Service) RecordMarks(ctx context.Context, assessmentID string, marks []school.Marks) ([]school.Result, error) {
	doc, err := svc.load(ctx)
	if err != nil {
		return nil, err
	}
	a, ok := doc.Assessment(assessmentID)
	if !ok {
		return nil, school.ErrAssessmentNotFound
	}

	sheet := markSheet{Marks: make([]school.Marks, len(marks))}
	for i, m := range marks {
		m.MaxMarks = a.MaxMarks
		sheet.Marks[i] = m
	}
	if err := svc.validate.Struct(sheet); err != nil {
		return nil, err
	}

	results := make([]school.Result, 0, len(sheet.Marks))
	for _, m := range sheet.Marks {
		results = append(results, school.Result{AssessmentID: a.ID, StudentID: m.StudentID, MarksObtained: *m.Marks})
	}

	if err := svc.store.UpsertResults(ctx, results); err != nil {
		return nil, errors.Wrap(err, "saving results")
	}
	svc.log.Info("marks recorded", map[string]interface{}{"assessment": a.ID, "students": len(results)})
	return results, nil
}
