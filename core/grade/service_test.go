package grade

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
	"github.com/trezcool/gradebook/tests"
)

var (
	ctx        = context.Background()
	validate   = validator.New()
	translator = core.NewTranslator()
)

func init() {
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)
}

func TestService_reads(t *testing.T) {
	store, _, log := testutil.NewStore(t)
	svc := NewService(store, log, validate, 0)

	overall, err := svc.Overall(ctx, "S2024002")
	require.NoError(t, err)
	assert.Equal(t, Overall{Percentage: 68, Grade: "C", CGPA: "2.7"}, overall)

	avg, err := svc.CourseAverage(ctx, "C003")
	require.NoError(t, err)
	assert.Equal(t, 58, avg)

	_, err = svc.CourseAverage(ctx, "C404")
	assert.Equal(t, school.ErrCourseNotFound, errors.Cause(err))

	g, err := svc.CourseGrade(ctx, "S2024001", "C001")
	require.NoError(t, err)
	assert.InDelta(t, 86.4, g, 1e-9)
}

func TestService_Transcript(t *testing.T) {
	store, _, log := testutil.NewStore(t)
	svc := NewService(store, log, validate, 40)

	tr, err := svc.Transcript(ctx, "S2024001")
	require.NoError(t, err)
	assert.Equal(t, "David", tr.Student.FirstName)
	assert.Equal(t, "3.36", tr.GPA)
	assert.Equal(t, Overall{Percentage: 83, Grade: "B", CGPA: "3.7"}, tr.Overall)
	require.Len(t, tr.Courses, 3)
	assert.Equal(t, CourseResult{CourseID: "C001", Code: "CS101", Name: "Introduction to Programming", Credits: 4, Graded: true, Percentage: 86, Grade: "A", GradePoint: 4, Passing: true}, tr.Courses[0])

	// S2024003 fails Calculus (39%)
	tr, err = svc.Transcript(ctx, "S2024003")
	require.NoError(t, err)
	require.Len(t, tr.Courses, 2)
	assert.Equal(t, "F", tr.Courses[1].Grade)
	assert.False(t, tr.Courses[1].Passing)

	_, err = svc.Transcript(ctx, "S0000000")
	assert.Equal(t, school.ErrStudentNotFound, errors.Cause(err))
}

func TestService_TranscriptUngraded(t *testing.T) {
	store, _, log := testutil.NewStore(t, school.Document{
		Students:    []school.Student{{ID: "S2024009"}},
		Courses:     []school.Course{{ID: "c1", Credits: 3}, {ID: "c2", Credits: 4}},
		Enrollments: []school.Enrollment{{StudentID: "S2024009", CourseID: "c1"}, {StudentID: "S2024009", CourseID: "c2"}},
		Assessments: []school.Assessment{{ID: "A1", CourseID: "c1", MaxMarks: 10, Weightage: 50}},
		Results:     []school.Result{{AssessmentID: "A1", StudentID: "S2024009", MarksObtained: 7}},
	})
	svc := NewService(store, log, validate, 0)

	tr, err := svc.Transcript(ctx, "S2024009")
	require.NoError(t, err)
	require.Len(t, tr.Courses, 2)
	assert.True(t, tr.Courses[0].Graded)
	assert.Equal(t, "B", tr.Courses[0].Grade)
	assert.False(t, tr.Courses[1].Graded)
	assert.Equal(t, NotAvailable, tr.Courses[1].Grade)
	assert.Equal(t, "3.00", tr.GPA) // c2 left out
}

func TestService_RecordMarks(t *testing.T) {
	store, _, log := testutil.NewStore(t)
	svc := NewService(store, log, validate, 0)
	fPtr := func(f float64) *float64 { return &f }

	tests := []struct {
		name         string
		assessmentID string
		marks        []school.Marks
		wantErr      bool
		wantFields   map[string]string
	}{
		{name: "unknown assessment", assessmentID: "A404", marks: []school.Marks{{StudentID: "S2024001", Marks: fPtr(1)}}, wantErr: true},
		{
			name:         "out of range",
			assessmentID: "A001",
			marks: []school.Marks{
				{StudentID: "S2024001", Marks: fPtr(21)},
				{StudentID: "S2024002", Marks: fPtr(-1)},
				{StudentID: "S2024003"},
			},
			wantErr: true,
			wantFields: map[string]string{
				"marks[0].marksObtained": "marks cannot exceed 20",
				"marks[1].marksObtained": "marksObtained must be 0 or greater",
				"marks[2].marksObtained": "this field is required",
			},
		},
		{
			name:         "invalid student",
			assessmentID: "A001",
			marks:        []school.Marks{{StudentID: "  ", Marks: fPtr(5)}, {StudentID: "2024001", Marks: fPtr(5)}},
			wantErr:      true,
			wantFields: map[string]string{
				"marks[0].studentId": "this field cannot be blank",
				"marks[1].studentId": "invalid student ID",
			},
		},
		{name: "no marks", assessmentID: "A001", wantErr: true, wantFields: map[string]string{"marks": "this field is required"}},
		{name: "valid", assessmentID: "A001", marks: []school.Marks{{StudentID: "S2024001", Marks: fPtr(20)}, {StudentID: "S2024002", Marks: fPtr(0)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RecordMarks(ctx, tt.assessmentID, tt.marks)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecordMarks() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(tt.wantFields) > 0 {
				vErrs, ok := errors.Cause(err).(validator.ValidationErrors)
				require.True(t, ok, "RecordMarks() error = %v, want validator.ValidationErrors", err)
				assert.Equal(t, tt.wantFields, core.TranslateErrors(vErrs, translator))
			}
		})
	}

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	got := make(map[string]float64)
	for _, r := range doc.Results {
		if r.AssessmentID == "A001" {
			got[r.StudentID] = r.MarksObtained
		}
	}
	assert.Equal(t, map[string]float64{"S2024001": 20, "S2024002": 0}, got)
}

func TestService_SaveAssessment(t *testing.T) {
	store, _, log := testutil.NewStore(t)
	svc := NewService(store, log, validate, 0)

	_, err := svc.SaveAssessment(ctx, school.Assessment{CourseID: "C404", Title: "Quiz", MaxMarks: 10})
	assert.Equal(t, school.ErrCourseNotFound, errors.Cause(err))

	a, err := svc.SaveAssessment(ctx, school.Assessment{CourseID: "C002", Title: "Quiz 2", MaxMarks: 10, Weightage: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	doc, _ := store.Load(ctx)
	assert.Len(t, doc.CourseAssessments("C002"), 2)
}
