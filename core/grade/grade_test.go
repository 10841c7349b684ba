package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradebook/core/school"
)

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "A"}, {85, "A"}, {84, "B"}, {84.99, "B"}, {70, "B"}, {69, "C"},
		{55, "C"}, {54, "D"}, {40, "D"}, {39, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := LetterGrade(tt.pct); got != tt.want {
			t.Errorf("LetterGrade(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestCGPA(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{95, "4.0"}, {85, "4.0"}, {84, "3.7"}, {80, "3.7"}, {75, "3.3"}, {72, "3.0"},
		{65, "2.7"}, {60, "2.3"}, {59, "2.0"}, {50, "1.7"}, {45, "1.3"}, {40, "1.0"}, {39, "0.0"},
	}
	for _, tt := range tests {
		if got := CGPA(tt.pct); got != tt.want {
			t.Errorf("CGPA(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}

func TestWeightedGrade(t *testing.T) {
	res := func(marks float64) *school.Result { return &school.Result{MarksObtained: marks} }
	a := func(max, weight float64) school.Assessment {
		return school.Assessment{MaxMarks: max, Weightage: weight}
	}

	tests := []struct {
		name   string
		scored []Scored
		want   float64
	}{
		{
			name: "unscored assessments ignored",
			scored: []Scored{
				{Assessment: a(50, 40), Result: res(40)},
				{Assessment: a(50, 60)},
			},
			want: 80,
		},
		{
			name: "weighted",
			scored: []Scored{
				{Assessment: a(20, 20), Result: res(18)},
				{Assessment: a(50, 30), Result: res(42)},
			},
			want: 86.4,
		},
		{name: "nothing scored", scored: []Scored{{Assessment: a(50, 40)}}, want: 0},
		{name: "empty", want: 0},
		{name: "zero max marks", scored: []Scored{{Assessment: a(0, 40), Result: res(0)}}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WeightedGrade(tt.scored), 1e-9)
		})
	}
}

func TestOverallGrade(t *testing.T) {
	doc := school.Document{
		Assessments: []school.Assessment{
			{ID: "A1", MaxMarks: 50, Weightage: 10},
			{ID: "A2", MaxMarks: 20, Weightage: 90},
		},
		Results: []school.Result{
			{AssessmentID: "A1", StudentID: "s1", MarksObtained: 45}, // 90%
			{AssessmentID: "A2", StudentID: "s1", MarksObtained: 15}, // 75%
			{AssessmentID: "A1", StudentID: "s2", MarksObtained: 25}, // 50%
			{AssessmentID: "gone", StudentID: "s2", MarksObtained: 20},
		},
	}

	tests := []struct {
		name      string
		studentID string
		want      Overall
	}{
		{name: "unweighted mean", studentID: "s1", want: Overall{Percentage: 83, Grade: "B", CGPA: "3.7"}},
		{name: "missing assessment counts in divisor", studentID: "s2", want: Overall{Percentage: 25, Grade: "F", CGPA: "0.0"}},
		{name: "no results", studentID: "s3", want: Overall{Percentage: 0, Grade: "N/A", CGPA: "0.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallGrade(doc, tt.studentID))
		})
	}
}

func TestScoredIn(t *testing.T) {
	doc := school.Document{
		Assessments: []school.Assessment{
			{ID: "A1", CourseID: "c1", MaxMarks: 20, Weightage: 50},
			{ID: "A2", CourseID: "c1", MaxMarks: 10, Weightage: 50},
			{ID: "A3", CourseID: "c2", MaxMarks: 10, Weightage: 10},
		},
		Results: []school.Result{
			{ID: "R1", AssessmentID: "A1", StudentID: "s2", MarksObtained: 1},
			{ID: "R2", AssessmentID: "A1", StudentID: "s1", MarksObtained: 10},
			{ID: "R3", AssessmentID: "A1", StudentID: "s1", MarksObtained: 20}, // duplicate
			{ID: "R4", AssessmentID: "A3", StudentID: "s1", MarksObtained: 5},
		},
	}

	scored := ScoredIn(doc, "s1", "c1")
	if assert.Len(t, scored, 2) {
		assert.Equal(t, "A1", scored[0].Assessment.ID)
		if assert.NotNil(t, scored[0].Result) {
			assert.Equal(t, "R2", scored[0].Result.ID)
		}
		assert.Equal(t, "A2", scored[1].Assessment.ID)
		assert.Nil(t, scored[1].Result)
	}
	// 10/20 on the only scored assessment
	assert.InDelta(t, 50.0, CourseGrade(doc, "s1", "c1"), 1e-9)
}

func TestCourseAverage(t *testing.T) {
	doc := school.Document{
		Enrollments: []school.Enrollment{
			{StudentID: "s1", CourseID: "c1"},
			{StudentID: "s2", CourseID: "c1"},
			{StudentID: "s3", CourseID: "c1"}, // no results
			{StudentID: "s1", CourseID: "c2"},
		},
		Assessments: []school.Assessment{
			{ID: "A1", CourseID: "c1", MaxMarks: 20, Weightage: 20},
			{ID: "A2", CourseID: "c1", MaxMarks: 50, Weightage: 30},
			{ID: "A3", CourseID: "c3", MaxMarks: 10, Weightage: 10},
		},
		Results: []school.Result{
			{AssessmentID: "A1", StudentID: "s1", MarksObtained: 18},
			{AssessmentID: "A2", StudentID: "s1", MarksObtained: 42},
			{AssessmentID: "A1", StudentID: "s2", MarksObtained: 15},
			{AssessmentID: "A2", StudentID: "s2", MarksObtained: 35},
		},
	}

	tests := []struct {
		name     string
		courseID string
		want     int
	}{
		{name: "students without results skipped", courseID: "c1", want: 79},
		{name: "no assessments", courseID: "c2", want: 0},
		{name: "no enrollments", courseID: "c3", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseAverage(doc, tt.courseID); got != tt.want {
				t.Errorf("CourseAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSemesterGPA(t *testing.T) {
	tests := []struct {
		name    string
		courses []CourseCredit
		want    string
	}{
		{name: "credit weighted", courses: []CourseCredit{{Credits: 3, Grade: "A"}, {Credits: 1, Grade: "F"}}, want: "3.00"},
		{name: "two decimals", courses: []CourseCredit{{Credits: 4, Grade: "A"}, {Credits: 3, Grade: "B"}, {Credits: 4, Grade: "B"}}, want: "3.36"},
		{name: "unknown letter", courses: []CourseCredit{{Credits: 2, Grade: "A"}, {Credits: 2, Grade: "E"}}, want: "2.00"},
		{name: "no credits", courses: []CourseCredit{{Credits: 0, Grade: "A"}}, want: "0.00"},
		{name: "empty", want: "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SemesterGPA(tt.courses); got != tt.want {
				t.Errorf("SemesterGPA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(40))
	assert.False(t, IsPassing(39.9))
	assert.True(t, IsPassing(50, 50))
	assert.False(t, IsPassing(49, 50))
}

func TestGradePoint(t *testing.T) {
	assert.Equal(t, 4.0, GradePoint("A"))
	assert.Equal(t, 1.0, GradePoint("D"))
	assert.Equal(t, 0.0, GradePoint("N/A"))
}
