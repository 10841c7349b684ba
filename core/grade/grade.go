package grade

import (
	"strconv"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
)

// DefaultPassing is the percentage from which a grade passes.
const DefaultPassing = 40

// NotAvailable is the grade of a student without results.
const NotAvailable = "N/A"

type (
	// Scored is an assessment with the student's result, if any.
	Scored struct {
		Assessment school.Assessment
		Result     *school.Result
	}

	Overall struct {
		Percentage int    `json:"percentage"`
		Grade      string `json:"grade"`
		CGPA       string `json:"cgpa"`
	}

	CourseCredit struct {
		Credits int    `json:"credits" validate:"gte=0"`
		Grade   string `json:"grade" validate:"required,oneof=A B C D F"`
	}
)

var letterBands = []struct {
	min    float64
	letter string
}{
	{85, "A"},
	{70, "B"},
	{55, "C"},
	{40, "D"},
}

var cgpaBands = []struct {
	min  float64
	cgpa string
}{
	{85, "4.0"},
	{80, "3.7"},
	{75, "3.3"},
	{70, "3.0"},
	{65, "2.7"},
	{60, "2.3"},
	{55, "2.0"},
	{50, "1.7"},
	{45, "1.3"},
	{40, "1.0"},
}

var gradePoints = map[string]float64{"A": 4.0, "B": 3.0, "C": 2.0, "D": 1.0, "F": 0.0}

// LetterGrade maps a percentage to A, B, C, D or F. Each threshold belongs to the upper band.
func LetterGrade(pct float64) string {
	for _, b := range letterBands {
		if pct >= b.min {
			return b.letter
		}
	}
	return "F"
}

// CGPA maps a percentage to a grade point on the ten-step scale.
func CGPA(pct float64) string {
	for _, b := range cgpaBands {
		if pct >= b.min {
			return b.cgpa
		}
	}
	return "0.0"
}

// GradePoint returns the points of a letter grade; 0 for unknown letters.
func GradePoint(letter string) float64 {
	return gradePoints[letter]
}

// IsPassing reports whether pct reaches the passing grade (DefaultPassing if omitted).
func IsPassing(pct float64, passing ...float64) bool {
	threshold := float64(DefaultPassing)
	if len(passing) > 0 {
		threshold = passing[0]
	}
	return pct >= threshold
}

func percentOf(marks, max float64) float64 {
	return marks / max * 100
}

// WeightedGrade averages the percentages of the scored assessments, weighted by weightage.
// Assessments without result count neither in the numerator nor in the denominator.
// Returns 0 when nothing is scored.
func WeightedGrade(scored []Scored) float64 {
	var weighted, weightage float64
	for _, s := range scored {
		if s.Result == nil || s.Assessment.MaxMarks <= 0 {
			continue
		}
		pct := percentOf(s.Result.MarksObtained, s.Assessment.MaxMarks)
		weighted += pct * s.Assessment.Weightage / 100
		weightage += s.Assessment.Weightage
	}
	if weightage <= 0 {
		return 0
	}
	return weighted / weightage * 100
}

// ScoredIn pairs a course's assessments with the student's results.
// Of duplicate results for an assessment, the first one counts.
func ScoredIn(doc school.Document, studentID, courseID string) []Scored {
	results := make(map[string]school.Result)
	for _, r := range doc.Results {
		if _, seen := results[r.AssessmentID]; !seen && r.StudentID == studentID {
			results[r.AssessmentID] = r
		}
	}

	assessments := doc.CourseAssessments(courseID)
	scored := make([]Scored, 0, len(assessments))
	for _, a := range assessments {
		s := Scored{Assessment: a}
		if r, ok := results[a.ID]; ok {
			s.Result = &r
		}
		scored = append(scored, s)
	}
	return scored
}

// CourseGrade is a student's weighted grade in one course.
func CourseGrade(doc school.Document, studentID, courseID string) float64 {
	return WeightedGrade(ScoredIn(doc, studentID, courseID))
}

// OverallGrade is the unweighted mean of the percentages of all a student's results.
// A result whose assessment no longer exists counts as 0 in the mean.
func OverallGrade(doc school.Document, studentID string) Overall {
	results := doc.StudentResults(studentID)
	if len(results) == 0 {
		return Overall{Percentage: 0, Grade: NotAvailable, CGPA: "0.0"}
	}

	var total float64
	for _, r := range results {
		if a, ok := doc.Assessment(r.AssessmentID); ok && a.MaxMarks > 0 {
			total += percentOf(r.MarksObtained, a.MaxMarks)
		}
	}
	avg := core.Round(total / float64(len(results)))
	return Overall{
		Percentage: avg,
		Grade:      LetterGrade(float64(avg)),
		CGPA:       CGPA(float64(avg)),
	}
}

// CourseAverage averages the weighted grades of the course's enrolled students who have
// at least one result. 0 without enrollments or assessments.
func CourseAverage(doc school.Document, courseID string) int {
	students := doc.CourseStudents(courseID)
	if len(students) == 0 || len(doc.CourseAssessments(courseID)) == 0 {
		return 0
	}

	var total float64
	var count int
	for _, id := range students {
		scored := ScoredIn(doc, id, courseID)
		if !hasWeightage(scored) {
			continue
		}
		total += WeightedGrade(scored)
		count++
	}
	if count == 0 {
		return 0
	}
	return core.Round(total / float64(count))
}

func hasWeightage(scored []Scored) bool {
	var weightage float64
	for _, s := range scored {
		if s.Result != nil && s.Assessment.MaxMarks > 0 {
			weightage += s.Assessment.Weightage
		}
	}
	return weightage > 0
}

// SemesterGPA is the credit-weighted mean of grade points, with 2 decimals.
func SemesterGPA(courses []CourseCredit) string {
	var points float64
	var credits int
	for _, c := range courses {
		points += GradePoint(c.Grade) * float64(c.Credits)
		credits += c.Credits
	}
	var gpa float64
	if credits > 0 {
		gpa = points / float64(credits)
	}
	return strconv.FormatFloat(gpa, 'f', 2, 64)
}
