package school

import (
	"fmt"
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	attStatusTag  = "attstatus"
	attStatusText = "status must be one of present, absent or late"

	studentIDTag   = "studentid"
	studentIDText  = "invalid student ID"
	studentIDRegex = regexp.MustCompile(`^S\d{7}$`)

	marksMaxTag = "marksmax"
)

// Marks is a mark entry checked against its assessment's maximum.
// A zero MaxMarks (not known yet) skips the maximum check.
type Marks struct {
	StudentID string   `json:"studentId" validate:"required,notblank,studentid"`
	Marks     *float64 `json:"marksObtained" validate:"required,gte=0"`
	MaxMarks  float64  `json:"-"`
}

// InitValidators registers the school validation tags. core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(attStatusTag, attStatusValidation)
	core.RegisterCustomTranslation(validate, translator, attStatusTag, attStatusText)

	_ = validate.RegisterValidation(studentIDTag, studentIDValidation)
	core.RegisterCustomTranslation(validate, translator, studentIDTag, studentIDText)

	validate.RegisterStructValidation(marksStructValidation, Marks{})
	_ = validate.RegisterTranslation(
		marksMaxTag, translator,
		func(t ut.Translator) error { return t.Add(marksMaxTag, "marks cannot exceed {0}", false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(marksMaxTag, fe.Param())
			return s
		},
	)
}

// IsValidStudentID checks the institutional student number format (S followed by 7 digits).
func IsValidStudentID(id string) bool {
	return studentIDRegex.MatchString(id)
}

// Custom Validators

// attStatusValidation accepts any status ParseAttendanceStatus knows, eg: "Present".
func attStatusValidation(fl validator.FieldLevel) bool {
	var s string
	switch v := fl.Field().Interface().(type) {
	case AttendanceStatus:
		s = string(v)
	case string:
		s = v
	default:
		return false
	}
	_, err := ParseAttendanceStatus(s)
	return err == nil
}

func studentIDValidation(fl validator.FieldLevel) bool {
	if id, ok := fl.Field().Interface().(string); ok {
		return IsValidStudentID(id)
	}
	return false
}

// marksStructValidation checks that obtained marks do not exceed the maximum.
func marksStructValidation(sl validator.StructLevel) {
	m, ok := sl.Current().Interface().(Marks)
	if !ok || m.Marks == nil || m.MaxMarks <= 0 {
		return
	}
	if *m.Marks > m.MaxMarks {
		sl.ReportError(*m.Marks, "marksObtained", "Marks", marksMaxTag, fmt.Sprintf("%g", m.MaxMarks))
	}
}
