package document

import (
	"time"

	"github.com/trezcool/gradebook/core/school"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

// termStart is the first class day of the seeded term.
var termStart = day(2024, time.September, 2)

// Seed returns the default dataset: demo accounts, courses and some marks and attendance.
func Seed() school.Document {
	semester := school.CurrentSemester(termStart)
	return school.Document{
		Version: school.DocumentVersion,
		Users: []school.User{
			{ID: "U001", Email: "admin@university.edu", Password: "admin123", Role: school.RoleAdmin, FirstName: "System", LastName: "Administrator"},
			{ID: "U002", Email: "sarah.johnson@university.edu", Password: "teacher123", Role: school.RoleTeacher, FirstName: "Sarah", LastName: "Johnson"},
			{ID: "U003", Email: "michael.brown@university.edu", Password: "teacher123", Role: school.RoleTeacher, FirstName: "Michael", LastName: "Brown"},
			{ID: "U004", Email: "david.wilson@student.edu", Password: "student123", Role: school.RoleStudent, FirstName: "David", LastName: "Wilson"},
			{ID: "U005", Email: "emma.davis@student.edu", Password: "student123", Role: school.RoleStudent, FirstName: "Emma", LastName: "Davis"},
			{ID: "U006", Email: "james.miller@student.edu", Password: "student123", Role: school.RoleStudent, FirstName: "James", LastName: "Miller"},
		},
		Teachers: []school.Teacher{
			{ID: "T001", UserID: "U002", FirstName: "Sarah", LastName: "Johnson", Department: "Computer Science"},
			{ID: "T002", UserID: "U003", FirstName: "Michael", LastName: "Brown", Department: "Mathematics"},
		},
		Students: []school.Student{
			{ID: "S2024001", UserID: "U004", FirstName: "David", LastName: "Wilson", Program: "BSc Computer Science", Year: 2},
			{ID: "S2024002", UserID: "U005", FirstName: "Emma", LastName: "Davis", Program: "BSc Computer Science", Year: 2},
			{ID: "S2024003", UserID: "U006", FirstName: "James", LastName: "Miller", Program: "BSc Mathematics", Year: 1},
		},
		Courses: []school.Course{
			{ID: "C001", Code: "CS101", Name: "Introduction to Programming", Credits: 4, TeacherID: "T001", Semester: semester},
			{ID: "C002", Code: "CS201", Name: "Data Structures", Credits: 3, TeacherID: "T001", Semester: semester},
			{ID: "C003", Code: "MATH101", Name: "Calculus I", Credits: 4, TeacherID: "T002", Semester: semester},
		},
		Enrollments: []school.Enrollment{
			{StudentID: "S2024001", CourseID: "C001"},
			{StudentID: "S2024001", CourseID: "C002"},
			{StudentID: "S2024001", CourseID: "C003"},
			{StudentID: "S2024002", CourseID: "C001"},
			{StudentID: "S2024002", CourseID: "C003"},
			{StudentID: "S2024003", CourseID: "C002"},
			{StudentID: "S2024003", CourseID: "C003"},
		},
		Assessments: []school.Assessment{
			{ID: "A001", CourseID: "C001", Title: "Assignment 1", Type: "assignment", MaxMarks: 20, Weightage: 20, Date: day(2024, time.September, 20)},
			{ID: "A002", CourseID: "C001", Title: "Midterm Exam", Type: "exam", MaxMarks: 50, Weightage: 30, Date: day(2024, time.October, 15)},
			{ID: "A003", CourseID: "C002", Title: "Quiz 1", Type: "quiz", MaxMarks: 10, Weightage: 10, Date: day(2024, time.September, 25)},
			{ID: "A004", CourseID: "C003", Title: "Midterm Exam", Type: "exam", MaxMarks: 100, Weightage: 40, Date: day(2024, time.October, 18)},
		},
		Results: []school.Result{
			{ID: "R001", AssessmentID: "A001", StudentID: "S2024001", MarksObtained: 18},
			{ID: "R002", AssessmentID: "A002", StudentID: "S2024001", MarksObtained: 42},
			{ID: "R003", AssessmentID: "A003", StudentID: "S2024001", MarksObtained: 8},
			{ID: "R004", AssessmentID: "A004", StudentID: "S2024001", MarksObtained: 76},
			{ID: "R005", AssessmentID: "A001", StudentID: "S2024002", MarksObtained: 15},
			{ID: "R006", AssessmentID: "A002", StudentID: "S2024002", MarksObtained: 35},
			{ID: "R007", AssessmentID: "A004", StudentID: "S2024002", MarksObtained: 58},
			{ID: "R008", AssessmentID: "A003", StudentID: "S2024003", MarksObtained: 6},
			{ID: "R009", AssessmentID: "A004", StudentID: "S2024003", MarksObtained: 39},
		},
		Attendance: []school.AttendanceRecord{
			{ID: "ATT001", CourseID: "C001", StudentID: "S2024001", Date: day(2024, time.September, 2), Status: school.StatusPresent},
			{ID: "ATT002", CourseID: "C001", StudentID: "S2024002", Date: day(2024, time.September, 2), Status: school.StatusPresent},
			{ID: "ATT003", CourseID: "C001", StudentID: "S2024001", Date: day(2024, time.September, 4), Status: school.StatusLate},
			{ID: "ATT004", CourseID: "C001", StudentID: "S2024002", Date: day(2024, time.September, 4), Status: school.StatusAbsent},
			{ID: "ATT005", CourseID: "C001", StudentID: "S2024001", Date: day(2024, time.September, 9), Status: school.StatusPresent},
			{ID: "ATT006", CourseID: "C001", StudentID: "S2024002", Date: day(2024, time.September, 9), Status: school.StatusPresent},
			{ID: "ATT007", CourseID: "C002", StudentID: "S2024001", Date: day(2024, time.September, 3), Status: school.StatusPresent},
			{ID: "ATT008", CourseID: "C002", StudentID: "S2024003", Date: day(2024, time.September, 3), Status: school.StatusAbsent},
			{ID: "ATT009", CourseID: "C003", StudentID: "S2024003", Date: day(2024, time.September, 5), Status: school.StatusAbsent},
			{ID: "ATT010", CourseID: "C003", StudentID: "S2024003", Date: day(2024, time.September, 12), Status: school.StatusPresent},
		},
		Settings: school.Settings{
			InstitutionName:   "State University",
			AcademicYear:      school.AcademicYear(termStart),
			Semester:          semester,
			MinimumAttendance: 75,
			PassingGrade:      40,
		},
	}
}
