package school

import "time"

// DocumentVersion is the version written by this build.
const DocumentVersion = 1

type (
	User struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      Role   `json:"role"`
		FirstName string `json:"firstName,omitempty"`
		LastName  string `json:"lastName,omitempty"`
	}

	Teacher struct {
		ID         string `json:"id"`
		UserID     string `json:"userId"`
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Department string `json:"department,omitempty"`
	}

	Student struct {
		ID        string `json:"id"`
		UserID    string `json:"userId"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Program   string `json:"program,omitempty"`
		Year      int    `json:"year,omitempty"`
	}

	Course struct {
		ID        string `json:"id"`
		Code      string `json:"code"`
		Name      string `json:"name"`
		Credits   int    `json:"credits"`
		TeacherID string `json:"teacherId"`
		Semester  string `json:"semester,omitempty"`
	}

	Enrollment struct {
		StudentID string `json:"studentId"`
		CourseID  string `json:"courseId"`
	}

	Assessment struct {
		ID        string    `json:"id" validate:"omitempty,notblank"`
		CourseID  string    `json:"courseId" validate:"required,notblank"`
		Title     string    `json:"title" validate:"required,notblank"`
		Type      string    `json:"type,omitempty"`
		MaxMarks  float64   `json:"maxMarks" validate:"gt=0"`
		Weightage float64   `json:"weightage" validate:"gte=0,lte=100"`
		Date      time.Time `json:"date"`
	}

	Result struct {
		ID            string  `json:"id,omitempty"`
		AssessmentID  string  `json:"assessmentId" validate:"required"`
		StudentID     string  `json:"studentId" validate:"required"`
		MarksObtained float64 `json:"marksObtained" validate:"gte=0"`
	}

	AttendanceRecord struct {
		ID        string           `json:"id"`
		CourseID  string           `json:"courseId" validate:"required"`
		StudentID string           `json:"studentId" validate:"required"`
		Date      time.Time        `json:"date"`
		Status    AttendanceStatus `json:"status" validate:"attstatus"`
	}

	Settings struct {
		InstitutionName   string `json:"institutionName"`
		AcademicYear      string `json:"academicYear"`
		Semester          string `json:"semester"`
		MinimumAttendance int    `json:"minimumAttendance"`
		PassingGrade      int    `json:"passingGrade"`
	}

	// Document is the whole persisted dataset.
	Document struct {
		Version     int                `json:"version"`
		Users       []User             `json:"users"`
		Teachers    []Teacher          `json:"teachers"`
		Students    []Student          `json:"students"`
		Courses     []Course           `json:"courses"`
		Enrollments []Enrollment       `json:"enrollments"`
		Assessments []Assessment       `json:"assessments"`
		Results     []Result           `json:"results"`
		Attendance  []AttendanceRecord `json:"attendance"`
		Settings    Settings           `json:"settings"`
	}
)

func (u User) FullName() string    { return fullName(u.FirstName, u.LastName) }
func (s Student) FullName() string { return fullName(s.FirstName, s.LastName) }
func (t Teacher) FullName() string { return fullName(t.FirstName, t.LastName) }

func fullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// Clone returns a copy of the document that shares no slice with `d`.
func (d Document) Clone() Document {
	c := d
	c.Users = append([]User(nil), d.Users...)
	c.Teachers = append([]Teacher(nil), d.Teachers...)
	c.Students = append([]Student(nil), d.Students...)
	c.Courses = append([]Course(nil), d.Courses...)
	c.Enrollments = append([]Enrollment(nil), d.Enrollments...)
	c.Assessments = append([]Assessment(nil), d.Assessments...)
	c.Results = append([]Result(nil), d.Results...)
	c.Attendance = append([]AttendanceRecord(nil), d.Attendance...)
	return c
}

func (d Document) User(id string) (User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func (d Document) UserByEmail(email string) (User, bool) {
	for _, u := range d.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

func (d Document) Student(id string) (Student, bool) {
	for _, s := range d.Students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

// StudentByUser returns the student profile linked to the user account.
func (d Document) StudentByUser(userID string) (Student, bool) {
	for _, s := range d.Students {
		if s.UserID == userID {
			return s, true
		}
	}
	return Student{}, false
}

func (d Document) TeacherByUser(userID string) (Teacher, bool) {
	for _, t := range d.Teachers {
		if t.UserID == userID {
			return t, true
		}
	}
	return Teacher{}, false
}

func (d Document) Course(id string) (Course, bool) {
	for _, c := range d.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

func (d Document) Assessment(id string) (Assessment, bool) {
	for _, a := range d.Assessments {
		if a.ID == id {
			return a, true
		}
	}
	return Assessment{}, false
}

// CourseAssessments returns the assessments of a course, in stored order.
func (d Document) CourseAssessments(courseID string) []Assessment {
	var as []Assessment
	for _, a := range d.Assessments {
		if a.CourseID == courseID {
			as = append(as, a)
		}
	}
	return as
}

// StudentCourses returns the courses a student is enrolled in, in enrollment order.
func (d Document) StudentCourses(studentID string) []Course {
	var cs []Course
	for _, e := range d.Enrollments {
		if e.StudentID != studentID {
			continue
		}
		if c, ok := d.Course(e.CourseID); ok {
			cs = append(cs, c)
		}
	}
	return cs
}

// CourseStudents returns the ids of the students enrolled in a course.
func (d Document) CourseStudents(courseID string) []string {
	var ids []string
	for _, e := range d.Enrollments {
		if e.CourseID == courseID {
			ids = append(ids, e.StudentID)
		}
	}
	return ids
}

func (d Document) StudentResults(studentID string) []Result {
	var rs []Result
	for _, r := range d.Results {
		if r.StudentID == studentID {
			rs = append(rs, r)
		}
	}
	return rs
}
