package school

import (
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
)

// Role is the closed set of account kinds.
type Role string

// Roles
const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid attendance status")

	AllRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent}
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole cleans `s` and maps it to a known Role.
func ParseRole(s string) (Role, error) {
	r := Role(core.CleanString(s, true))
	if !r.Valid() {
		return "", errors.Wrapf(ErrInvalidRole, "%q", s)
	}
	return r, nil
}

// AttendanceStatus is the closed set of attendance marks.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// Attended reports whether the status counts towards attendance (present or late).
func (s AttendanceStatus) Attended() bool {
	return s == StatusPresent || s == StatusLate
}

func (s AttendanceStatus) String() string { return string(s) }

func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	st := AttendanceStatus(core.CleanString(s, true))
	if !st.Valid() {
		return "", errors.Wrapf(ErrInvalidStatus, "%q", s)
	}
	return st, nil
}
