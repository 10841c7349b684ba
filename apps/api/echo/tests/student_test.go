package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/gradebook/apps/api/echo"
	"github.com/trezcool/gradebook/core/attendance"
	"github.com/trezcool/gradebook/core/grade"
)

func Test_studentApi_attendance(t *testing.T) {
	app, _ := setup(t)
	davidToken := getToken(t, davidSession)

	tests := []httpTest{
		{name: "auth required", path: "/v1/students/S2024001/attendance", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "other student", path: "/v1/students/S2024002/attendance", token: davidToken,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "own summary", path: "/v1/students/S2024001/attendance", token: davidToken, wantCode: http.StatusOK,
			wantData: marchallObj(t, StudentAttendanceResponse{
				Summary: attendance.Summary{Total: 4, Present: 3, Absent: 0, Late: 1, Percentage: 100},
				Minimum: 75,
			}),
		},
		{
			name: "teacher reads any student", path: "/v1/students/S2024002/attendance/C001", token: getToken(t, teacherSession),
			wantCode: http.StatusOK, wantData: marchallObj(t, CourseAttendanceResponse{Percentage: 67, Minimum: 75, BelowMinimum: true}),
		},
		{
			name: "admin reads any student", path: "/v1/students/S2024001/attendance/C002", token: getToken(t, adminSession),
			wantCode: http.StatusOK, wantData: marchallObj(t, CourseAttendanceResponse{Percentage: 100, Minimum: 75}),
		},
		{
			name: "no records", path: "/v1/students/S2024002/attendance/C002", token: getToken(t, emmaSession),
			wantCode: http.StatusOK, wantData: marchallObj(t, CourseAttendanceResponse{Percentage: 0, Minimum: 75, BelowMinimum: true}),
		},
	}
	runHTTPTests(t, app, tests)
}

func Test_studentApi_grades(t *testing.T) {
	app, _ := setup(t)
	emmaToken := getToken(t, emmaSession)

	tests := []httpTest{
		{
			name: "other student", path: "/v1/students/S2024001/grades", token: emmaToken,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "own grades", path: "/v1/students/S2024002/grades", token: emmaToken,
			wantCode: http.StatusOK, wantData: marchallObj(t, grade.Overall{Percentage: 68, Grade: "C", CGPA: "2.7"}),
		},
		{
			name: "no results", path: "/v1/students/S9999999/grades", token: getToken(t, adminSession),
			wantCode: http.StatusOK, wantData: marchallObj(t, grade.Overall{Percentage: 0, Grade: grade.NotAvailable, CGPA: "0.0"}),
		},
	}
	runHTTPTests(t, app, tests)
}

func Test_studentApi_transcript(t *testing.T) {
	app, _ := setup(t)

	t.Run("unknown student", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/students/S9999999/transcript", getToken(t, adminSession))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "student not found"})}, rec)
	})

	t.Run("own transcript", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/students/S2024001/transcript", getToken(t, davidSession))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var tr grade.Transcript
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
		assert.Equal(t, "S2024001", tr.Student.ID)
		assert.Equal(t, "3.36", tr.GPA)
		assert.Equal(t, grade.Overall{Percentage: 83, Grade: "B", CGPA: "3.7"}, tr.Overall)
		if assert.Len(t, tr.Courses, 3) {
			assert.Equal(t, "CS101", tr.Courses[0].Code)
			assert.True(t, tr.Courses[0].Graded)
		}
	})
}
