package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/attendance"
)

type (
	StudentAttendanceResponse struct {
		attendance.Summary
		Minimum      int  `json:"minimum"`
		BelowMinimum bool `json:"belowMinimum"`
	}

	CourseAttendanceResponse struct {
		Percentage   int  `json:"percentage"`
		Minimum      int  `json:"minimum"`
		BelowMinimum bool `json:"belowMinimum"`
	}
)

type studentApi struct {
	*Server
}

func registerStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, s *Server) {
	api := studentApi{s}

	sg := g.Group("/students/:id", jwt, ctxStudentOrStaffMiddleware())
	sg.GET("/attendance", api.attendance)
	sg.GET("/attendance/:courseId", api.courseAttendance)
	sg.GET("/grades", api.grades)
	sg.GET("/transcript", api.transcript)
}

func (api studentApi) attendance(ctx echo.Context) error {
	sum, err := api.AttendanceSvc.Summary(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "summarizing attendance")
	}
	return ctx.JSON(http.StatusOK, StudentAttendanceResponse{
		Summary:      sum,
		Minimum:      api.AttendanceSvc.Minimum(),
		BelowMinimum: api.AttendanceSvc.IsBelowMinimum(sum.Percentage),
	})
}

func (api studentApi) courseAttendance(ctx echo.Context) error {
	pct, err := api.AttendanceSvc.Percentage(ctx.Request().Context(), ctx.Param("id"), ctx.Param("courseId"))
	if err != nil {
		return errors.Wrap(err, "computing attendance percentage")
	}
	return ctx.JSON(http.StatusOK, CourseAttendanceResponse{
		Percentage:   pct,
		Minimum:      api.AttendanceSvc.Minimum(),
		BelowMinimum: api.AttendanceSvc.IsBelowMinimum(pct),
	})
}

func (api studentApi) grades(ctx echo.Context) error {
	overall, err := api.GradeSvc.Overall(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "computing overall grade")
	}
	return ctx.JSON(http.StatusOK, overall)
}

func (api studentApi) transcript(ctx echo.Context) error {
	tr, err := api.GradeSvc.Transcript(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "building transcript")
	}
	return ctx.JSON(http.StatusOK, tr)
}
