package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/school"
)

type (
	MarkAttendanceRequest struct {
		Date  string                             `json:"date" validate:"required"`
		Marks map[string]school.AttendanceStatus `json:"marks" validate:"required,min=1,dive,keys,studentid,endkeys,attstatus"`
	}

	SaveAssessmentResults struct {
		Marks []school.Marks `json:"marks" validate:"required,min=1,dive"`
	}

	GPARequest struct {
		Courses []grade.CourseCredit `json:"courses" validate:"required,min=1,dive"`
	}
)

type courseApi struct {
	*Server
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, s *Server) {
	api := courseApi{s}

	cg := g.Group("/courses/:id", jwt, staffOnly)
	cg.GET("/average", api.average)
	cg.GET("/attendance", api.attendance)
	cg.POST("/attendance", api.markAttendance)
}

func registerAssessmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, s *Server) {
	api := courseApi{s}

	ag := g.Group("/assessments", jwt, staffOnly)
	ag.POST("", api.saveAssessment)
	ag.POST("/:id/results", api.saveResults)
}

func registerGPAAPI(g *echo.Group, jwt echo.MiddlewareFunc, s *Server) {
	api := courseApi{s}
	g.POST("/gpa", api.gpa, jwt)
}

// Handlers

func (api courseApi) average(ctx echo.Context) error {
	avg, err := api.GradeSvc.CourseAverage(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "computing course average")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"average": avg})
}

func (api courseApi) attendance(ctx echo.Context) error {
	day, err := school.ParseDay(ctx.QueryParam("date"), api.AttendanceSvc.Location())
	if err != nil {
		return errInvalidDate
	}
	recs, err := api.AttendanceSvc.ByDate(ctx.Request().Context(), ctx.Param("id"), day)
	if err != nil {
		return errors.Wrap(err, "getting attendance by date")
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api courseApi) markAttendance(ctx echo.Context) error {
	var data MarkAttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MarkAttendanceRequest")
	}
	if err := api.Validate.Struct(data); err != nil {
		return err
	}
	day, err := school.ParseDay(data.Date, api.AttendanceSvc.Location())
	if err != nil {
		return errInvalidDate
	}

	recs, err := api.AttendanceSvc.MarkBulk(ctx.Request().Context(), ctx.Param("id"), day, data.Marks)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusCreated, recs)
}

func (api courseApi) saveAssessment(ctx echo.Context) error {
	var data school.Assessment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Assessment")
	}
	if err := api.Validate.Struct(data); err != nil {
		return err
	}

	a, err := api.GradeSvc.SaveAssessment(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "saving assessment")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api courseApi) saveResults(ctx echo.Context) error {
	var data SaveAssessmentResults
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveAssessmentResults")
	}
	if err := api.Validate.Struct(data); err != nil {
		return err
	}

	results, err := api.GradeSvc.RecordMarks(ctx.Request().Context(), ctx.Param("id"), data.Marks)
	if err != nil {
		return errors.Wrap(err, "recording marks")
	}
	return ctx.JSON(http.StatusOK, results)
}

func (api courseApi) gpa(ctx echo.Context) error {
	var data GPARequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GPARequest")
	}
	if err := api.Validate.Struct(data); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"gpa": grade.SemesterGPA(data.Courses)})
}
