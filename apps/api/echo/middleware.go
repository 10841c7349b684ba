package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/school"
)

// roleMiddleware lets through users holding any of `roles`.
func roleMiddleware(roles ...school.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}

// ctxStudentOrStaffMiddleware lets students reach their own records only (`:id` param).
// Teachers and admins reach any student.
func ctxStudentOrStaffMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			switch claims.Role {
			case school.RoleAdmin, school.RoleTeacher:
				return next(ctx)
			case school.RoleStudent:
				if claims.StudentID != "" && claims.StudentID == ctx.Param("id") {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}

var staffOnly = roleMiddleware(school.RoleAdmin, school.RoleTeacher)
