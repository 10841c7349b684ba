package echoapi

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/auth"
	"github.com/trezcool/gradebook/core/school"
)

const tokenContextKey = "userToken"

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Email     string      `json:"email,omitempty"`
	Role      school.Role `json:"role"`
	StudentID string      `json:"studentId,omitempty"` // -> STUDENT DASHBOARD
	TeacherID string      `json:"teacherId,omitempty"` // -> TEACHER DASHBOARD
}

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// UserResponse is a user as seen by API clients (no password).
	UserResponse struct {
		ID        string      `json:"id"`
		Email     string      `json:"email"`
		Role      school.Role `json:"role"`
		FirstName string      `json:"firstName"`
		LastName  string      `json:"lastName"`
		StudentID string      `json:"studentId,omitempty"`
		TeacherID string      `json:"teacherId,omitempty"`
	}

	LoginResponse struct {
		Token     string       `json:"token"`
		Dashboard string       `json:"dashboard"`
		User      UserResponse `json:"user"`
	}
)

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    tokenContextKey,
		Claims:        new(Claims),
	}
}

func NewUserResponse(sess auth.Session) UserResponse {
	return UserResponse{
		ID:        sess.User.ID,
		Email:     sess.User.Email,
		Role:      sess.User.Role,
		FirstName: sess.User.FirstName,
		LastName:  sess.User.LastName,
		StudentID: sess.StudentID,
		TeacherID: sess.TeacherID,
	}
}

func GetSessionClaims(sess auth.Session, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   sess.User.ID,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Email:     sess.User.Email,
		Role:      sess.User.Role,
		StudentID: sess.StudentID,
		TeacherID: sess.TeacherID,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	jwtConf := newJWTConfig(conf)
	token := jwt.NewWithClaims(jwt.GetSigningMethod(jwtConf.SigningMethod), claims)

	ss, err := token.SignedString(jwtConf.SigningKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

// getContextClaims returns the request's claims. A token carrying an unknown role is unauthorized.
func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(tokenContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			role, err := school.ParseRole(string(claims.Role))
			if err != nil {
				return Claims{}, errUnauthorized
			}
			c := *claims
			c.Role = role
			return c, nil
		}
	}
	return Claims{}, errUnauthorized
}

type authApi struct {
	*Server
}

func registerAuthAPI(g *echo.Group, s *Server) {
	api := authApi{s}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
}

func (api authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := api.Validate.Struct(data); err != nil {
		return err
	}

	sess, err := api.AuthSvc.Login(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(GetSessionClaims(sess, api.Conf), api.Conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Dashboard: sess.Dashboard, User: NewUserResponse(sess)})
}
