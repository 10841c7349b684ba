package auth

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUserNotFound       = errors.New("user not found")

	bcryptCost = bcrypt.DefaultCost

	dashboards = map[school.Role]string{
		school.RoleAdmin:   "admin-dashboard",
		school.RoleTeacher: "teacher-dashboard",
		school.RoleStudent: "student-dashboard",
	}
)

type (
	Store interface {
		Load(ctx context.Context) (school.Document, error)
		UpdateUser(ctx context.Context, usr school.User) error
	}

	Service struct {
		store    Store
		log      core.Logger
		validate *validator.Validate
	}

	// Session is an authenticated user with the profile linked to its account.
	Session struct {
		User      school.User `json:"user"`
		StudentID string      `json:"studentId,omitempty"`
		TeacherID string      `json:"teacherId,omitempty"`
		Dashboard string      `json:"dashboard"`
	}

	NewPassword struct {
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required"`
		PasswordConfirm string `json:"passwordConfirm" validate:"eqfield=Password"`
	}
)

func NewService(store Store, log core.Logger, validate *validator.Validate) *Service {
	return &Service{store: store, log: log, validate: validate}
}

// Dashboard returns the landing page of a role.
func Dashboard(role school.Role) (string, error) {
	page, ok := dashboards[role]
	if !ok {
		return "", errors.Wrapf(ErrUnknownRole, "%q", role)
	}
	return page, nil
}

func isHashed(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$")
}

// checkPassword compares pwd with a bcrypt hash, or verbatim with a plaintext password.
func checkPassword(stored, pwd string) bool {
	if isHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(pwd)) == nil
	}
	return stored != "" && stored == pwd
}

func HashPassword(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcryptCost)
	if err != nil {
		return "", errors.Wrap(err, "hashing password")
	}
	return string(hash), nil
}

// Login authenticates a user by email (case-insensitive) and password.
func (svc *Service) Login(ctx context.Context, email, password string) (Session, error) {
	doc, err := svc.store.Load(ctx)
	if err != nil {
		return Session{}, errors.Wrap(err, "loading users")
	}

	email = core.CleanString(email, true /* lower */)
	var usr school.User
	var found bool
	for _, u := range doc.Users {
		if core.CleanString(u.Email, true) == email {
			usr, found = u, true
			break
		}
	}
	if !found || !checkPassword(usr.Password, password) {
		svc.log.Warn("failed login", map[string]interface{}{"email": email})
		return Session{}, ErrInvalidCredentials
	}

	page, err := Dashboard(usr.Role)
	if err != nil {
		return Session{}, err
	}
	sess := Session{User: usr, Dashboard: page}
	switch usr.Role {
	case school.RoleStudent:
		if stu, ok := doc.StudentByUser(usr.ID); ok {
			sess.StudentID = stu.ID
		}
	case school.RoleTeacher:
		if tch, ok := doc.TeacherByUser(usr.ID); ok {
			sess.TeacherID = tch.ID
		}
	}
	svc.log.Info("user logged in", usr)
	return sess, nil
}

// ResetPassword stores a bcrypt hash of the new password.
func (svc *Service) ResetPassword(ctx context.Context, np NewPassword) error {
	np.Email = core.CleanString(np.Email, true)
	if err := svc.validate.Struct(np); err != nil {
		return err
	}

	doc, err := svc.store.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "loading users")
	}
	var usr school.User
	var found bool
	for _, u := range doc.Users {
		if core.CleanString(u.Email, true) == np.Email {
			usr, found = u, true
			break
		}
	}
	if !found {
		return errors.Wrapf(ErrUserNotFound, "%s", np.Email)
	}

	if usr.Password, err = HashPassword(np.Password); err != nil {
		return err
	}
	if err = svc.store.UpdateUser(ctx, usr); err != nil {
		return errors.Wrap(err, "saving user")
	}
	svc.log.Info("password reset", usr)
	return nil
}
