package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/trezcool/gradebook/apps/api/echo"
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/attendance"
	"github.com/trezcool/gradebook/core/auth"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/school"
	"github.com/trezcool/gradebook/storage/document"
	"github.com/trezcool/gradebook/tests"
)

var (
	conf       *core.Config
	validate   *validator.Validate
	translator ut.Translator

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
)

func TestMain(m *testing.M) {
	conf = &core.Config{
		Env:       "TEST",
		TestMode:  true,
		AppName:   "Gradebook",
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			JWTExpirationDelta: time.Hour,
		},
	}

	validate = validator.New()
	translator = core.NewTranslator()
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)
	auth.InitValidators(validate, translator)

	os.Exit(m.Run())
}

// setup returns a server over a fresh store holding the default dataset.
func setup(t *testing.T) (*Server, *document.Store) {
	store, _, logger := testutil.NewStore(t, document.Seed())

	return NewServer(ServerDeps{
		Conf:          conf,
		Logger:        logger,
		AuthSvc:       auth.NewService(store, logger, validate),
		AttendanceSvc: attendance.NewService(store, logger, attendance.DefaultMinimum),
		GradeSvc:      grade.NewService(store, logger, validate, grade.DefaultPassing),
		Validate:      validate,
		Translator:    translator,
	}), store
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, sess auth.Session) string {
	token, err := GenerateToken(GetSessionClaims(sess, conf), conf)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

// sessions of the default dataset
var (
	adminSession   = auth.Session{User: school.User{ID: "U001", Email: "admin@university.edu", Role: school.RoleAdmin}}
	teacherSession = auth.Session{User: school.User{ID: "U002", Email: "sarah.johnson@university.edu", Role: school.RoleTeacher}, TeacherID: "T001"}
	davidSession   = auth.Session{User: school.User{ID: "U004", Email: "david.wilson@student.edu", Role: school.RoleStudent}, StudentID: "S2024001"}
	emmaSession    = auth.Session{User: school.User{ID: "U005", Email: "emma.davis@student.edu", Role: school.RoleStudent}, StudentID: "S2024002"}
)

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app *Server, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
