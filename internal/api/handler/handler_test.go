package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/middleware"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/service"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

const (
	testAdminID  = "7d4f0c7e-1f2a-4c55-9a38-3f7f6f0b1a01"
	testCourseID = "0b9a4a3e-5a0e-4f0f-8d8e-2c1b7e6f9a02"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	signupResult *dto.AuthResponse
	signupErr    error
	loginResult  *dto.AuthResponse
	loginErr     error
	adminErr     error
}

func (m *mockAuthService) Signup(_ context.Context, _ *dto.SignupRequest) (*dto.AuthResponse, error) {
	return m.signupResult, m.signupErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) AdminLogin(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return m.loginResult, m.adminErr
}

// ── Mock CourseService ──

type mockCourseService struct {
	service.CourseService
	getResult *dto.CourseResponse
	getErr    error
	listErr   error
	deleteErr error
	gotActor  service.Actor
}

func (m *mockCourseService) Get(_ context.Context, actor service.Actor, _ string) (*dto.CourseResponse, error) {
	m.gotActor = actor
	return m.getResult, m.getErr
}
func (m *mockCourseService) List(_ context.Context, _ service.Actor) ([]dto.CourseResponse, error) {
	return nil, m.listErr
}
func (m *mockCourseService) Delete(_ context.Context, _ service.Actor, _ string) error {
	return m.deleteErr
}

// ── Mock SyllabusService ──

type mockSyllabusService struct {
	service.SyllabusService
	uploadErr    error
	gotCourseID  string
	gotFilename  string
	gotContent   []byte
	getCourseErr error
}

func (m *mockSyllabusService) Upload(_ context.Context, _ service.Actor, courseID string, file *dto.FileUpload) (*dto.SyllabusResponse, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	m.gotCourseID = courseID
	m.gotFilename = file.Filename
	m.gotContent, _ = io.ReadAll(file.Reader)
	return &dto.SyllabusResponse{ID: "s-1", CourseID: courseID, Filename: file.Filename}, nil
}
func (m *mockSyllabusService) GetByCourse(_ context.Context, _ service.Actor, _ string) (*dto.SyllabusResponse, error) {
	return nil, m.getCourseErr
}

// ── Mock ProjectSubmissionService ──

type mockProjectSubmissionService struct {
	service.ProjectSubmissionService
	createErr error
	called    bool
}

func (m *mockProjectSubmissionService) Create(_ context.Context, _ service.Actor, req *dto.CreateProjectSubmissionRequest) (*dto.ProjectSubmissionResponse, error) {
	m.called = true
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &dto.ProjectSubmissionResponse{ID: "ps-1", GithubLink: req.GithubLink}, nil
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	service.AttendanceService
	exportData []byte
	exportName string
	exportErr  error
}

func (m *mockAttendanceService) Export(_ context.Context, _ service.Actor, _ string) (*bytes.Buffer, string, error) {
	if m.exportErr != nil {
		return nil, "", m.exportErr
	}
	return bytes.NewBuffer(m.exportData), m.exportName, nil
}

// ── Mock EnrollmentService ──

type mockEnrollmentService struct {
	service.EnrollmentService
	calendar    []byte
	calendarErr error
}

func (m *mockEnrollmentService) ExportCalendar(_ context.Context, _ service.Actor, _, _ string) ([]byte, string, error) {
	return m.calendar, "progress.ics", m.calendarErr
}

// ═══════════════════════════════════════════════════════════
// Helpers
// ═══════════════════════════════════════════════════════════

func setupGin() (*gin.Engine, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	return r, w
}

// asAdmin stands in for JWTAuth.
func asAdmin(c *gin.Context) {
	c.Set(middleware.CtxUserID, testAdminID)
	c.Set(middleware.CtxRole, model.RoleAdmin)
	c.Next()
}

func asStudent(c *gin.Context) {
	c.Set(middleware.CtxUserID, "5f1e2d3c-4b5a-4969-8877-665544332211")
	c.Set(middleware.CtxRole, model.RoleStudent)
	c.Next()
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func multipartBody(t *testing.T, fileField, filename string, content []byte, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.AuthResponse{
			Token: "token-abc",
			User:  dto.UserResponse{ID: "u-1", Email: "asha@example.com", Role: model.RoleStudent},
		},
	}
	h := NewAuthHandler(mock)

	r, w := setupGin()
	r.POST("/api/auth/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(dto.LoginRequest{Email: "asha@example.com", Password: "secret1"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 0, resp.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "token-abc", data["token"])
	user := data["user"].(map[string]interface{})
	assert.NotContains(t, user, "passwordHash")
}

func TestAuthHandler_Login_ValidationFailed(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r, w := setupGin()
	r.POST("/api/auth/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		jsonBody(map[string]string{"email": "not-an-email", "password": "x"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 10001, resp.Code)
	details := resp.Details.([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "email", details[0].(map[string]interface{})["field"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{
		loginErr: service.ErrInvalidCredentials,
		adminErr: service.ErrInvalidCredentials,
	})

	r, _ := setupGin()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/admin/login", h.AdminLogin)

	for _, path := range []string{"/api/auth/login", "/api/admin/login"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, path,
				jsonBody(dto.LoginRequest{Email: "asha@example.com", Password: "wrong"}))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseResponse(t, w)
			assert.Equal(t, 11001, resp.Code)
			assert.Equal(t, "invalid email or password", resp.Message)
		})
	}
}

func TestHandleAuthError_NotAdmin(t *testing.T) {
	r, w := setupGin()
	r.GET("/api/admin/profile", asStudent, func(c *gin.Context) {
		handleAuthError(c, service.ErrNotAdmin)
	})

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 11005, parseResponse(t, w).Code)
}

func TestAuthHandler_Signup(t *testing.T) {
	body := dto.SignupRequest{
		Name:      "Asha",
		Email:     "asha@example.com",
		Password:  "secret1",
		StudentID: "STU-001",
	}

	t.Run("created", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{signupResult: &dto.AuthResponse{Token: "t"}})
		r, w := setupGin()
		r.POST("/api/auth/signup", h.Signup)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", jsonBody(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthService{signupErr: service.ErrEmailExists})
		r, w := setupGin()
		r.POST("/api/auth/signup", h.Signup)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", jsonBody(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 11002, parseResponse(t, w).Code)
	})
}

// ═══════════════════════════════════════════════════════════
// CourseHandler Tests
// ═══════════════════════════════════════════════════════════

func TestCourseHandler_GetCourse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := &mockCourseService{getResult: &dto.CourseResponse{ID: testCourseID, Title: "Web Basics"}}
		h := NewCourseHandler(mock)
		r, w := setupGin()
		r.GET("/api/courses/:id", asAdmin, h.GetCourse)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/"+testCourseID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, service.Actor{ID: testAdminID, Role: model.RoleAdmin}, mock.gotActor)
	})

	t.Run("not found", func(t *testing.T) {
		h := NewCourseHandler(&mockCourseService{getErr: service.ErrCourseNotFound})
		r, w := setupGin()
		r.GET("/api/courses/:id", asAdmin, h.GetCourse)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/"+testCourseID, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 12001, parseResponse(t, w).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewCourseHandler(&mockCourseService{})
		r, w := setupGin()
		r.GET("/api/courses/:id", asAdmin, h.GetCourse)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := parseResponse(t, w)
		assert.Equal(t, 10001, resp.Code)
		assert.Equal(t, "invalid id", resp.Message)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := NewCourseHandler(&mockCourseService{})
		r, w := setupGin()
		r.GET("/api/courses/:id", h.GetCourse)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/"+testCourseID, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCourseHandler_DeleteCourse_NoPermission(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{deleteErr: service.ErrNoPermission})
	r, w := setupGin()
	r.DELETE("/api/courses/:id", asAdmin, h.DeleteCourse)

	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/courses/"+testCourseID, nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 10003, parseResponse(t, w).Code)
}

func TestCourseHandler_ListCourses_InternalError(t *testing.T) {
	h := NewCourseHandler(&mockCourseService{listErr: errors.New("connection reset")})
	r, w := setupGin()
	r.GET("/api/courses", asAdmin, h.ListCourses)

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

// ═══════════════════════════════════════════════════════════
// SyllabusHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSyllabusHandler_Upload_Success(t *testing.T) {
	mock := &mockSyllabusService{}
	h := NewSyllabusHandler(mock)
	r, w := setupGin()
	r.POST("/api/syllabus", asAdmin, h.UploadSyllabus)

	body, ct := multipartBody(t, "syllabus", "web-basics.pdf", []byte("%PDF-1.4 test"),
		map[string]string{"courseId": testCourseID})
	req := httptest.NewRequest(http.MethodPost, "/api/syllabus", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testCourseID, mock.gotCourseID)
	assert.Equal(t, "web-basics.pdf", mock.gotFilename)
	assert.Equal(t, []byte("%PDF-1.4 test"), mock.gotContent)

	data := parseResponse(t, w).Data.(map[string]interface{})
	assert.Contains(t, data, "syllabus")
}

func TestSyllabusHandler_Upload_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fileField string
		uploadErr error
		courseID  string
		wantCode  int
		wantBiz   int
	}{
		{"missing file", "", nil, testCourseID, http.StatusBadRequest, 13004},
		{"rejected type", "syllabus", service.ErrInvalidFileType, testCourseID, http.StatusBadRequest, 13003},
		{"bad course id", "syllabus", nil, "abc", http.StatusBadRequest, 10001},
		{"foreign course", "syllabus", service.ErrCourseNotFound, testCourseID, http.StatusNotFound, 12001},
		{"storage down", "syllabus", service.ErrUploadFailed, testCourseID, http.StatusInternalServerError, 13005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSyllabusHandler(&mockSyllabusService{uploadErr: tt.uploadErr})
			r, w := setupGin()
			r.POST("/api/syllabus", asAdmin, h.UploadSyllabus)

			body, ct := multipartBody(t, tt.fileField, "notes.pdf", []byte("x"),
				map[string]string{"courseId": tt.courseID})
			req := httptest.NewRequest(http.MethodPost, "/api/syllabus", body)
			req.Header.Set("Content-Type", ct)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBiz, parseResponse(t, w).Code)
		})
	}
}

func TestSyllabusHandler_GetCourseSyllabus_NotFound(t *testing.T) {
	h := NewSyllabusHandler(&mockSyllabusService{getCourseErr: service.ErrSyllabusNotFound})
	r, w := setupGin()
	r.GET("/api/syllabus/:courseId", asStudent, h.GetCourseSyllabus)

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/syllabus/"+testCourseID, nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 13001, parseResponse(t, w).Code)
}

// ═══════════════════════════════════════════════════════════
// ProjectSubmissionHandler Tests
// ═══════════════════════════════════════════════════════════

func TestProjectSubmissionHandler_Create(t *testing.T) {
	const projectID = "3c2b1a09-8f7e-4d6c-9b5a-493827160504"

	t.Run("github link accepted", func(t *testing.T) {
		mock := &mockProjectSubmissionService{}
		h := NewProjectSubmissionHandler(mock)
		r, w := setupGin()
		r.POST("/api/project-submissions", asStudent, h.CreateSubmission)

		req := httptest.NewRequest(http.MethodPost, "/api/project-submissions", jsonBody(map[string]string{
			"projectId":   projectID,
			"githubLink":  "https://github.com/asha/portfolio",
			"description": "landing page",
		}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, mock.called)
	})

	t.Run("non github link rejected", func(t *testing.T) {
		mock := &mockProjectSubmissionService{}
		h := NewProjectSubmissionHandler(mock)
		r, w := setupGin()
		r.POST("/api/project-submissions", asStudent, h.CreateSubmission)

		req := httptest.NewRequest(http.MethodPost, "/api/project-submissions", jsonBody(map[string]string{
			"projectId":   projectID,
			"githubLink":  "https://gitlab.com/asha/portfolio",
			"description": "landing page",
		}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, mock.called)

		resp := parseResponse(t, w)
		details := resp.Details.([]interface{})
		require.Len(t, details, 1)
		detail := details[0].(map[string]interface{})
		assert.Equal(t, "githubLink", detail["field"])
		assert.Equal(t, "githuburl", detail["rule"])
	})

	t.Run("already submitted", func(t *testing.T) {
		h := NewProjectSubmissionHandler(&mockProjectSubmissionService{createErr: service.ErrProjectAlreadySubmitted})
		r, w := setupGin()
		r.POST("/api/project-submissions", asStudent, h.CreateSubmission)

		req := httptest.NewRequest(http.MethodPost, "/api/project-submissions", jsonBody(map[string]string{
			"projectId":   projectID,
			"githubLink":  "https://github.com/asha/portfolio",
			"description": "landing page",
		}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 15003, parseResponse(t, w).Code)
	})
}

func TestGithubURLPattern(t *testing.T) {
	for link, want := range map[string]bool{
		"https://github.com/asha":              true,
		"https://www.github.com/asha/repo":     true,
		"http://github.com/asha/repo.git/":     true,
		"https://github.com/":                  false,
		"https://github.com.evil.io/asha/repo": false,
		"github.com/asha/repo":                 false,
	} {
		assert.Equal(t, want, githubURLPattern.MatchString(link), link)
	}
}

// ═══════════════════════════════════════════════════════════
// Download Tests
// ═══════════════════════════════════════════════════════════

func TestAttendanceHandler_Export(t *testing.T) {
	mock := &mockAttendanceService{exportData: []byte("PK\x03\x04"), exportName: "attendance_Web Basics.xlsx"}
	h := NewAttendanceHandler(mock)
	r, w := setupGin()
	r.GET("/api/attendance/course/:courseId/export", asAdmin, h.Export)

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attendance/course/"+testCourseID+"/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment;")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance_Web")
	assert.Equal(t, []byte("PK\x03\x04"), w.Body.Bytes())
}

func TestAttendanceHandler_Export_CourseNotFound(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{exportErr: service.ErrCourseNotFound})
	r, w := setupGin()
	r.GET("/api/attendance/course/:courseId/export", asAdmin, h.Export)

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attendance/course/"+testCourseID+"/export", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 12001, parseResponse(t, w).Code)
}

func TestEnrollmentHandler_ExportCalendar(t *testing.T) {
	const userID = "5f1e2d3c-4b5a-4969-8877-665544332211"
	path := "/api/progress/" + userID + "/" + testCourseID + "/calendar"

	t.Run("download", func(t *testing.T) {
		h := NewEnrollmentHandler(&mockEnrollmentService{calendar: []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")})
		r, w := setupGin()
		r.GET("/api/progress/:userId/:courseId/calendar", asStudent, h.ExportCalendar)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, icsContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "progress.ics")
		assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
	})

	t.Run("no progress", func(t *testing.T) {
		h := NewEnrollmentHandler(&mockEnrollmentService{calendarErr: service.ErrProgressNotFound})
		r, w := setupGin()
		r.GET("/api/progress/:userId/:courseId/calendar", asStudent, h.ExportCalendar)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 17002, parseResponse(t, w).Code)
	})

	t.Run("malformed user id", func(t *testing.T) {
		h := NewEnrollmentHandler(&mockEnrollmentService{})
		r, w := setupGin()
		r.GET("/api/progress/:userId/:courseId/calendar", asStudent, h.ExportCalendar)

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/progress/me/"+testCourseID+"/calendar", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid userId", parseResponse(t, w).Message)
	})
}
