package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/handler"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/middleware"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/jwt"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
)

// Deps are the collaborators of the route table. Limiter, Metrics and
// Gatherer may be nil.
type Deps struct {
	Config   *config.Config
	Handler  *handler.Handler
	JWT      *jwt.Manager
	Users    middleware.UserLoader
	Limiter  middleware.Limiter
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// Setup builds the gin engine with every route.
func Setup(d Deps) *gin.Engine {
	cfg, h := d.Config, d.Handler

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics(d.Metrics))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxUploadMB << 20))

	// ── platform ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	authLimit := middleware.RateLimit(d.Limiter, cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindow)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	studentOnly := middleware.RoleAuth(model.RoleStudent)

	api := r.Group("/api")

	// ── public ──
	api.POST("/auth/signup", authLimit, h.Auth.Signup)
	api.POST("/auth/login", authLimit, h.Auth.Login)
	api.POST("/admin/login", authLimit, h.Auth.AdminLogin)

	authorized := api.Group("")
	authorized.Use(middleware.JWTAuth(d.JWT, d.Users))
	{
		// profile and self-service
		authorized.GET("/auth/profile", h.User.GetProfile)
		authorized.PUT("/auth/profile", h.User.UpdateProfile)
		authorized.POST("/auth/enroll", studentOnly, h.Enrollment.SelfEnroll)
		authorized.PUT("/auth/progress", studentOnly, h.Enrollment.UpdateDayNote)

		admin := authorized.Group("/admin", adminOnly)
		{
			admin.GET("/profile", h.User.GetAdminProfile)
			admin.PUT("/profile", h.User.UpdateAdminProfile)
			admin.GET("/students", h.User.ListStudents)
			admin.POST("/students/import", h.User.ImportStudents)
			admin.GET("/student/:id", h.User.GetStudentDetail)
			admin.POST("/enroll", h.Enrollment.AdminEnroll)

			admin.POST("/course-content", h.CourseContent.UploadContent)
			admin.DELETE("/course-content/:id", h.CourseContent.DeleteContent)
		}

		// students read the material of their courses too
		authorized.GET("/admin/course-content/:courseId", h.CourseContent.ListContent)

		// courses
		courses := authorized.Group("/courses", adminOnly)
		{
			courses.GET("", h.Course.ListCourses)
			courses.POST("", h.Course.CreateCourse)
			courses.GET("/:id", h.Course.GetCourse)
			courses.PUT("/:id", h.Course.UpdateCourse)
			courses.DELETE("/:id", h.Course.DeleteCourse)
		}

		// syllabus
		authorized.POST("/syllabus", adminOnly, h.Syllabus.UploadSyllabus)
		authorized.GET("/syllabus", adminOnly, h.Syllabus.ListSyllabi)
		authorized.GET("/syllabus/:courseId", h.Syllabus.GetCourseSyllabus)
		authorized.DELETE("/syllabus/:id", adminOnly, h.Syllabus.DeleteSyllabus)

		// assessments
		authorized.POST("/assessments", adminOnly, h.Assessment.CreateAssessment)
		authorized.GET("/assessments/:courseId", h.Assessment.ListCourseAssessments)
		authorized.GET("/assessment/:id", h.Assessment.GetAssessment)
		authorized.POST("/assessment/:id/submit", studentOnly, h.Assessment.SubmitAssessment)
		authorized.GET("/assessment/:id/submissions", adminOnly, h.Assessment.ListSubmissions)
		authorized.GET("/course/:courseId/submissions", adminOnly, h.Assessment.ListCourseSubmissions)
		authorized.GET("/submissions/student/:studentId", h.Assessment.ListStudentSubmissions)

		// projects
		projects := authorized.Group("/projects")
		{
			projects.POST("", adminOnly, h.Project.CreateProject)
			projects.GET("", adminOnly, h.Project.ListProjects)
			projects.GET("/course/:courseId", h.Project.ListCourseProjects)
			projects.GET("/course/:courseId/category/:category", h.Project.ListCourseProjects)
			projects.GET("/:id", h.Project.GetProject)
			projects.PUT("/:id", adminOnly, h.Project.UpdateProject)
			projects.DELETE("/:id", adminOnly, h.Project.DeleteProject)
		}

		subs := authorized.Group("/project-submissions")
		{
			subs.POST("", studentOnly, h.ProjectSubmission.CreateSubmission)
			subs.GET("/project/:projectId", adminOnly, h.ProjectSubmission.ListByProject)
			subs.GET("/project/:projectId/my-submission", studentOnly, h.ProjectSubmission.GetMySubmission)
			subs.GET("/student/:studentId", h.ProjectSubmission.ListByStudent)
			subs.GET("/course/:courseId", adminOnly, h.ProjectSubmission.ListByCourse)
			subs.GET("/:id", h.ProjectSubmission.GetSubmission)
			subs.PUT("/:id", studentOnly, h.ProjectSubmission.UpdateSubmission)
			subs.DELETE("/:id", h.ProjectSubmission.DeleteSubmission)
		}

		// progress
		authorized.GET("/progress/:userId/:courseId", h.Enrollment.GetProgress)
		authorized.GET("/progress/:userId/:courseId/calendar", h.Enrollment.ExportCalendar)
		authorized.PUT("/progress/update-completion", h.Enrollment.UpdateCompletion)

		// attendance
		attendance := authorized.Group("/attendance")
		{
			attendance.POST("", adminOnly, h.Attendance.MarkAttendance)
			attendance.POST("/bulk", adminOnly, h.Attendance.MarkBulk)
			attendance.GET("/date/:date/course/:courseId", adminOnly, h.Attendance.ListByDate)
			attendance.GET("/student/:studentId", h.Attendance.ListByStudent)
			attendance.GET("/course/:courseId/summary", adminOnly, h.Attendance.Summary)
			attendance.GET("/course/:courseId/export", adminOnly, h.Attendance.Export)
			attendance.PUT("/:id", adminOnly, h.Attendance.UpdateAttendance)
			attendance.DELETE("/:id", adminOnly, h.Attendance.DeleteAttendance)
		}
	}

	return r
}
