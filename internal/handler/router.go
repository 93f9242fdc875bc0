package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/middleware"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/college-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/college-admin-api/pkg/middleware/requestid"
)

// RouterConfig controls route registration.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	EnableMetrics  bool
}

// Services groups everything the handlers call into.
type Services struct {
	Departments *service.DepartmentService
	Teachers    *service.TeacherService
	Students    *service.StudentService
	Courses     *service.CourseService
	Enrollments *service.EnrollmentService
	Payments    *service.PaymentService
	Books       *service.BookService
	Authors     *service.AuthorService
	Emails      *service.StudentEmailService
	Phones      *service.StudentPhoneService
	Stats       *service.StatsService
	Setup       *service.SetupService
	Export      *service.ExportService
	Metrics     *service.MetricsService
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg RouterConfig, svc Services, store Pinger, logr *zap.Logger) *gin.Engine {
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	if cfg.EnableMetrics {
		r.Use(middleware.Metrics(svc.Metrics))
	}

	system := NewMetricsHandler(svc.Metrics, store)
	r.GET("/health", system.Health)
	r.GET("/ready", system.Ready)
	if cfg.EnableMetrics {
		r.GET("/metrics", system.Prometheus)
	}
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api"
	}
	api := r.Group(prefix)

	departments := NewDepartmentHandler(svc.Departments)
	api.GET("/departments", departments.List)
	api.POST("/departments", departments.Create)
	api.PUT("/departments", departments.Update)
	api.DELETE("/departments", departments.Delete)

	teachers := NewTeacherHandler(svc.Teachers)
	api.GET("/teachers", teachers.List)
	api.POST("/teachers", teachers.Create)
	api.PUT("/teachers", teachers.Update)
	api.DELETE("/teachers", teachers.Delete)

	students := NewStudentHandler(svc.Students)
	api.GET("/students", students.List)
	api.POST("/students", students.Create)
	api.PUT("/students", students.Update)
	api.DELETE("/students", students.Delete)
	api.POST("/student", students.Create)

	courses := NewCourseHandler(svc.Courses)
	api.GET("/courses", courses.List)
	api.POST("/courses", courses.Create)
	api.PUT("/courses", courses.Update)
	api.DELETE("/courses", courses.Delete)

	enrollments := NewEnrollmentHandler(svc.Enrollments)
	api.GET("/enrollments", enrollments.List)
	api.POST("/enrollments", enrollments.Create)
	api.PUT("/enrollments", enrollments.Update)
	api.DELETE("/enrollments", enrollments.Delete)

	payments := NewPaymentHandler(svc.Payments)
	api.GET("/payments", payments.List)
	api.POST("/payments", payments.Create)
	api.DELETE("/payments", payments.Delete)

	books := NewBookHandler(svc.Books, svc.Authors)
	api.GET("/books", books.List)
	api.POST("/books", books.Create)
	api.DELETE("/books", books.Delete)
	api.GET("/authors", books.ListAuthors)
	api.POST("/authors", books.CreateAuthor)
	api.DELETE("/authors", books.DeleteAuthor)

	contacts := NewStudentContactHandler(svc.Emails, svc.Phones)
	api.GET("/emails", contacts.ListEmails)
	api.POST("/emails", contacts.CreateEmail)
	api.DELETE("/emails", contacts.DeleteEmail)
	api.GET("/phones", contacts.ListPhones)
	api.POST("/phones", contacts.CreatePhone)
	api.DELETE("/phones", contacts.DeletePhone)

	api.POST("/setup", NewSetupHandler(svc.Setup).Run)
	api.GET("/stats", NewStatsHandler(svc.Stats).Summary)
	api.GET("/export/:resource", NewExportHandler(svc.Export).Download)

	return r
}
