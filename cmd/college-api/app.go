package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/college-admin-api/internal/handler"
	"github.com/noah-isme/college-admin-api/internal/repository"
	"github.com/noah-isme/college-admin-api/internal/service"
	"github.com/noah-isme/college-admin-api/pkg/cache"
	"github.com/noah-isme/college-admin-api/pkg/config"
	"github.com/noah-isme/college-admin-api/pkg/database"
)

// app holds the long-lived dependencies shared by the commands.
type app struct {
	store    *database.Store
	cache    *repository.CacheRepository
	services handler.Services
}

// newApp opens the pool and wires repositories into services. An
// unreachable database is logged, not fatal: requests report the outage.
func newApp(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*app, error) {
	db, err := database.NewPostgres(cfg.Database)
	if db == nil {
		return nil, err
	}
	if err != nil {
		logr.Warn("database not reachable at startup", zap.Error(err))
	}

	metrics := service.NewMetricsService()
	store := database.NewStore(db,
		database.WithTimeout(cfg.Database.QueryTimeout),
		database.WithObserver(metrics),
	)

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Stats.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("stats cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Stats.CacheTTL, logr, cfg.Stats.CacheEnabled)

	validate := validator.New()
	svc := handler.Services{
		Departments: service.NewDepartmentService(repository.NewDepartmentRepository(store), validate, cacheSvc, logr),
		Teachers:    service.NewTeacherService(repository.NewTeacherRepository(store), validate, cacheSvc, logr),
		Students:    service.NewStudentService(repository.NewStudentRepository(store), validate, cacheSvc, logr),
		Courses:     service.NewCourseService(repository.NewCourseRepository(store), validate, cacheSvc, logr),
		Enrollments: service.NewEnrollmentService(repository.NewEnrollmentRepository(store), validate, cacheSvc, logr),
		Payments:    service.NewPaymentService(repository.NewPaymentRepository(store), validate, cacheSvc, logr),
		Books:       service.NewBookService(repository.NewBookRepository(store), validate, cacheSvc, logr),
		Authors:     service.NewAuthorService(repository.NewAuthorRepository(store), validate, cacheSvc, logr),
		Emails:      service.NewStudentEmailService(repository.NewStudentEmailRepository(store), validate, cacheSvc, logr),
		Phones:      service.NewStudentPhoneService(repository.NewStudentPhoneRepository(store), validate, cacheSvc, logr),
		Metrics:     metrics,
	}
	svc.Stats = service.NewStatsService(repository.NewStatsRepository(store), cacheSvc, metrics, service.StatsConfig{
		CacheTTL:    cfg.Stats.CacheTTL,
		Concurrency: cfg.Stats.Concurrency,
	}, logr)
	svc.Setup = service.NewSetupService(repository.NewSchemaRepository(store), metrics, logr)
	svc.Export = service.NewExportService(service.ExportSources{
		Departments: svc.Departments,
		Teachers:    svc.Teachers,
		Students:    svc.Students,
		Courses:     svc.Courses,
		Enrollments: svc.Enrollments,
		Payments:    svc.Payments,
		Books:       svc.Books,
		Authors:     svc.Authors,
		Emails:      svc.Emails,
		Phones:      svc.Phones,
	}, logr)

	return &app{store: store, cache: cacheRepo, services: svc}, nil
}

func (a *app) Close() {
	_ = a.cache.Close()
	_ = a.store.Close()
}
