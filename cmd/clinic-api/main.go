package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/KurtMante/clinic-ops-api/api/swagger"
	"github.com/KurtMante/clinic-ops-api/internal/handler"
	"github.com/KurtMante/clinic-ops-api/internal/middleware"
	"github.com/KurtMante/clinic-ops-api/internal/models"
	"github.com/KurtMante/clinic-ops-api/internal/repository"
	"github.com/KurtMante/clinic-ops-api/internal/service"
	"github.com/KurtMante/clinic-ops-api/pkg/cache"
	"github.com/KurtMante/clinic-ops-api/pkg/config"
	"github.com/KurtMante/clinic-ops-api/pkg/database"
	"github.com/KurtMante/clinic-ops-api/pkg/logger"
	corsmiddleware "github.com/KurtMante/clinic-ops-api/pkg/middleware/cors"
	reqidmiddleware "github.com/KurtMante/clinic-ops-api/pkg/middleware/requestid"
)

// @title Clinic Ops API
// @version 1.0.0
// @description Doctor availability and slot-booking engine
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	loc, err := time.LoadLocation(cfg.Clinic.Timezone)
	if err != nil {
		logr.Sugar().Fatalw("invalid clinic timezone", "timezone", cfg.Clinic.Timezone, "error", err)
	}
	models.SetClinicLocation(loc)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	cacheRepo := repository.NewCacheRepository(nil, logr)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, schedule cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	defer cacheRepo.Close()

	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	serviceRepo := repository.NewServiceRepository(db)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	scheduleSvc := service.NewScheduleService(scheduleRepo, cacheRepo, metricsSvc, validate, logr, cfg.Clinic.ScheduleCacheTTL)
	bookingSvc := service.NewBookingService(appointmentRepo, serviceRepo, scheduleSvc, metricsSvc, validate, logr, loc)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, logr)
	availabilitySvc := service.NewAvailabilityService(scheduleSvc, appointmentRepo, logr, loc, cfg.Clinic.SlotMinutes)
	exportSvc := service.NewExportService(appointmentRepo, serviceRepo, logr, loc)

	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	appointmentHandler := handler.NewAppointmentHandler(bookingSvc, appointmentSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/schedule", scheduleHandler.List)
		api.GET("/schedules", scheduleHandler.List)
		api.POST("/schedule", scheduleHandler.Upsert)
		api.PUT("/schedule/:weekday", scheduleHandler.UpdateDay)
		api.PUT("/schedule/:weekday/status", scheduleHandler.UpdateStatus)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Book)
		api.POST("/appointments/decide", appointmentHandler.Decide)
		if cfg.Exports.Enabled {
			api.GET("/appointments/export", exportHandler.DaySheet)
		}
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Reschedule)
		api.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		api.GET("/availability/slots", availabilityHandler.Slots)
		api.GET("/availability/evaluate", availabilityHandler.Evaluate)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "timezone", cfg.Clinic.Timezone)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
