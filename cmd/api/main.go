package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/gradeview/gradeview-api/internal/handler"
	"github.com/gradeview/gradeview-api/internal/middleware"
	"github.com/gradeview/gradeview-api/internal/repository"
	"github.com/gradeview/gradeview-api/internal/scrape"
	"github.com/gradeview/gradeview-api/internal/service"
	"github.com/gradeview/gradeview-api/pkg/cache"
	"github.com/gradeview/gradeview-api/pkg/config"
	"github.com/gradeview/gradeview-api/pkg/database"
	"github.com/gradeview/gradeview-api/pkg/logger"
	corsmiddleware "github.com/gradeview/gradeview-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gradeview/gradeview-api/pkg/middleware/requestid"
	"github.com/gradeview/gradeview-api/pkg/response"
)

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open dataset", "path", cfg.Database.Path, "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, rate limiting disabled", "error", err)
			redisClient = nil
		}
	}

	gradeRepo := repository.NewGradeRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	searchRepo := repository.NewSearchRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	classHandler := handler.NewClassHandler(service.NewClassService(gradeRepo, logr))
	courseHandler := handler.NewCourseHandler(service.NewCourseService(courseRepo, gradeRepo, logr))
	instructorHandler := handler.NewInstructorHandler(service.NewInstructorService(gradeRepo, searchRepo, logr))
	searchHandler := handler.NewSearchHandler(service.NewSearchService(searchRepo, logr))
	messageHandler := handler.NewMessageHandler(service.NewMessageService(messageRepo, nil, cfg.Messages.Password, logr))
	catalogHandler := handler.NewCatalogHandler(service.NewCatalogService(scrape.NewClient(cfg.Catalog), logr))

	metrics := middleware.NewMetrics()
	limiter := middleware.NewRateLimiter(redisClient, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.GET("/proxy", catalogHandler.Proxy)
	api.GET("/class", classHandler.Detail)
	api.GET("/classes", classHandler.List)
	api.GET("/course_info", courseHandler.Info)
	api.GET("/courses", courseHandler.List)
	api.GET("/department/:deptCode", courseHandler.Department)
	api.GET("/departments", courseHandler.Departments)
	api.GET("/instructor/:name", instructorHandler.Stats)
	api.GET("/instructors/:letter", instructorHandler.Search)
	api.GET("/search/:query", searchHandler.Courses)
	api.POST("/contact", limiter.Limit("contact", 100, 24*time.Hour), messageHandler.Contact)
	api.POST("/messages", limiter.Limit("messages", 100, time.Hour), messageHandler.List)

	r.NoRoute(response.NotFoundBody)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
