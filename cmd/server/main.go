package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusdesk/campus-info-api/api/swagger"
	"github.com/campusdesk/campus-info-api/internal/genai"
	"github.com/campusdesk/campus-info-api/internal/handler"
	"github.com/campusdesk/campus-info-api/internal/middleware"
	"github.com/campusdesk/campus-info-api/internal/repository"
	"github.com/campusdesk/campus-info-api/internal/service"
	"github.com/campusdesk/campus-info-api/pkg/config"
	"github.com/campusdesk/campus-info-api/pkg/database"
	"github.com/campusdesk/campus-info-api/pkg/logger"
	corsmiddleware "github.com/campusdesk/campus-info-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusdesk/campus-info-api/pkg/middleware/requestid"
	"github.com/campusdesk/campus-info-api/pkg/storage"
)

// @title Campus Info API
// @version 1.0.0
// @description Campus information backend with a rule-based chatbot
// @BasePath /
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

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "error", err, "path", cfg.Database.Path)
	}
	defer db.Close() //nolint:errcheck

	metrics := service.NewMetricsService()
	store := repository.NewStore(db, metrics.ObserveDBQuery)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.InitSchema(initCtx, store, cfg.Seed); err != nil {
		logr.Sugar().Fatalw("failed to init schema", "error", err)
	}

	files, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	users := repository.NewUserRepository(store)
	entities := repository.NewEntityRepository(store)
	notes := repository.NewNoteRepository(store)
	campus := repository.NewCampusRepository(store)

	authSvc := service.NewAuthService(users, nil, logr)
	entitySvc := service.NewEntityService(entities, logr)
	teacherSvc := service.NewTeacherService(users, nil, logr)
	noteSvc := service.NewNoteService(notes, files, logr)
	chatSvc := service.NewChatService(campus, notes, genai.New(cfg.GenAI), cfg.Uploads.PublicURL, logr)
	chatSvc.SetIntentObserver(metrics.CountIntent)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	handler.Register(r, cfg.APIPrefix, handler.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Chat:     handler.NewChatHandler(chatSvc),
		Entities: handler.NewEntityHandler(entitySvc),
		Teachers: handler.NewTeacherHandler(teacherSvc),
		Notes:    handler.NewNoteHandler(noteSvc, metrics),
		Metrics:  handler.NewMetricsHandler(metrics),
	})

	r.Static(cfg.Uploads.PublicURL, files.Dir())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
