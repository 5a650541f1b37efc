package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/acc-api/api/swagger"
	"github.com/noah-isme/acc-api/internal/handler"
	"github.com/noah-isme/acc-api/internal/middleware"
	"github.com/noah-isme/acc-api/internal/service"
	"github.com/noah-isme/acc-api/internal/store"
	"github.com/noah-isme/acc-api/pkg/config"
	"github.com/noah-isme/acc-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/acc-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/acc-api/pkg/middleware/requestid"
	"github.com/noah-isme/acc-api/pkg/snapshot"
)

// @title Academic Command Center API
// @version 1.0.0
// @description Course and graded-item ledger with soft delete, weighted grade statistics, and batch reconciliation
// @BasePath /api/v1
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

	snapshots, err := newSnapshotStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init snapshot store", "backend", cfg.Snapshot.Backend, "error", err)
	}

	ledgerStore := store.New(context.Background(), snapshots, logr)

	validate := validator.New()
	courseSvc := service.NewCourseService(ledgerStore, validate, logr)
	itemSvc := service.NewItemService(ledgerStore, validate, logr)
	trashSvc := service.NewTrashService(ledgerStore, logr)
	reconcileSvc := service.NewReconcileService(ledgerStore, validate, logr)
	importSvc := service.NewImportService(ledgerStore, validate, logr)
	backupSvc := service.NewBackupService(ledgerStore, logr)
	reportSvc := service.NewReportService(ledgerStore, logr)
	metricsSvc := service.NewMetricsService(ledgerStore)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handlers := handler.Handlers{
		Courses:        handler.NewCourseHandler(courseSvc),
		Items:          handler.NewItemHandler(itemSvc),
		Trash:          handler.NewTrashHandler(trashSvc),
		Reconcile:      handler.NewReconcileHandler(reconcileSvc),
		Import:         handler.NewImportHandler(importSvc),
		Backup:         handler.NewBackupHandler(backupSvc),
		Reports:        handler.NewReportHandler(reportSvc),
		ExportsEnabled: cfg.Exports.Enabled,
	}
	handlers.Register(r.Group(cfg.APIPrefix))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "snapshot_backend", cfg.Snapshot.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newSnapshotStore(cfg *config.Config) (snapshot.Store, error) {
	switch cfg.Snapshot.Backend {
	case config.SnapshotRedis:
		return snapshot.NewRedis(snapshot.RedisOptions{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Snapshot.Key,
		})
	case config.SnapshotPostgres:
		return snapshot.NewPostgres(snapshot.PostgresOptions{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			Name:         cfg.Database.Name,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			Key:          cfg.Snapshot.Key,
		})
	case config.SnapshotMemory:
		return snapshot.NewMemory(), nil
	default:
		return snapshot.NewFile(cfg.Snapshot.File)
	}
}
