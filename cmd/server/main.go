package main

import (
	"context"
	"log"
	"os"
	"time"

	httpadapter "mvcapp/internal/adapter/http"
	metricsinmem "mvcapp/internal/adapter/metrics/inmemory"
	gormrepo "mvcapp/internal/adapter/repo/gorm"
	memoryrepo "mvcapp/internal/adapter/repo/memory"
	"mvcapp/internal/adapter/views/htmltemplate"
	staticviews "mvcapp/internal/adapter/views/static"
	"mvcapp/internal/app/home"
	"mvcapp/internal/app/mvc"
	"mvcapp/internal/app/page"
	"mvcapp/internal/app/ports"
	"mvcapp/internal/config"
	"mvcapp/internal/logging"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	registry := mvc.NewRegistry()
	if err := (home.Controller{}).Register(registry); err != nil {
		logger.Fatal("register home controller", zap.Error(err))
	}

	viewsRoot := resolveViewsRoot(cfg.ViewsRoot)
	renderer := htmltemplate.NewRenderer(
		staticviews.Provider{Root: viewsRoot, Fallback: staticviews.Embedded()},
		cfg.AppName,
		cfg.CacheViews,
	)
	kpiRecorder := metricsinmem.NewRecorder()
	pageViews := mustBuildPageViews(cfg.DBDSN, logger)

	h := httpadapter.Handler{
		PageUC: page.UseCase{
			Registry:  registry,
			Renderer:  renderer,
			Metrics:   kpiRecorder,
			PageViews: pageViews,
			Logger:    logger,
			Now:       time.Now,
		},
		Routes:    registry.Routes(),
		KPI:       kpiRecorder,
		PageViews: pageViews,
		Logger:    logger,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info("mvcapp server listening",
		zap.String("addr", cfg.Addr),
		zap.String("views_root", viewsRoot),
		zap.Bool("page_view_log", cfg.DBDSN != ""))
	s.Spin()
}

// mustBuildPageViews logs page views to Postgres when a DSN is configured and
// to process memory otherwise.
func mustBuildPageViews(dsn string, logger *zap.Logger) ports.PageViewRepository {
	if dsn == "" {
		return memoryrepo.NewPageViewRepo(memoryrepo.DefaultPageViewCapacity)
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		logger.Fatal("open postgres", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := gormrepo.ApplyMigrations(ctx, db, gormrepo.Migrations()); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}
	return gormrepo.NewPageViewRepo(db)
}

// resolveViewsRoot picks the directory that overrides the embedded templates:
// the configured root, else ./views when present, else none.
func resolveViewsRoot(configured string) string {
	if configured != "" {
		return configured
	}
	if info, err := os.Stat("./views"); err == nil && info.IsDir() {
		return "./views"
	}
	return ""
}
