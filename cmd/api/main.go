package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"docrisk/docs"
	"docrisk/internal/config"
	"docrisk/internal/database"
	"docrisk/internal/database/migration"
	handlers "docrisk/internal/http/handler"
	"docrisk/internal/http/middleware"
	"docrisk/internal/logging"
	"docrisk/internal/metrics"
	"docrisk/internal/otel"
	"docrisk/internal/repository/postgres"
	"docrisk/internal/risk"
	"docrisk/internal/service"
	"docrisk/internal/storage"
)

// @title Document Risk API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logging.Stdout(time.UTC).Error("config_invalid", err, nil)
		os.Exit(1)
	}

	loc, _ := cfg.Location()
	log := logging.Stdout(loc)

	if err := run(cfg, loc, log); err != nil {
		log.Error("server_stopped", err, nil)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, loc *time.Location, log *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	policy, err := risk.ParsePolicy(cfg.Risk.BestUploadPolicy)
	if err != nil {
		return err
	}

	// PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return err
	}

	// S3-compatible object storage; without it uploads are metadata only.
	objStore := storage.Disabled()
	if cfg.StorageEnabled() {
		if objStore, err = storage.NewMinIO(ctx, cfg.MinIO, log); err != nil {
			return err
		}
	} else {
		log.Info("storage_disabled", logging.Fields{"reason": "MINIO_ENDPOINT not set"})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	riskMetrics, err := metrics.NewRiskMetrics(reg)
	if err != nil {
		return err
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	engine := risk.NewEngine(risk.WithPolicy(policy), risk.WithLocation(loc))

	clientRepo := postgres.NewClientPostgres(db)
	typeRepo := postgres.NewDocumentTypePostgres(db)
	reqRepo := postgres.NewRequirementPostgres(db)
	uploadRepo := postgres.NewUploadPostgres(db)
	concurrency := cfg.Risk.DashboardConcurrency

	svcs := handlers.Services{
		Clients:       service.NewClientService(clientRepo, reqRepo, uploadRepo, objStore, engine, riskMetrics, concurrency),
		DocumentTypes: service.NewDocumentTypeService(typeRepo),
		Requirements:  service.NewRequirementService(clientRepo, typeRepo, reqRepo),
		Uploads:       service.NewUploadService(objStore, clientRepo, typeRepo, uploadRepo),
		Risk:          service.NewRiskService(engine, clientRepo, reqRepo, uploadRepo, riskMetrics, concurrency),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    32 << 20,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, db, reg, svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting", logging.Fields{
			"addr":          ":" + cfg.Port,
			"policy":        string(policy),
			"timezone":      loc.String(),
			"storage":       cfg.StorageEnabled(),
			"dashboard_par": concurrency,
		})
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutting_down", nil)
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
