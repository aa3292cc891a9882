package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"school-transport-backend/config"
	"school-transport-backend/config/middleware"
	"school-transport-backend/pkg/logging"
	"school-transport-backend/pkg/metrics"
	"school-transport-backend/pkg/querycache"
	"school-transport-backend/repository"
	"school-transport-backend/router"
	"school-transport-backend/seeder"
	"school-transport-backend/services"
	_ "time/tzdata"
)

// @title School Transport API
// @version 1.0
// @description Calendar aggregation of school transport jobs, route schedules and driver / passenger assistant invoices
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Calendar
// @tag.description Month grid and route schedule views
//
// @tag.name Routes
// @tag.description Route records and student rosters
//
// @tag.name Invoices
// @tag.description Generated invoices, invoice drafts and printable documents
//
// @tag.name Settings
// @tag.description Dashboard preferences
func main() {
	cfg := config.LoadConfig()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	log := slog.Default()

	if err := config.MongoConnect(cfg.MongoString, cfg.DBName); err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer config.DisconnectDB()

	if cfg.SeedDemo {
		seeder.SeedRoutes(repository.NewRouteRepository())
		seeder.SeedDemoJobs(repository.NewJobRepository(), time.Now().In(cfg.Location))
	}

	m := metrics.New()
	cache := querycache.New(cfg.CacheTTL)

	h, err := router.NewHandlers(cfg, cache, m, log)
	if err != nil {
		log.Error("failed to build handlers", "error", err)
		os.Exit(1)
	}

	warmer := services.NewCacheWarmer(h.Calendar, cache, m, log, cfg.Location)
	scheduler, err := services.StartCacheWarmer(cfg.CacheWarmCron, warmer)
	if err != nil {
		log.Error("failed to schedule cache warm-up", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{AppName: "School Transport API"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.RequestLogger(log))
	config.SetupCORS(app, cfg.AllowedOrigins)

	router.SetupRoutes(app, h, m)

	go func() {
		log.Info("server starting",
			"port", cfg.Port,
			"docs", "http://localhost:"+cfg.Port+"/docs/index.html",
			"origins", cfg.AllowedOrigins)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	<-scheduler.Stop().Done()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
