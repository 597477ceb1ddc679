package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/audit"
	"fulfillment/internal/adapters/out/carrier"
	"fulfillment/internal/adapters/out/inventory"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/ratecache"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/logger"
	"fulfillment/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	slogger := logger.New(configs.Env, configs.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = postgres.Migrate(configs.DSN()); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}
	gormDB := mustGormOpen(configs)

	inv, closeInventory := mustInventory(ctx, configs, slogger)
	defer closeInventory()

	cache, err := ratecache.Open(configs.RateCachePath, kernel.SystemClock(), slogger)
	if err != nil {
		log.Fatalf("Error opening rate cache: %v", err)
	}
	defer cache.Close()

	endpoints, err := configs.Carriers()
	if err != nil {
		log.Fatalf("Error parsing carrier endpoints: %v", err)
	}
	carriers := carrier.NewClient(
		&http.Client{Timeout: configs.CarrierTimeout},
		carrier.Config{
			Endpoints:   endpoints,
			MaxRetries:  configs.CarrierMaxRetries,
			BaseBackoff: configs.CarrierBackoff,
			Concurrency: configs.CarrierConcurrency,
		},
		slogger,
	)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	var gatherer prometheus.Gatherer = prometheus.NewRegistry()
	if configs.MetricsEnabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		gatherer = registry
	}

	app, err := cmd.NewCompositionRoot(
		configs,
		gormDB,
		cmd.Collaborators{
			Inventory: inv,
			Carriers:  carriers,
			RateCache: cache,
			Audit:     audit.NewLogger(slogger),
		},
		m,
		slogger,
	)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.Jobs()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, gatherer, configs, slogger)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	level := gormlogger.Warn
	if configs.IsDev() {
		level = gormlogger.Info
	}
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm\n: %s", err)
	}
	return gormDB
}

// mustInventory connects to the inventory ledger, or keeps stock in process
// when no ledger is configured.
func mustInventory(ctx context.Context, configs cmd.Config, logger *slog.Logger) (ports.InventoryService, func()) {
	if configs.InventoryDSN == "" {
		logger.Warn("INVENTORY_DSN is empty, inventory is kept in memory")
		return inventory.NewMemory(), func() {}
	}
	pool, err := pgxpool.New(ctx, configs.InventoryDSN)
	if err != nil {
		log.Fatalf("Error connecting to inventory ledger: %v", err)
	}
	if err = pool.Ping(ctx); err != nil {
		log.Fatalf("Error pinging inventory ledger: %v", err)
	}
	return inventory.NewLedger(pool, configs.InventoryTimeout), pool.Close
}

func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	gatherer prometheus.Gatherer,
	configs cmd.Config,
	logger *slog.Logger,
) {
	e, err := httpadapter.NewRouter(app.HTTPServer(), gatherer)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		logger.Info("http server started", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}
}
