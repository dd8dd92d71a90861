package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	queryHttp "nola-analytics/internal/query/adapters/http/fiber"
	queryRepoPg "nola-analytics/internal/query/adapters/postgres"
	queryUsecase "nola-analytics/internal/query/core/usecase"

	rfmHttp "nola-analytics/internal/rfm/adapters/http/fiber"
	rfmRepoPg "nola-analytics/internal/rfm/adapters/postgres"
	rfmUsecase "nola-analytics/internal/rfm/core/usecase"

	"nola-analytics/internal/platform/cache"
	"nola-analytics/internal/platform/config"
	"nola-analytics/internal/platform/logging"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "nola-analytics/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.RequirePostgres(); err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogFormat)

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Query cache; degrades to direct reads when redis is not configured.
	var resultCache *cache.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		resultCache = cache.New(rdb, cfg.CacheTTL)
		logger.Info("query cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	// Adapter-level DB wrappers
	queryDB := queryRepoPg.NewSQLDB(db)
	rfmDB := rfmRepoPg.NewSQLDB(db)

	// Repositories
	resultRepository := queryRepoPg.NewResultRepository(queryDB)
	rfmRepository := rfmRepoPg.NewRFMRepository(rfmDB)

	// Usecases
	customQueryUC := queryUsecase.NewCustomQueryUseCase(resultRepository, resultCache)
	kpiSummaryUC := queryUsecase.NewKPISummaryUseCase(resultRepository, resultCache)
	riskyCustomersUC := rfmUsecase.NewRiskyCustomersUseCase(rfmRepository)
	rfmListUC := rfmUsecase.NewRFMListUseCase(rfmRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// query endpoints
	queryHandler := queryHttp.NewQueryHandler(customQueryUC, kpiSummaryUC)
	app.Get("/api/v1/custom_query/", queryHandler.CustomQuery)
	app.Get("/api/v1/kpis/summary", queryHandler.KPISummary)

	// rfm endpoints
	rfmHandler := rfmHttp.NewRFMHandler(riskyCustomersUC, rfmListUC)
	app.Get("/api/v1/rfm/risky-customers", rfmHandler.RiskyCustomers)
	app.Get("/api/v1/segments/em-risco", rfmHandler.Segment)
	app.Get("/api/v1/clients/rfm_list", rfmHandler.RFMList)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.APIAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	logger.Info("analytics api started", "addr", cfg.APIAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	logger.Info("server exiting")
}
