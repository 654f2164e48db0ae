package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/ndudarev/campus-lostfound/internal/db"
	"github.com/ndudarev/campus-lostfound/internal/handlers"
	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/middlewares"
	"github.com/ndudarev/campus-lostfound/internal/repositories"
	"github.com/ndudarev/campus-lostfound/internal/services"
	"github.com/ndudarev/campus-lostfound/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title campus-lostfound API
// @version 1.0.0
// @description Lost-and-found item tracker for a campus
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, statsCacheTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword, statsCacheTTL,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis and Kafka configuration. Redis and Kafka are
// optional: an empty address disables the corresponding feature.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, statsCacheTTL time.Duration,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "lostfound")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (optional stats cache)
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	var ttlSecond int
	if ttlSecond, err = strconv.Atoi(getEnv("STATS_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}
	statsCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config (optional item event stream)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "lostfound-item-events")

	return
}

// run initializes the logger, database, optional Redis and Kafka clients,
// migrates and seeds the schema, sets up routes and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string, statsCacheTTL time.Duration,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	dbConn, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer dbConn.Close()
	dbConn.SetMaxOpenConns(pgMaxOpenConns)
	dbConn.SetMaxIdleConns(pgMaxIdleConns)
	if err := dbConn.PingContext(ctx); err != nil {
		log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Migrate and seed before accepting traffic
	if err := db.Migrate(ctx, dbConn); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}
	if err := db.Seed(ctx, dbConn); err != nil {
		log.Errorw("seeding failed", "error", err)
		return err
	}

	// Connect to Redis (optional)
	var statsCache services.StatsCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		statsCache = repositories.NewStatsCacheRepository(rdb, statsCacheTTL)
		log.Infof("Stats cache enabled at %s with TTL %s", redisAddr, statsCacheTTL)
	}

	// Connect to Kafka (optional)
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Item events enabled on topic %s at %s", kafkaTopic, kafkaAddr)
	}

	// Initialize repositories
	itemReadRepo := repositories.NewItemReadRepository(dbConn)
	itemWriteRepo := repositories.NewItemWriteRepository(dbConn, middlewares.GetTxFromContext)

	// Initialize services
	itemService := services.NewItemService(itemReadRepo, itemWriteRepo, statsCache, kafkaWriter)

	// Load page templates
	tmpl, err := web.LoadTemplates()
	if err != nil {
		log.Errorw("failed to parse templates", "error", err)
		return err
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.RecoverMiddleware(log))
	r.NotFound(handlers.NewNotFoundHandler())
	r.MethodNotAllowed(handlers.NewNotFoundHandler())

	// Pages
	r.Get("/", handlers.NewIndexPageHandler(tmpl))
	r.Get("/item/{id}", handlers.NewItemDetailPageHandler(itemService, tmpl))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.StaticFS())))

	// API routes, one transaction per request
	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(dbConn))
		r.Get("/items", handlers.NewListItemsHandler(itemService))
		r.Post("/items", handlers.NewCreateItemHandler(itemService))
		r.Get("/items/{id}", handlers.NewGetItemHandler(itemService))
		r.Put("/items/{id}", handlers.NewUpdateItemHandler(itemService))
		r.Delete("/items/{id}", handlers.NewDeleteItemHandler(itemService))
		r.Post("/items/{id}/claim", handlers.NewClaimItemHandler(itemService))
		r.Get("/stats", handlers.NewStatsHandler(itemService))
		r.Get("/search", handlers.NewSearchItemsHandler(itemService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
