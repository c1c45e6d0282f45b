package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/api"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/catalog"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/events"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/repository"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/service"
	"github.com/gilanggnw/Cosmetics-Recommendation/internal/tracing"
	_ "github.com/gilanggnw/Cosmetics-Recommendation/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables")
	}

	api.SetupGlobalLogger("cosmetics-api")

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	shutdownTracer, err := tracing.InitTracerProvider("cosmetics-api")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	csvPath := os.Getenv("CSV_PATH")
	if csvPath == "" {
		csvPath = "cosmetic_p.csv"
	}
	productStore, err := catalog.NewStore(csvPath)
	if err != nil {
		slog.Warn("Product dataset unavailable, catalog endpoints will return errors", "path", csvPath, "error", err)
		productStore = nil
	} else {
		slog.Info("Product dataset loaded", "path", csvPath, "products", productStore.Len())
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		slog.Warn("Failed to connect to NATS, interaction events disabled", "error", err)
		eventPublisher = nil
	} else {
		slog.Info("Successfully connected to NATS")
	}

	userRepo := repository.NewPostgresUserRepository(db)
	searchRepo := repository.NewPostgresSearchHistoryRepository(db)
	bookmarkRepo := repository.NewPostgresBookmarkRepository(db)
	clickRepo := repository.NewPostgresClickCountRepository(db)

	authService := service.NewAuthService(userRepo, eventPublisher)
	interactionService := service.NewInteractionService(searchRepo, bookmarkRepo, eventPublisher)
	clickService := service.NewClickCountService(clickRepo)

	authHandler := api.NewAuthHandler(authService)
	interactionHandler := api.NewInteractionHandler(interactionService)
	clickHandler := api.NewClickCountHandler(clickService)
	catalogHandler := api.NewCatalogHandler(productStore)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": "cosmetics-api"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiRoutes := app.Group("/api")

	apiRoutes.Get("/products", catalogHandler.ListProducts)
	apiRoutes.Get("/products/:id", catalogHandler.GetProduct)

	apiRoutes.Post("/user/register", authHandler.Register)
	apiRoutes.Post("/login", authHandler.Login)

	authRequired := api.AuthMiddleware()
	apiRoutes.Post("/search/history", authRequired, interactionHandler.RecordSearch)
	apiRoutes.Get("/search/history", authRequired, interactionHandler.ListSearchHistory)
	apiRoutes.Post("/bookmark", authRequired, interactionHandler.AddBookmark)
	apiRoutes.Get("/bookmarks", authRequired, interactionHandler.ListBookmarks)
	apiRoutes.Post("/click-count", authRequired, clickHandler.Increment)
	apiRoutes.Get("/click-counts", authRequired, clickHandler.GetCounts)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	slog.Info("Listening", "service", "cosmetics-api", "port", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)

	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	slog.Info("Successfully connected to the database")
	return db
}

func handleMigrations() {
	fmt.Println("Running database migrations...")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
