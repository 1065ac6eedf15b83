package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/openlistings/realestate-api/internal/config"
	"github.com/openlistings/realestate-api/internal/database"
	"github.com/openlistings/realestate-api/internal/handlers"
	"github.com/openlistings/realestate-api/internal/middleware"
	"github.com/openlistings/realestate-api/internal/types"

	_ "github.com/openlistings/realestate-api/docs/api" // Swagger docs
)

// @title Real Estate Listings API
// @version 1.0.0
// @description REST API for browsing, filtering, and managing property listings

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by /auth/register or /auth/login

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data on an empty database when requested
	if cfg.DBSeed {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("realestate_api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	secret := []byte(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authHandler := &handlers.AuthHandler{DB: db, JWTSecret: secret, TokenTTL: tokenTTL}
	propertyHandler := &handlers.PropertyHandler{DB: db}
	favoriteHandler := &handlers.FavoriteHandler{DB: db}
	viewedHandler := &handlers.RecentlyViewedHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	requireAuth := middleware.RequireAuth(secret)

	// Health
	api.Get("/health", healthHandler.Health)

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Property routes (public reads, authenticated writes)
	properties := api.Group("/properties")
	properties.Get("/", propertyHandler.ListProperties)
	// Registered before /:id so "mine" is not parsed as an id
	properties.Get("/mine", requireAuth, propertyHandler.ListMyProperties)
	properties.Get("/:id", propertyHandler.GetProperty)
	properties.Post("/", requireAuth, propertyHandler.CreateProperty)
	properties.Put("/:id", requireAuth, propertyHandler.UpdateProperty)
	properties.Delete("/:id", requireAuth, propertyHandler.DeleteProperty)

	// Favorite routes (all authenticated)
	favorites := api.Group("/favorites", requireAuth)
	favorites.Get("/", favoriteHandler.ListFavorites)
	favorites.Post("/:propertyId", favoriteHandler.AddFavorite)
	favorites.Delete("/:propertyId", favoriteHandler.RemoveFavorite)

	// Recently-viewed routes (all authenticated)
	viewed := api.Group("/recentlyviewed", requireAuth)
	viewed.Get("/", viewedHandler.ListRecentlyViewed)
	viewed.Post("/:propertyId", viewedHandler.RecordView)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	switch e := err.(type) {
	case *types.CustomError:
		code = e.Code
		message = e.Message
		errorType = e.Type
	case *fiber.Error:
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
