package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/microboard/backend/internal/handlers"
	"github.com/microboard/backend/internal/middleware"
	"github.com/microboard/backend/internal/models"
	"github.com/microboard/backend/internal/repositories"
	"github.com/microboard/backend/internal/service"
	"github.com/microboard/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories and services ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database("microboard"))
	postService := service.NewPostService(postRepo, userRepo)

	// --- Auth routes ---
	authGroup := e.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Post routes (listings public, mutations behind the bearer check) ---
	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(e, middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("Post routes configured.")

	// --- Feed client ---
	e.Static("/", "web/static")
	log.Println("Static feed client configured.")
}
