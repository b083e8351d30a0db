package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/daudtravel/backend/internal/config"
	"github.com/daudtravel/backend/internal/handler"
	"github.com/daudtravel/backend/internal/middleware"
	"github.com/daudtravel/backend/internal/repository"
	"github.com/daudtravel/backend/internal/service"
	"github.com/daudtravel/backend/pkg/database"
	"github.com/daudtravel/backend/pkg/email"
	"github.com/daudtravel/backend/pkg/images"
	"github.com/daudtravel/backend/pkg/logger"
	"github.com/daudtravel/backend/pkg/storage"
	"github.com/daudtravel/backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Schema is settled here, before any route is mounted.
	if err := database.Migrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	tourRepo := repository.NewTourRepository(db)
	transferRepo := repository.NewTransferRepository(db)
	userRepo := repository.NewUserRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)

	// Blob storage
	var blobStorage storage.BlobStorage
	switch cfg.StorageDriver {
	case "r2":
		blobStorage, err = storage.NewCloudflareStorage(cfg)
		if err != nil {
			zapLogger.Fatal("failed to initialize R2 storage", zap.Error(err))
		}
	default:
		blobStorage, err = storage.NewLocalStorage(cfg.UploadDir, cfg.PublicURL)
		if err != nil {
			zapLogger.Fatal("failed to initialize local storage", zap.Error(err))
		}
	}
	imageSaver := images.NewSaver(blobStorage)

	// Email service
	emailService := email.NewEmailService(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
		zapLogger,
	)

	// Services
	tourService := service.NewTourService(tourRepo, imageSaver)
	transferService := service.NewTransferService(transferRepo)
	authService := service.NewAuthService(userRepo, verificationRepo, emailService, cfg.JWTSecret)

	validator := utils.NewValidator()

	// Handlers
	tourHandler := handler.NewTourHandler(tourService, validator)
	transferHandler := handler.NewTransferHandler(transferService, validator)
	authHandler := handler.NewAuthHandler(authService, validator)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // base64 galleries are large
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if cfg.StorageDriver == "local" {
		app.Static("/uploads/tours", cfg.UploadDir)
	}

	api := app.Group("/api")

	// Tours
	api.Post("/tours", tourHandler.CreateTour)
	api.Get("/tours", tourHandler.GetTours)
	api.Get("/tours/:id", tourHandler.GetTour)
	api.Put("/tours/:id", tourHandler.UpdateTour)
	api.Delete("/tours/:id", tourHandler.DeleteTour)

	// Transfers
	api.Post("/transfers", transferHandler.CreateTransfer)
	api.Get("/transfers", transferHandler.GetTransfers)
	api.Put("/transfers/:id", transferHandler.UpdateTransfer)
	api.Delete("/transfers/:id", transferHandler.DeleteTransfer)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/send_code", authHandler.SendCode)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/signin", authHandler.Signin)
	auth.Post("/status", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.Status)

	api.Get("/users/:id", middleware.AuthMiddleware(cfg.JWTSecret), authHandler.GetUser)

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
