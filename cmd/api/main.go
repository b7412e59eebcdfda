package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"wishlist-backend/internal/config"
	"wishlist-backend/internal/handler"
	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/pkg/logger"
	"wishlist-backend/internal/repository"
	"wishlist-backend/internal/service"
	"wishlist-backend/internal/service/auth"
	"wishlist-backend/internal/service/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel)

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		appLogger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := config.Migrate(db, cfg); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		appLogger.Warnf("Failed to connect to Redis: %v (caching disabled)", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		appLogger.Warnf("Failed to connect to MinIO: %v (photo upload will not work)", err)
		minioClient = nil
	}

	var bot *telegram.Bot
	if cfg.BotToken != "" {
		bot, err = telegram.NewBot(cfg.BotToken, cfg.FrontendURL, appLogger)
		if err != nil {
			appLogger.Warnf("Failed to connect to Telegram: %v (outbound messages disabled)", err)
			bot = nil
		}
	} else {
		appLogger.Warn("BOT_TOKEN not set, outbound messages disabled")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, bot, cfg, appLogger)
	handlers := handler.NewHandlers(services, appLogger)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(appLogger),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	appLogger.Infof("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/auth/verify", h.Auth.Verify)
	app.Post("/webhook", h.Bot.Webhook)

	protected := app.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.Me)

	wishes := protected.Group("/wishes")
	wishes.Post("/", h.Wish.Create)
	wishes.Get("/", h.Wish.List)
	wishes.Post("/photo", h.Wish.UploadPhoto)
	wishes.Patch("/:wishId", h.Wish.Update)
	wishes.Delete("/:wishId", h.Wish.Delete)
	wishes.Post("/:wishId/gift", h.Gift.Mark)
	wishes.Delete("/:wishId/gift", h.Gift.Unmark)
	wishes.Get("/:wishId/gifters", h.Gift.ListGifters)

	friends := protected.Group("/friends")
	friends.Get("/", h.Friend.ListFriends)
	friends.Get("/requests", h.Friend.ListPending)
	friends.Post("/requests", h.Friend.SendRequest)
	friends.Post("/requests/:requesterId/accept", h.Friend.AcceptRequest)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)

	bot := protected.Group("/bot")
	bot.Post("/send-message", h.Bot.SendMessage)
}
