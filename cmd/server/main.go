package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/farhan1515/GYM-BOT/internal/config"
	"github.com/farhan1515/GYM-BOT/internal/database"
	"github.com/farhan1515/GYM-BOT/internal/metrics"
	"github.com/farhan1515/GYM-BOT/internal/routes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.ConnectDB(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL successfully")

	// Redis backs the chat session endpoints only; the rest of the API
	// works without it.
	var redisClient *redis.Client
	if cfg.RedisConfigured() {
		redisClient, err = database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		log.Println("REDIS_ADDR not set, chat session endpoints disabled")
	}

	metrics.Register()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	if err := routes.RegisterRoutes(app, cfg, db, redisClient); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
