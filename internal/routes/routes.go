package routes

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/farhan1515/GYM-BOT/internal/config"
	"github.com/farhan1515/GYM-BOT/internal/handlers"
	"github.com/farhan1515/GYM-BOT/internal/repository"
	"github.com/farhan1515/GYM-BOT/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, redisClient *redis.Client) error {
	leadRepo := repository.NewLeadRepository(db)
	planRepo := repository.NewPlanRepository(db)

	planService, err := services.NewPlanService(cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	deliveryService := services.NewDeliveryService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)

	var sheetsService *services.SheetsService
	if cfg.SheetsConfigured() {
		sheetsService, err = services.NewSheetsService(cfg.GoogleCredentialsFile, cfg.GoogleSheetID)
		if err != nil {
			// The sheet sink is a secondary convenience; boot without it.
			log.Printf("Google Sheets sink disabled: %v", err)
			sheetsService = nil
		}
	}

	var leadService *services.LeadService
	if sheetsService != nil {
		leadService = services.NewLeadService(leadRepo, planRepo, planService, deliveryService, sheetsService)
	} else {
		leadService = services.NewLeadService(leadRepo, planRepo, planService, deliveryService, nil)
	}
	dashboardService := services.NewDashboardService(leadRepo)

	leadHandler := handlers.NewLeadHandler(leadService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	var chatHandler *handlers.ChatHandler
	if redisClient != nil {
		chatHandler = handlers.NewChatHandler(repository.NewSessionRepository(redisClient), leadService)
	} else {
		chatHandler = handlers.NewChatHandler(nil, leadService)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	api.Post("/generate-diet", leadHandler.GenerateDiet)
	api.Post("/send-whatsapp", deliveryHandler.SendWhatsApp)

	chat := api.Group("/chat")
	chat.Post("/start", chatHandler.StartSession)
	chat.Post("/answer", chatHandler.AnswerSession)
	chat.Use("/ws", chatHandler.WebSocketUpgrade)
	chat.Get("/ws", websocket.New(chatHandler.HandleWebSocket))

	leads := api.Group("/leads")
	leads.Get("", dashboardHandler.ListLeads)
	leads.Get("/stats", dashboardHandler.GetStats)
	leads.Get("/export.csv", dashboardHandler.ExportCSV)
	leads.Get("/export.xlsx", dashboardHandler.ExportXLSX)

	return nil
}
