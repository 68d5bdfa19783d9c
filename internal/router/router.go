package router

import (
	"errors"
	"fmt"
	"net/http"

	"go-inventory-catalog/internal/config"
	"go-inventory-catalog/internal/handler"
	"go-inventory-catalog/internal/metrics"
	"go-inventory-catalog/internal/middleware"
	"go-inventory-catalog/internal/repository"
	"go-inventory-catalog/internal/service"
	"go-inventory-catalog/internal/ws"
	"go-inventory-catalog/web"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options tunes the app for production or tests.
type Options struct {
	AppName     string
	CORSOrigins string
	// AccessLog enables the per-request log line.
	AccessLog bool
}

// OptionsFromConfig builds router options from the loaded config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		AppName:     cfg.AppName,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	}
}

// New wires repositories, services and handlers onto a fiber app.
// hub may be nil, in which case catalog events are not published and /ws is not mounted.
func New(opts Options, db *gorm.DB, hub *ws.Hub) (*fiber.App, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("router: get sql.DB: %w", err)
	}

	productRepo := repository.NewProductRepo(db)

	var events service.EventPublisher
	if hub != nil {
		events = hub
	}
	invService := service.NewInventoryService(productRepo, events)
	dashService := service.NewDashboardService(productRepo)

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	healthHandler := handler.NewHealthHandler(sqlDB)

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: jsonErrorHandler,
	})

	// Middleware
	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: opts.CORSOrigins}))
	app.Use(middleware.Metrics())

	app.Get("/health", healthHandler.Health)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")

	api.Get("/products", invHandler.GetProducts)
	api.Get("/products/:id", invHandler.GetProduct)
	api.Post("/products", invHandler.CreateProduct)
	api.Put("/products/:id/quantity", invHandler.UpdateQuantity)
	api.Put("/products/:id", invHandler.UpdateProduct)
	api.Delete("/products/:id", invHandler.DeleteProduct)

	api.Get("/categories", invHandler.GetCategories)
	api.Get("/stats", dashHandler.GetDashboardStats)

	// WebSocket Route
	if hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return c.SendStatus(fiber.StatusUpgradeRequired)
		})
		app.Get("/ws", websocket.New(hub.Serve))
	}

	// Client app and category images
	app.Use("/", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Assets()),
		Index:  "index.html",
		MaxAge: 3600,
	}))

	return app, nil
}

func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
