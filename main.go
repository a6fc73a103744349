package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"comercial/internal/handlers"
	"comercial/internal/models"
	"comercial/internal/repositories"
	"comercial/internal/services"
	"comercial/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "sistemaComercial.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := OpenDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// The API works without a broker; purchase events are simply not
	// published when RABBITMQ_URL is unset or the broker is unreachable.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, continuing without events: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()

			// Consume purchase events. Real consumers (inventory sync,
			// email) would replace this logging handler.
			if consumerErr := mqClient.ConsumePurchaseEvents(func(msg amqp.Delivery) error {
				log.Printf("Received purchase event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}
	}

	app := NewApp(db, mqClient)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// OpenDatabase opens the relational store selected by driver. SQLite keeps
// the original single-file store; postgres serves deployments that need one.
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), cfg)
	case "postgres":
		return gorm.Open(postgres.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// Migrate creates or updates the entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Purchase{},
		&models.PurchaseLine{},
	)
}

// NewApp wires repositories, services and handlers into a Fiber app.
// mqClient may be nil.
func NewApp(db *gorm.DB, mqClient *rabbitmq.Client) *fiber.App {
	// --- Repositories ---
	customerRepo := repositories.NewGORMCustomerRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	purchaseRepo := repositories.NewGORMPurchaseRepository(db)
	reportRepo := repositories.NewGORMReportRepository(db)
	uow := repositories.NewGORMUnitOfWork(db)

	// --- Services ---
	customerService := services.NewCustomerService(customerRepo, purchaseRepo)
	productService := services.NewProductService(productRepo, purchaseRepo)
	purchaseService := services.NewPurchaseService(uow, purchaseRepo, mqClient)
	reportService := services.NewReportService(reportRepo, purchaseRepo)
	exportService := services.NewExportService()

	// --- Handlers ---
	customerHandler := handlers.NewCustomerHandler(customerService)
	productHandler := handlers.NewProductHandler(productService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(reportService, exportService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())

	// --- API Routes ---
	customerHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	purchaseHandler.RegisterRoutes(app)
	reportHandler.RegisterRoutes(app)
	exportHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
