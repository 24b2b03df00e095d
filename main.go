package main

import (
	"log"
	"os"
	"strings"

	"github.com/aswin-roy/jjjj/config"
	_ "github.com/aswin-roy/jjjj/docs"
	"github.com/aswin-roy/jjjj/middleware"
	"github.com/aswin-roy/jjjj/repository"
	"github.com/aswin-roy/jjjj/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

//	@title			Tailor Shop API
//	@version		1.0
//	@description	Back-office API for the tailor shop: customers, measurements, inventory, orders, sales and reports.
//	@description
//	@description	**Authentication:**
//	@description	- All endpoints except /auth/* require a Bearer token
//	@description	- The token comes from /auth/login
//	@description	- Format: Authorization: Bearer {token}

//	@host		localhost:5000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Not fatal when missing: deployments inject env directly
	_ = godotenv.Load()

	appEnv := strings.ToLower(os.Getenv("APP_ENV"))
	if os.Getenv("JWT_SECRET") == "" {
		if appEnv == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		os.Setenv("JWT_SECRET", "dev_secret_key_change_me")
		log.Println("JWT_SECRET not set, using development default")
	}

	config.ConnectDB()

	if err := repository.EnsureInventoryIndexes(); err != nil {
		log.Printf("failed to create inventory indexes: %v", err)
	}
	if err := repository.EnsureOrderIndexes(); err != nil {
		log.Printf("failed to create order indexes: %v", err)
	}
	if err := repository.EnsureSalesEntryIndexes(); err != nil {
		log.Printf("failed to create sales entry indexes: %v", err)
	}
	if err := repository.EnsureSalesReportIndexes(); err != nil {
		log.Printf("failed to create sales report indexes: %v", err)
	}
	if err := repository.EnsureWorkScheduleIndexes(); err != nil {
		log.Printf("failed to create work schedule indexes: %v", err)
	}
	if err := repository.EnsureMeasurementIndexes(); err != nil {
		log.Printf("failed to create measurement indexes: %v", err)
	}
	if err := repository.EnsureUserIndexes(); err != nil {
		log.Printf("failed to create user indexes: %v", err)
	}

	app := fiber.New()

	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())
	app.Use(middleware.NormalizeURL)

	// JWT everywhere except auth and swagger. The Excel export authenticates
	// itself at route level because the token may arrive via query string.
	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/api/sales-report/export/excel" {
			return c.Next()
		}
		if strings.HasPrefix(path, "/auth/") || strings.HasPrefix(path, "/swagger") {
			return c.Next()
		}
		return middleware.JWTMiddleware(c)
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.SetupRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("server listening on http://localhost:" + port)
	log.Fatal(app.Listen(":" + port))
}
