package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	AuthRoutes(app)
	CustomerRoutes(app)
	InventoryRoutes(app)
	MeasurementRoutes(app)
	OrderRoutes(app)
	WorkerRoutes(app)
	SalesEntryRoutes(app)
	SalesReportRoutes(app)
	WorkScheduleRoutes(app)
	DashboardRoutes(app)
}
