package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func DashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")

	dashboard.Get("/stats", controllers.GetDashboardStats)
}
