package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func SalesEntryRoutes(app *fiber.App) {
	entries := app.Group("/salesentries")

	entries.Get("/", controllers.GetAllSalesEntries)
	entries.Get("/:id", controllers.GetSalesEntryByID)
	entries.Post("/", controllers.CreateSalesEntry)
	entries.Put("/:id", controllers.UpdateSalesEntry)
	entries.Delete("/:id", controllers.DeleteSalesEntry)
}
