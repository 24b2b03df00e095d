package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func InventoryRoutes(app *fiber.App) {
	inventory := app.Group("/inventory")

	inventory.Get("/", controllers.GetAllInventory)
	inventory.Get("/:id", controllers.GetInventoryByID)
	inventory.Post("/", controllers.CreateInventory)
	inventory.Put("/:id", controllers.UpdateInventory)
	inventory.Delete("/:id", controllers.DeleteInventory)
}
