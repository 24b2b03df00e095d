package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	orders := app.Group("/orders")

	orders.Get("/", controllers.GetAllOrders)
	orders.Get("/:id", controllers.GetOrderByID)
	orders.Post("/", controllers.CreateOrder)
	orders.Put("/:id", controllers.UpdateOrder)
	orders.Post("/:id/assign", controllers.AddWorkerAssignment)
	orders.Delete("/:id", controllers.DeleteOrder)
}
