package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func CustomerRoutes(app *fiber.App) {
	customers := app.Group("/customers")

	customers.Get("/", controllers.GetAllCustomers)
	customers.Get("/:id", controllers.GetCustomerByID)
	customers.Post("/", controllers.CreateCustomer)
	customers.Put("/:id", controllers.UpdateCustomer)
	customers.Delete("/:id", controllers.DeleteCustomer)
}
