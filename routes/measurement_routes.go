package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func MeasurementRoutes(app *fiber.App) {
	measurements := app.Group("/measurements")

	measurements.Get("/", controllers.GetAllMeasurements)
	measurements.Get("/:customerId", controllers.GetMeasurementByCustomer)
	measurements.Post("/:customerId", controllers.SaveMeasurement)
	measurements.Put("/:customerId", controllers.UpdateMeasurement)
}
