package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func WorkerRoutes(app *fiber.App) {
	workers := app.Group("/workers")

	workers.Get("/", controllers.GetAllWorkers)
	// report/all must be registered before /:id
	workers.Get("/report/all", controllers.GetAllWorkersReport)
	workers.Get("/:id/report", controllers.GetWorkerReport)
	workers.Get("/:id", controllers.GetWorkerByID)
	workers.Post("/", controllers.CreateWorker)
	workers.Put("/:id", controllers.UpdateWorker)
	workers.Delete("/:id", controllers.DeleteWorker)
}
