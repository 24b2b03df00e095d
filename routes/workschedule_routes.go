package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func WorkScheduleRoutes(app *fiber.App) {
	schedules := app.Group("/workschedule")

	schedules.Get("/", controllers.GetAllWorkSchedules)
	// fixed paths before /:id
	schedules.Get("/upcoming", controllers.GetUpcomingWorkSchedules)
	schedules.Get("/worker/:workerId", controllers.GetWorkSchedulesByWorker)
	schedules.Get("/order/:orderId", controllers.GetWorkSchedulesByOrder)
	schedules.Get("/:id", controllers.GetWorkScheduleByID)
	schedules.Post("/", controllers.CreateWorkSchedule)
	schedules.Put("/:id", controllers.UpdateWorkSchedule)
	schedules.Delete("/:id", controllers.DeleteWorkSchedule)
}
