package routes

import (
	"github.com/aswin-roy/jjjj/controllers"
	"github.com/aswin-roy/jjjj/middleware"

	"github.com/gofiber/fiber/v2"
)

func SalesReportRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/sales-report", controllers.GetAllSalesReports)
	api.Get("/sales-report/summary", controllers.GetSalesReportSummary)
	// export is opened via window.open, so it authenticates itself
	api.Get("/sales-report/export/excel", middleware.JWTMiddlewareForExport, controllers.ExportSalesReportExcel)
	api.Post("/sales-report", controllers.CreateSalesReport)

	api.Get("/invoice/:id", controllers.GetInvoiceByID)
	api.Get("/invoice-print/:id", controllers.GetInvoiceForPrint)
}
