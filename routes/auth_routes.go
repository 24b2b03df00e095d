package routes

import (
	"github.com/aswin-roy/jjjj/controllers"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/forgot-password", controllers.ForgotPassword)
	auth.Post("/verify-code", controllers.VerifyCode)
	auth.Post("/reset-password", controllers.ResetPassword)
}
