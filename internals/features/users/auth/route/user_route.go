// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kuisku_backend/internals/features/users/auth/controller"
	userRepo "kuisku_backend/internals/features/users/user/repository"
	authMiddleware "kuisku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(userRepo.NewUserRepository(db))

	// 🔓 Public
	app.Get("/register", authController.RegisterPage)
	app.Post("/register", authController.Register)
	app.Get("/login", authController.LoginPage)
	app.Post("/login", authController.Login)

	// 🔒 Butuh sesi aktif (tanpa sesi → redirect /login)
	app.Get("/logout", authMiddleware.AuthRequired(), authController.Logout)
	app.Post("/logout", authMiddleware.AuthRequired(), authController.Logout)
}
