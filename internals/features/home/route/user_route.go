// file: internals/features/home/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"kuisku_backend/internals/configs"
	controller "kuisku_backend/internals/features/home/controller"
	"kuisku_backend/internals/features/home/service"
)

func HomeRoutes(app *fiber.App) {
	homeController := controller.NewHomeController(
		service.NewForecastService(configs.WeatherBaseURL, configs.WeatherAPIKey),
	)

	// 🔓 Public
	app.Get("/", homeController.HomePage)
}
