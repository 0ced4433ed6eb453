package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"kuisku_backend/internals/configs"
	"kuisku_backend/internals/features/home/service"
	helper "kuisku_backend/internals/helpers"
)

const MsgWeatherUnavailable = "Weather data not available. Please try again later."

type HomeController struct {
	Forecast *service.ForecastService
}

func NewHomeController(forecast *service.ForecastService) *HomeController {
	return &HomeController{Forecast: forecast}
}

// HomePage merender forecast untuk kota dari query ?city (default dari config).
// Kegagalan API → warning + section cuaca kosong, halaman tetap tampil.
func (hc *HomeController) HomePage(c *fiber.Ctx) error {
	city := c.Query("city", configs.DefaultCity)

	weatherData, err := hc.Forecast.Forecast(c.UserContext(), city)
	if err != nil {
		log.Printf("[WARN] forecast %q: %v", city, err)
		return helper.RenderPage(c, "index", fiber.Map{
			"Flash": &helper.Flash{Message: MsgWeatherUnavailable, Category: "warning"},
		})
	}

	return helper.RenderPage(c, "index", fiber.Map{
		"WeatherData": weatherData,
		"CityName":    city,
	})
}
