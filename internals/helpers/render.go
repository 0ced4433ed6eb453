// file: internals/helpers/render.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// RenderPage merender template dengan flash message (kalau ada) disuntikkan
// ke binding sebagai "Flash". Semua halaman lewat sini supaya konsisten.
func RenderPage(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	if _, ok := bind["Flash"]; !ok {
		if flash := PopFlash(c); flash != nil {
			bind["Flash"] = flash
		}
	}
	if _, ok := bind["LoggedIn"]; !ok {
		bind["LoggedIn"] = c.Locals("user_id") != nil
	}
	return c.Render(name, bind)
}
