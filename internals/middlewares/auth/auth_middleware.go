// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kuisku_backend/internals/configs"
	helper "kuisku_backend/internals/helpers"
)

// ResolveSession membaca cookie sesi (jika ada) dan menyimpan identitas
// hasil resolve ke context request. Tidak pernah memblokir: halaman publik
// tetap jalan tanpa sesi.
func ResolveSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := strings.TrimSpace(c.Cookies(configs.SessionCookieName))
		if tokenString == "" {
			return c.Next()
		}

		userID, err := helper.ParseSessionToken(tokenString)
		if err != nil {
			// Token rusak/kadaluarsa → bersihkan, lanjut sebagai anonim
			log.Printf("[WARN] session token invalid: %v", err)
			helper.ClearSessionCookie(c)
			return c.Next()
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// AuthRequired menjaga halaman yang butuh login. Tanpa sesi valid →
// redirect diam-diam ke /login, tanpa mutasi apa pun.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := helper.GetUserID(c); !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
