// file: internals/helpers/flash.go
package helper

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	flashMessageCookie  = "flash_message"
	flashCategoryCookie = "flash_category"
)

// Flash adalah pesan sekali-tampil untuk response berikutnya.
type Flash struct {
	Message  string
	Category string // success | danger | info | warning
}

// SetFlash menaruh pesan flash di cookie; dibaca dan dihapus saat render berikutnya.
func SetFlash(c *fiber.Ctx, category, message string) {
	expires := time.Now().Add(5 * time.Minute)
	c.Cookie(&fiber.Cookie{
		Name:     flashMessageCookie,
		Value:    url.QueryEscape(message),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  expires,
	})
	c.Cookie(&fiber.Cookie{
		Name:     flashCategoryCookie,
		Value:    category,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  expires,
	})
}

// PopFlash mengambil pesan flash (jika ada) lalu menghapus cookie-nya.
func PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashMessageCookie)
	if raw == "" {
		return nil
	}
	message, err := url.QueryUnescape(raw)
	if err != nil {
		message = raw
	}
	category := c.Cookies(flashCategoryCookie)
	if category == "" {
		category = "info"
	}

	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{flashMessageCookie, flashCategoryCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return &Flash{Message: message, Category: category}
}

// RedirectWithFlash: pola standar handler boundary: flash + redirect 303.
func RedirectWithFlash(c *fiber.Ctx, location, category, message string) error {
	SetFlash(c, category, message)
	return c.Redirect(location, fiber.StatusSeeOther)
}
