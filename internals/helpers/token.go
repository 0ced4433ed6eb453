// file: internals/helpers/token.go
package helper

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"kuisku_backend/internals/configs"
)

var ErrInvalidSessionToken = errors.New("session token tidak valid")

// CreateSessionToken membuat JWT sesi (HS256) yang membawa identitas user.
func CreateSessionToken(userID uint, username string, now time.Time) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"typ":       "session",
		"sub":       strconv.FormatUint(uint64(userID), 10),
		"id":        userID,
		"user_name": username,
		"iat":       now.Unix(),
		"exp":       now.Add(configs.SessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionToken memverifikasi token dan mengembalikan user id di dalamnya.
func ParseSessionToken(tokenString string) (uint, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return 0, errors.New("JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidSessionToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return 0, ErrInvalidSessionToken
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidSessionToken
	}
	return uint(id), nil
}

// SetSessionCookie memasang cookie access_token HTTPOnly.
func SetSessionCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  now.Add(configs.SessionTTL),
	})
}

// ClearSessionCookie menghapus cookie sesi (idempotent).
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     configs.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
}

// GetUserID membaca identitas hasil resolve auth middleware dari context request.
func GetUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok && id != 0
}
