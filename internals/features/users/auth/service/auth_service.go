package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "kuisku_backend/internals/features/users/auth/helper"
	userModel "kuisku_backend/internals/features/users/user/model"
	userRepo "kuisku_backend/internals/features/users/user/repository"
	helper "kuisku_backend/internals/helpers"
)

/* ==========================
   Pesan user-facing
========================== */

const (
	MsgUsernameTaken   = "Username already exists. Please choose a different username."
	MsgNicknameTaken   = "Nickname already exists. Please choose a different nickname."
	MsgRegisterSuccess = "Registration successful! Please log in."
	MsgLoginFailed     = "Login failed. Please check your username and password."
	MsgLoggedOut       = "You have been logged out."
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   REGISTER
========================== */

func Register(users userRepo.UserRepository, c *fiber.Ctx) error {
	var input struct {
		Username        string `form:"username"`
		Password        string `form:"password"`
		ConfirmPassword string `form:"confirm_password"`
		Nickname        string `form:"nickname"`
	}
	if err := c.BodyParser(&input); err != nil {
		return renderRegister(c, "danger", "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.Username, input.Password, input.ConfirmPassword, input.Nickname); err != nil {
		return renderRegister(c, "danger", err.Error())
	}

	// Username & nickname harus unik, pesan penolakan dibedakan
	if _, err := users.FindByUsername(input.Username); err == nil {
		return renderRegister(c, "danger", MsgUsernameTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return renderRegister(c, "danger", "Registration failed. Please try again.")
	}
	if _, err := users.FindByNickname(input.Nickname); err == nil {
		return renderRegister(c, "danger", MsgNicknameTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return renderRegister(c, "danger", "Registration failed. Please try again.")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return renderRegister(c, "danger", "Registration failed. Please try again.")
	}

	user := userModel.UserModel{
		Username: input.Username,
		Password: passwordHash,
		Nickname: input.Nickname,
		Score:    0,
	}
	if err := user.Validate(); err != nil {
		return renderRegister(c, "danger", err.Error())
	}

	if err := users.Insert(&user); err != nil {
		// race dengan unique constraint di DB
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			if strings.Contains(low, "nickname") {
				return renderRegister(c, "danger", MsgNicknameTaken)
			}
			return renderRegister(c, "danger", MsgUsernameTaken)
		}
		return renderRegister(c, "danger", "Registration failed. Please try again.")
	}

	return helper.RedirectWithFlash(c, "/login", "success", MsgRegisterSuccess)
}

func renderRegister(c *fiber.Ctx, category, message string) error {
	return helper.RenderPage(c, "register", fiber.Map{
		"Flash": &helper.Flash{Message: message, Category: category},
	})
}

/* ==========================
   LOGIN
========================== */

func Login(users userRepo.UserRepository, c *fiber.Ctx) error {
	var input struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return renderLoginFailed(c)
	}

	if err := authHelper.ValidateLoginInput(input.Username, input.Password); err != nil {
		return renderLoginFailed(c)
	}

	// Pesan gagal sengaja generik: user tidak tahu mana yang salah
	user, err := users.FindByUsername(input.Username)
	if err != nil {
		return renderLoginFailed(c)
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return renderLoginFailed(c)
	}

	now := nowUTC()
	token, err := helper.CreateSessionToken(user.ID, user.Username, now)
	if err != nil {
		return renderLoginFailed(c)
	}
	helper.SetSessionCookie(c, token, now)

	return c.Redirect("/", fiber.StatusSeeOther)
}

func renderLoginFailed(c *fiber.Ctx) error {
	return helper.RenderPage(c, "login", fiber.Map{
		"Flash": &helper.Flash{Message: MsgLoginFailed, Category: "danger"},
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(c *fiber.Ctx) error {
	helper.ClearSessionCookie(c)
	return helper.RedirectWithFlash(c, "/login", "info", MsgLoggedOut)
}
