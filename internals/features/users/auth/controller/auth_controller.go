package controller

import (
	"github.com/gofiber/fiber/v2"

	"kuisku_backend/internals/features/users/auth/service"
	userRepo "kuisku_backend/internals/features/users/user/repository"
	helper "kuisku_backend/internals/helpers"
)

type AuthController struct {
	Users userRepo.UserRepository
}

func NewAuthController(users userRepo.UserRepository) *AuthController {
	return &AuthController{Users: users}
}

func (ac *AuthController) RegisterPage(c *fiber.Ctx) error {
	return helper.RenderPage(c, "register", nil)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.Users, c)
}

func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	return helper.RenderPage(c, "login", nil)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.Users, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}
