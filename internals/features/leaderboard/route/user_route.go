// file: internals/features/leaderboard/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kuisku_backend/internals/features/leaderboard/controller"
	userRepo "kuisku_backend/internals/features/users/user/repository"
)

func LeaderboardRoutes(app *fiber.App, db *gorm.DB) {
	leaderboardController := controller.NewLeaderboardController(userRepo.NewUserRepository(db))

	// 🔓 Public
	app.Get("/leaderboard", leaderboardController.LeaderboardPage)
}
