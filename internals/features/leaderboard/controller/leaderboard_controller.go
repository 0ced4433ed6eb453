package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	userRepo "kuisku_backend/internals/features/users/user/repository"
	helper "kuisku_backend/internals/helpers"
)

type LeaderboardController struct {
	Users userRepo.UserRepository
}

func NewLeaderboardController(users userRepo.UserRepository) *LeaderboardController {
	return &LeaderboardController{Users: users}
}

// LeaderboardPage menampilkan semua user urut skor menurun, tanpa pagination.
func (lc *LeaderboardController) LeaderboardPage(c *fiber.Ctx) error {
	users, err := lc.Users.ListOrderedByScoreDesc()
	if err != nil {
		log.Printf("[ERROR] leaderboard: %v", err)
		return helper.RenderPage(c, "leaderboard", fiber.Map{
			"Flash": &helper.Flash{Message: "Leaderboard is not available right now.", Category: "warning"},
		})
	}

	return helper.RenderPage(c, "leaderboard", fiber.Map{
		"Users": users,
	})
}
