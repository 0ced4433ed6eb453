// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeRoute "kuisku_backend/internals/features/home/route"
	leaderboardRoute "kuisku_backend/internals/features/leaderboard/route"
	quizRoute "kuisku_backend/internals/features/quiz/route"
	authRoute "kuisku_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	log.Println("[INFO] Setting up HomeRoutes...")
	homeRoute.HomeRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	quizRoute.QuizRoutes(app, db)

	log.Println("[INFO] Setting up LeaderboardRoutes...")
	leaderboardRoute.LeaderboardRoutes(app, db)
}
