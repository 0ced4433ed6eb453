// file: internals/features/quiz/route/user_route.go
package route

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kuisku_backend/internals/features/quiz/controller"
	questionRepo "kuisku_backend/internals/features/quiz/repository"
	"kuisku_backend/internals/features/quiz/service"
	userRepo "kuisku_backend/internals/features/users/user/repository"
	authMiddleware "kuisku_backend/internals/middlewares/auth"
)

func QuizRoutes(app *fiber.App, db *gorm.DB) {
	quizService := service.NewQuizService(
		questionRepo.NewQuestionRepository(db),
		userRepo.NewUserRepository(db),
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	quizController := controller.NewQuizController(quizService)

	// 🔒 Semua route kuis butuh sesi aktif
	quiz := app.Group("", authMiddleware.AuthRequired())
	quiz.Get("/quiz", quizController.QuizPage)
	quiz.Post("/quiz", quizController.QuizPage)
	quiz.Post("/submit_quiz", quizController.SubmitQuiz)
}
