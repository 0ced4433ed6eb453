package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"kuisku_backend/internals/features/quiz/service"
	helper "kuisku_backend/internals/helpers"
)

const (
	MsgSubmitError   = "An error occurred while processing your answer. Please try again."
	MsgCorrectAnswer = "Correct answer!"
	MsgWrongAnswer   = "Wrong answer!"
)

type QuizController struct {
	Quiz *service.QuizService
}

func NewQuizController(quiz *service.QuizService) *QuizController {
	return &QuizController{Quiz: quiz}
}

// QuizPage merender satu soal acak + skor kumulatif user.
func (qc *QuizController) QuizPage(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	totalScore := 0
	if user, err := qc.Quiz.Users.FindByID(userID); err == nil {
		totalScore = user.Score
	} else {
		log.Printf("[WARN] fetch score user %d: %v", userID, err)
	}

	question, err := qc.Quiz.RandomQuestion()
	if err != nil {
		log.Printf("[ERROR] random question: %v", err)
		return helper.RenderPage(c, "quiz", fiber.Map{
			"Flash":      &helper.Flash{Message: MsgSubmitError, Category: "danger"},
			"TotalScore": totalScore,
		})
	}

	bind := fiber.Map{
		"TotalScore": totalScore,
	}
	if question != nil {
		bind["Question"] = question
	}
	return helper.RenderPage(c, "quiz", bind)
}

// SubmitQuiz menilai jawaban dari form lalu kembali ke /quiz (soal baru).
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	selected := c.FormValue("question")
	questionIDStr := c.FormValue("question_id")

	questionID, err := strconv.ParseUint(questionIDStr, 10, 64)
	if err != nil {
		return helper.RedirectWithFlash(c, "/quiz", "danger", MsgSubmitError)
	}

	correct, err := qc.Quiz.SubmitAnswer(userID, uint(questionID), selected)
	if err != nil {
		if !errors.Is(err, service.ErrQuestionNotFound) {
			log.Printf("[ERROR] submit answer user %d: %v", userID, err)
		}
		return helper.RedirectWithFlash(c, "/quiz", "danger", MsgSubmitError)
	}

	if correct {
		return helper.RedirectWithFlash(c, "/quiz", "success", MsgCorrectAnswer)
	}
	return helper.RedirectWithFlash(c, "/quiz", "danger", MsgWrongAnswer)
}
