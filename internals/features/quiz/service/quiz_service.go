package service

import (
	"errors"
	"math/rand"
	"sync"

	questionModel "kuisku_backend/internals/features/quiz/model"
	questionRepo "kuisku_backend/internals/features/quiz/repository"
	userRepo "kuisku_backend/internals/features/users/user/repository"
)

var ErrQuestionNotFound = errors.New("question tidak ditemukan")

// QuizService memilih soal acak dan menilai jawaban.
// Sumber random disuntikkan supaya bisa deterministik di test.
type QuizService struct {
	Questions questionRepo.QuestionRepository
	Users     userRepo.UserRepository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuizService(questions questionRepo.QuestionRepository, users userRepo.UserRepository, rng *rand.Rand) *QuizService {
	return &QuizService{
		Questions: questions,
		Users:     users,
		rng:       rng,
	}
}

// RandomQuestion memilih satu soal uniform dari semua id yang ada.
// Store kosong → (nil, nil), halaman tetap render tanpa soal.
func (s *QuizService) RandomQuestion() (*questionModel.QuestionModel, error) {
	ids, err := s.Questions.ListIDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(ids))
	s.mu.Unlock()

	return s.Questions.FindByID(ids[idx])
}

// SubmitAnswer membandingkan jawaban terpilih dengan correct_option secara
// verbatim. Benar → skor user naik 1 (satu statement UPDATE). Soal tidak
// ditemukan → ErrQuestionNotFound, skor tidak berubah.
func (s *QuizService) SubmitAnswer(userID, questionID uint, selected string) (bool, error) {
	question, err := s.Questions.FindByID(questionID)
	if err != nil {
		return false, ErrQuestionNotFound
	}

	if selected != question.CorrectOption {
		return false, nil
	}

	if err := s.Users.IncrementScore(userID, 1); err != nil {
		return false, err
	}
	return true, nil
}
