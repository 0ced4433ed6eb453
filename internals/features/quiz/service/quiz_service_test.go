package service

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	questionModel "kuisku_backend/internals/features/quiz/model"
	userModel "kuisku_backend/internals/features/users/user/model"
)

/* ==========================
   Fakes
========================== */

type fakeQuestionRepo struct {
	questions map[uint]*questionModel.QuestionModel
}

func (f *fakeQuestionRepo) FindByID(id uint) (*questionModel.QuestionModel, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) ListIDs() ([]uint, error) {
	ids := make([]uint, 0, len(f.questions))
	for id := range f.questions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeQuestionRepo) Insert(q *questionModel.QuestionModel) error {
	f.questions[q.ID] = q
	return nil
}

func (f *fakeQuestionRepo) CountByText(text string) (int64, error) {
	var n int64
	for _, q := range f.questions {
		if q.QuestionText == text {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users map[uint]*userModel.UserModel
}

func (f *fakeUserRepo) FindByUsername(username string) (*userModel.UserModel, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByNickname(nickname string) (*userModel.UserModel, error) {
	for _, u := range f.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*userModel.UserModel, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListOrderedByScoreDesc() ([]userModel.UserModel, error) {
	return nil, errors.New("not used")
}

func (f *fakeUserRepo) Insert(u *userModel.UserModel) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) IncrementScore(id uint, delta int) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Score += delta
	return nil
}

func newQuestion(id uint, correct string) *questionModel.QuestionModel {
	return &questionModel.QuestionModel{
		ID:            id,
		QuestionText:  "q",
		Option1:       "a",
		Option2:       "b",
		Option3:       "c",
		Option4:       correct,
		CorrectOption: correct,
	}
}

func newService(questions *fakeQuestionRepo, users *fakeUserRepo, seed int64) *QuizService {
	return NewQuizService(questions, users, rand.New(rand.NewSource(seed)))
}

/* ==========================
   RandomQuestion
========================== */

func TestRandomQuestionEmptyStore(t *testing.T) {
	svc := newService(&fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{}},
		&fakeUserRepo{users: map[uint]*userModel.UserModel{}}, 1)

	q, err := svc.RandomQuestion()
	require.NoError(t, err)
	require.Nil(t, q)
}

func TestRandomQuestionReturnsStoredQuestion(t *testing.T) {
	repo := &fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{
		1: newQuestion(1, "a"),
		2: newQuestion(2, "b"),
		3: newQuestion(3, "c"),
	}}
	svc := newService(repo, &fakeUserRepo{users: map[uint]*userModel.UserModel{}}, 42)

	for i := 0; i < 20; i++ {
		q, err := svc.RandomQuestion()
		require.NoError(t, err)
		require.NotNil(t, q)
		require.Contains(t, []uint{1, 2, 3}, q.ID)
	}
}

func TestRandomQuestionDeterministicWithSameSeed(t *testing.T) {
	build := func() *QuizService {
		repo := &fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{
			1: newQuestion(1, "a"),
			2: newQuestion(2, "b"),
			3: newQuestion(3, "c"),
			4: newQuestion(4, "d"),
		}}
		return newService(repo, &fakeUserRepo{users: map[uint]*userModel.UserModel{}}, 7)
	}
	a, b := build(), build()

	for i := 0; i < 10; i++ {
		qa, err := a.RandomQuestion()
		require.NoError(t, err)
		qb, err := b.RandomQuestion()
		require.NoError(t, err)
		require.Equal(t, qa.ID, qb.ID)
	}
}

/* ==========================
   SubmitAnswer
========================== */

func TestSubmitAnswerCorrectIncrementsScoreByOne(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*userModel.UserModel{
		5: {ID: 5, Username: "ali", Nickname: "ali", Score: 2},
	}}
	repo := &fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{
		1: newQuestion(1, "Ankara"),
	}}
	svc := newService(repo, users, 1)

	correct, err := svc.SubmitAnswer(5, 1, "Ankara")
	require.NoError(t, err)
	require.True(t, correct)
	require.Equal(t, 3, users.users[5].Score)
}

func TestSubmitAnswerWrongLeavesScoreUnchanged(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*userModel.UserModel{
		5: {ID: 5, Username: "ali", Nickname: "ali", Score: 2},
	}}
	repo := &fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{
		1: newQuestion(1, "Ankara"),
	}}
	svc := newService(repo, users, 1)

	correct, err := svc.SubmitAnswer(5, 1, "Istanbul")
	require.NoError(t, err)
	require.False(t, correct)
	require.Equal(t, 2, users.users[5].Score)
}

func TestSubmitAnswerExactStringMatchOnly(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*userModel.UserModel{
		5: {ID: 5, Score: 0},
	}}
	repo := &fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{
		1: newQuestion(1, "Ankara"),
	}}
	svc := newService(repo, users, 1)

	// beda kapital / whitespace = salah
	for _, selected := range []string{"ankara", " Ankara", "Ankara "} {
		correct, err := svc.SubmitAnswer(5, 1, selected)
		require.NoError(t, err)
		require.False(t, correct)
	}
	require.Equal(t, 0, users.users[5].Score)
}

func TestSubmitAnswerUnknownQuestionNoMutation(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*userModel.UserModel{
		5: {ID: 5, Score: 2},
	}}
	repo := &fakeQuestionRepo{questions: map[uint]*questionModel.QuestionModel{}}
	svc := newService(repo, users, 1)

	correct, err := svc.SubmitAnswer(5, 99, "Ankara")
	require.ErrorIs(t, err, ErrQuestionNotFound)
	require.False(t, correct)
	require.Equal(t, 2, users.users[5].Score)
}
