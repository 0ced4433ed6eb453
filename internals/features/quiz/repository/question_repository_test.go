package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (QuestionRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewQuestionRepository(db), mock
}

func questionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "question_text", "option1", "option2", "option3", "option4", "correct_option",
	})
}

func TestFindQuestionByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE "questions"."id" = \$1`).
		WithArgs(3, 1).
		WillReturnRows(questionRows().AddRow(3, "What is 7 x 8?", "54", "56", "58", "64", "56"))

	question, err := repo.FindByID(3)
	require.NoError(t, err)
	require.Equal(t, uint(3), question.ID)
	require.Equal(t, "56", question.CorrectOption)
	require.Equal(t, []string{"54", "56", "58", "64"}, question.Options())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindQuestionByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "questions" WHERE "questions"."id" = \$1`).
		WithArgs(99, 1).
		WillReturnRows(questionRows())

	_, err := repo.FindByID(99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListIDs(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT "id" FROM "questions" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(5))

	ids, err := repo.ListIDs()
	require.NoError(t, err)
	require.Equal(t, []uint{1, 2, 5}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListIDsEmptyStore(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT "id" FROM "questions" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ListIDs()
	require.NoError(t, err)
	require.Empty(t, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByText(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "questions" WHERE question_text = \$1`).
		WithArgs("What is 7 x 8?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByText("What is 7 x 8?")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
