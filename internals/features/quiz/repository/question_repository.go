package repository

import (
	"gorm.io/gorm"

	questionModel "kuisku_backend/internals/features/quiz/model"
)

type QuestionRepository interface {
	FindByID(id uint) (*questionModel.QuestionModel, error)
	ListIDs() ([]uint, error)
	Insert(question *questionModel.QuestionModel) error
	CountByText(text string) (int64, error)
}

type gormQuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &gormQuestionRepository{db: db}
}

func (r *gormQuestionRepository) FindByID(id uint) (*questionModel.QuestionModel, error) {
	var question questionModel.QuestionModel
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *gormQuestionRepository) ListIDs() ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&questionModel.QuestionModel{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *gormQuestionRepository) Insert(question *questionModel.QuestionModel) error {
	return r.db.Create(question).Error
}

func (r *gormQuestionRepository) CountByText(text string) (int64, error) {
	var count int64
	if err := r.db.Model(&questionModel.QuestionModel{}).
		Where("question_text = ?", text).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
