package repository

import (
	"gorm.io/gorm"

	userModel "kuisku_backend/internals/features/users/user/model"
)

// UserRepository memisahkan controller/service dari teknologi storage.
type UserRepository interface {
	FindByUsername(username string) (*userModel.UserModel, error)
	FindByNickname(nickname string) (*userModel.UserModel, error)
	FindByID(id uint) (*userModel.UserModel, error)
	ListOrderedByScoreDesc() ([]userModel.UserModel, error)
	Insert(user *userModel.UserModel) error
	IncrementScore(id uint, delta int) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByUsername(username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindByNickname(nickname string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindByID(id uint) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) ListOrderedByScoreDesc() ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := r.db.Order("score DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormUserRepository) Insert(user *userModel.UserModel) error {
	return r.db.Create(user).Error
}

// IncrementScore menambah skor dalam satu statement UPDATE,
// aman terhadap submit bersamaan dari user yang sama.
func (r *gormUserRepository) IncrementScore(id uint, delta int) error {
	return r.db.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", delta)).Error
}
