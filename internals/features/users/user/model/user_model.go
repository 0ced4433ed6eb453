package model

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:100;unique;not null" json:"username" validate:"required,max=100"`
	Password string `gorm:"size:255;not null" json:"-" validate:"required"`
	Nickname string `gorm:"size:100;unique;not null" json:"nickname" validate:"required,max=100"`
	Score    int    `gorm:"not null;default:0" json:"score"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + " wajib diisi.\n"
			case "max":
				msg += fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter.\n"
			default:
				msg += fieldErr.Field() + ": format tidak valid.\n"
			}
		}
		return errors.New(msg)
	}
	return err
}
