package helper

import (
	"errors"
)

// Pesan user-facing untuk validasi form
const (
	MsgAllFieldsRequired   = "All fields are required."
	MsgPasswordMismatch    = "Passwords do not match."
	MsgCredentialsRequired = "Username and password are required."
)

// ValidateRegisterInput memeriksa kelengkapan form registrasi.
// Whitespace tidak di-trim: nilai disimpan persis seperti yang dikirim.
func ValidateRegisterInput(username, password, confirmPassword, nickname string) error {
	if username == "" || password == "" || confirmPassword == "" || nickname == "" {
		return errors.New(MsgAllFieldsRequired)
	}
	if password != confirmPassword {
		return errors.New(MsgPasswordMismatch)
	}
	return nil
}

// ValidateLoginInput memeriksa kelengkapan form login.
func ValidateLoginInput(username, password string) error {
	if username == "" || password == "" {
		return errors.New(MsgCredentialsRequired)
	}
	return nil
}
