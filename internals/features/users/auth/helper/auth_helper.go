package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

func ValidateLoginInput(identifier, password string) error {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(password) == "" {
		return errors.New("Identifier dan password wajib diisi")
	}
	return nil
}

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("Nama pengguna wajib diisi")
	}
	if !isValidEmail(email) {
		return errors.New("Format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("Password minimal 8 karakter")
	}
	return nil
}

func ValidateResetPassword(email, newPassword string) error {
	if !isValidEmail(email) {
		return errors.New("Format email tidak valid")
	}
	if len(newPassword) < 8 {
		return errors.New("Password minimal 8 karakter")
	}
	return nil
}
