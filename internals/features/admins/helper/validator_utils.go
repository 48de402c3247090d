// file: internals/features/admins/helper/validator_utils.go
package helper

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateLoginInput(email, password string) error {
	if email == "" || password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}

func ValidateRegisterInput(email, password string) error {
	if email == "" || password == "" {
		return errors.New("Email and password are required")
	}
	if !IsValidEmail(email) {
		return errors.New("Invalid email format")
	}
	if len(password) < 6 {
		return errors.New("Password must be at least 6 characters long")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
