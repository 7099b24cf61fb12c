package validation

import (
	"errors"
	"regexp"

	"github.com/YeMinHein/App-Management/internal/models"
)

var (
	ErrTitleRequired      = errors.New("app title is required")
	ErrTitleTooLong       = errors.New("app title must be at most 200 characters")
	ErrEnvRequired        = errors.New("app environment is required")
	ErrInvalidEnvironment = errors.New("invalid environment, must be development, staging, or production")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email format is invalid")
	ErrPasswordRequired   = errors.New("password is required")
	ErrNameRequired       = errors.New("name is required")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var validEnvironments = map[string]bool{
	models.EnvDevelopment: true,
	models.EnvStaging:     true,
	models.EnvProduction:  true,
}

func ValidateEnvironment(env string) error {
	if env == "" {
		return ErrEnvRequired
	}
	if !validEnvironments[env] {
		return ErrInvalidEnvironment
	}
	return nil
}

func ValidateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return nil
}
