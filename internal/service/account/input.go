package account

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

const (
	minPasswordLen  = 8
	maxPasswordLen  = 72 // bcrypt input limit
	passwordSpecial = "@$!%*?&#"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case !emailRe.MatchString(email):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	return errs
}

// validatePassword applies the settings password policy.
func validatePassword(errs []domain.FieldError, password string) []domain.FieldError {
	if password == "" {
		return append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must contain at least one lowercase letter"})
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must contain at least one uppercase letter"})
	}
	if !strings.ContainsAny(password, "0123456789") {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must contain at least one number"})
	}
	if !strings.ContainsAny(password, passwordSpecial) {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must contain at least one special character"})
	}
	return errs
}

func result(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds parameters for adding a credential.
type CreateInput struct {
	Name     string
	Email    string
	Password string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, i.Password)
	return result(errs)
}

// SettingsInput holds the settings form: the credential's new email and
// password. A zero ID targets the first stored credential.
type SettingsInput struct {
	ID       domain.ID
	Email    string
	Password string
}

// Validate validates the settings input.
func (i SettingsInput) Validate() error {
	var errs []domain.FieldError
	errs = validateEmail(errs, i.Email)
	errs = validatePassword(errs, i.Password)
	return result(errs)
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	return result(errs)
}
