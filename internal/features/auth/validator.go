package auth

import (
	apperrors "github.com/xyz-asif/tasklists/pkg/errors"

	"github.com/xyz-asif/tasklists/internal/pkg/validator"
)

// ValidateRegister normalizes req in place and reports the first violated constraint
func ValidateRegister(req *RegisterRequest) error {
	req.Username = validator.NormalizeUsername(req.Username)
	req.Email = validator.NormalizeEmail(req.Email)

	if validator.IsBlank(req.Username) {
		return apperrors.New(apperrors.ErrValidation, "Username is required")
	}
	if req.Password == "" {
		return apperrors.New(apperrors.ErrValidation, "Password is required")
	}
	if !validator.IsValidPassword(req.Password) {
		return apperrors.New(apperrors.ErrValidation, "Password must be at least 8 characters")
	}
	if req.Email != "" && !validator.IsValidEmail(req.Email) {
		return apperrors.New(apperrors.ErrValidation, "Email is not valid")
	}
	return nil
}

// ValidateLogin normalizes the username the same way registration does
func ValidateLogin(req *LoginRequest) error {
	req.Username = validator.NormalizeUsername(req.Username)

	if validator.IsBlank(req.Username) {
		return apperrors.New(apperrors.ErrValidation, "Username is required")
	}
	if req.Password == "" {
		return apperrors.New(apperrors.ErrValidation, "Password is required")
	}
	return nil
}
