package auth

import "github.com/heartmarshall/legends-backend/internal/validate"

// RegisterInput holds parameters for the register operation.
// bcrypt ignores bytes past 72, hence the upper bound.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	return validate.Struct(i)
}

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	return validate.Struct(i)
}
