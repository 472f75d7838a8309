package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/vmelnikv/noteshare/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// UserValidator validates credential payloads. Without field scoping it
// checks the login shape (username and password); registration additionally
// passes [FieldEmail] to require a well-formed e-mail address.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User

	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if err := v.validateCredentials(user); err != nil {
		return err
	}

	for _, field := range fields {
		switch field {
		case FieldUsername, FieldPassword:
			// Covered by the credential check.
		case FieldEmail:
			if err := v.validateEmail(user.Email); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateCredentials(user models.User) error {
	if strings.TrimSpace(user.Username) == "" {
		return ErrEmptyUsername
	}
	if user.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *UserValidator) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
