package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
