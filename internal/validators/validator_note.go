package validators

import (
	"context"
	"strings"

	"github.com/vmelnikv/noteshare/models"
)

const (
	FieldTitle   = "title"
	FieldContent = "content"
)

// NoteValidator validates note payloads: [models.NoteInput] for create and
// full replace, [models.NoteUpdate] for partial updates. An update must name
// at least one field, and a named field must not be blank.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput:
		return v.validateInput(value)
	case *models.NoteInput:
		return v.validateInput(*value)

	case models.NoteUpdate:
		return v.validateUpdate(value)
	case *models.NoteUpdate:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateInput(input models.NoteInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(input.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

func (v *NoteValidator) validateUpdate(update models.NoteUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return ErrEmptyTitle
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}
