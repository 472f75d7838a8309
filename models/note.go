package models

import "time"

// Note is a personal note owned by exactly one user.
//
// The owner is assigned by the server from the authenticated request identity
// at creation time and is immutable afterwards. Client-supplied owner values
// are never honoured — UserID is excluded from JSON precisely so that it can
// only be populated server-side.
type Note struct {
	// NoteID is the internal unique identifier of the note.
	NoteID int64 `json:"id"`

	// UserID is the identifier of the owning user.
	// Not serialised: ownership is derived from the request context, never
	// from the request body.
	UserID int64 `json:"-"`

	// Title is the note title. Required, non-empty.
	Title string `json:"title"`

	// Content is the note body. Required, non-empty.
	Content string `json:"content"`

	// CreatedAt is the server-assigned creation timestamp. Owned and shared
	// note listings are ordered by this field, newest first.
	CreatedAt time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteInput is the request body for creating a note or fully replacing one
// (PUT). Both fields are required.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteUpdate is an explicit partial-update structure for PATCH requests.
// Pointer fields act as presence flags: a nil field is left unchanged, a
// non-nil field replaces the stored value. Arbitrary extra JSON keys are
// ignored by decoding into this fixed shape, so untrusted input can never
// reach columns it does not name (in particular the owner column).
type NoteUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the update names no fields at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
