package models

import "time"

// SharedNote is a grant of read-only access to a note, issued by the note's
// owner to another registered user.
//
// Invariants (enforced by the sharing service and backed by schema
// constraints):
//   - at most one grant per (NoteID, RecipientID) pair;
//   - the recipient is never the note's owner;
//   - a grant never outlives its note — deleting a note removes its grants in
//     the same transaction.
//
// A grant conveys read visibility only. It never transfers ownership and
// never permits mutation or redistribution of the note.
type SharedNote struct {
	// ShareID is the internal unique identifier of the grant.
	ShareID int64 `json:"id"`

	// NoteID identifies the shared note.
	NoteID int64 `json:"note_id"`

	// RecipientID identifies the user the note is shared with.
	RecipientID int64 `json:"recipient_id"`

	// SharedAt is the server-assigned timestamp of the grant.
	SharedAt time.Time `json:"shared_at"`
}

// TableName returns the name of the database table
// associated with the SharedNote model.
func (s SharedNote) TableName() string {
	return "shared_notes"
}
