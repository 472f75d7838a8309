package models

import "time"

// EventKind identifies the type of a domain event emitted by the service
// layer after a successful state change.
type EventKind string

const (
	// EventNoteCreated is emitted once per successfully created note.
	EventNoteCreated EventKind = "note_created"

	// EventNoteShared is emitted once per successfully created share grant.
	EventNoteShared EventKind = "note_shared"
)

// NoteEvent is a fire-and-forget notification about a note state change.
//
// Events are emitted after the persistence write has committed and carry no
// delivery guarantee: sinks log them, count them, or forward them, but a sink
// failure never surfaces to the operation that produced the event.
type NoteEvent struct {
	Kind EventKind `json:"kind"`

	NoteID  int64 `json:"note_id"`
	OwnerID int64 `json:"owner_id"`

	// RecipientID is set only for EventNoteShared.
	RecipientID int64 `json:"recipient_id,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}
