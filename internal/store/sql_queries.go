package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/vmelnikv/noteshare/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createNote = `INSERT INTO notes (user_id, title, content)
    VALUES ($1, $2, $3)
    RETURNING note_id, user_id, title, content, created_at;`

	getNote = `SELECT note_id, user_id, title, content, created_at
    FROM notes
    WHERE note_id = $1;`

	getNoteOwned = `SELECT note_id, user_id, title, content, created_at
    FROM notes
    WHERE note_id = $1 AND user_id = $2;`

	deleteNoteShares = `DELETE FROM shared_notes
    WHERE note_id = $1;`

	deleteNote = `DELETE FROM notes
    WHERE note_id = $1 AND user_id = $2;`

	createShare = `INSERT INTO shared_notes (note_id, recipient_id)
    VALUES ($1, $2)
    RETURNING share_id, note_id, recipient_id, shared_at;`

	getShare = `SELECT share_id, note_id, recipient_id, shared_at
    FROM shared_notes
    WHERE note_id = $1 AND recipient_id = $2;`
)

// psql is the statement builder configured for PostgreSQL-style positional
// placeholders. Used for the queries whose shape depends on the request
// (dynamic partial updates, paginated listings).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateNoteQuery builds an UPDATE statement applying only the fields
// named by update. The WHERE clause pins both the note ID and the owner, so
// a non-owner can never match a row. Callers must reject an empty update
// before calling; with no SET clauses squirrel returns an error.
func buildUpdateNoteQuery(noteID, ownerID int64, update models.NoteUpdate) (string, []any, error) {
	builder := psql.Update("notes")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.
		Where(sq.Eq{"note_id": noteID, "user_id": ownerID}).
		Suffix("RETURNING note_id, user_id, title, content, created_at").
		ToSql()
}

// buildListOwnedQuery builds the paginated listing of notes owned by ownerID,
// newest first.
func buildListOwnedQuery(ownerID int64, limit, offset uint64) (string, []any, error) {
	return psql.
		Select("note_id", "user_id", "title", "content", "created_at").
		From("notes").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildListSharedQuery builds the paginated listing of notes shared with
// recipientID, ordered by the underlying note's creation time, newest first.
func buildListSharedQuery(recipientID int64, limit, offset uint64) (string, []any, error) {
	return psql.
		Select("n.note_id", "n.user_id", "n.title", "n.content", "n.created_at").
		From("notes n").
		Join("shared_notes s ON s.note_id = n.note_id").
		Where(sq.Eq{"s.recipient_id": recipientID}).
		OrderBy("n.created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

// buildCountOwnedQuery counts all notes owned by ownerID.
func buildCountOwnedQuery(ownerID int64) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("notes").
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

// buildCountSharedQuery counts all notes shared with recipientID.
func buildCountSharedQuery(recipientID int64) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From("shared_notes").
		Where(sq.Eq{"recipient_id": recipientID}).
		ToSql()
}
