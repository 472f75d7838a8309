package store

// SQLite schema for the local client cache. Applied on every startup; all
// statements are idempotent.
const clientSchema = `
	CREATE TABLE IF NOT EXISTS cached_notes (
		note_id    INTEGER NOT NULL,
		user_id    INTEGER NOT NULL,
		origin     TEXT    NOT NULL,
		title      TEXT    NOT NULL,
		content    TEXT    NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, origin, note_id)
	);

	CREATE TABLE IF NOT EXISTS session (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		user_id    INTEGER NOT NULL,
		username   TEXT    NOT NULL,
		token      TEXT    NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`

const (
	deleteCachedNotes = `
		DELETE FROM cached_notes
		WHERE user_id = $1 AND origin = $2;`

	insertCachedNote = `
		INSERT INTO cached_notes (note_id, user_id, origin, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	listCachedNotes = `
		SELECT note_id, user_id, title, content, created_at
		FROM cached_notes
		WHERE user_id = $1 AND origin = $2
		ORDER BY created_at DESC;`

	getCachedNote = `
		SELECT note_id, user_id, title, content, created_at
		FROM cached_notes
		WHERE user_id = $1 AND note_id = $2;`

	saveSession = `
		INSERT INTO session (id, user_id, username, token, created_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			user_id    = excluded.user_id,
			username   = excluded.username,
			token      = excluded.token,
			created_at = excluded.created_at;`

	getSession = `
		SELECT user_id, username, token, created_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)
