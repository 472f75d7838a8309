package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username or email already exists.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note lookup, update, or delete
	// matches no row. Repositories that filter by owner return it both for a
	// nonexistent note and for a note owned by someone else, so callers
	// cannot distinguish the two cases.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrDuplicateShare is returned when inserting a share grant violates the
	// (note_id, recipient_id) uniqueness constraint: the note is already
	// shared with that recipient.
	ErrDuplicateShare = errors.New("note is already shared with this user")

	// ErrShareNotFound is returned when no grant exists for the requested
	// (note_id, recipient_id) pair.
	ErrShareNotFound = errors.New("share was not found")

	// ErrNoSessionFound is returned by the client session store when no
	// persisted session exists.
	ErrNoSessionFound = errors.New("no session found")

	// ErrStoreUnavailable is returned (wrapped around the driver error) when
	// a database operation fails for a transient reason such as a lost
	// connection or a serialization failure. The service layer surfaces it as
	// a generic server-side failure; retrying is left to the caller.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
