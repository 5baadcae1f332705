package store

import "errors"

// Sentinel errors returned by collection stores and repositories. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrVersionConflict is returned when an optimistic-concurrency check
	// fails: the version supplied with a Put does not match the version
	// currently stored, meaning another writer has replaced the collection
	// since it was read. The stored collection is left unchanged.
	ErrVersionConflict = errors.New("collection version conflict occurred")

	// ErrUnknownBackend is returned by the store factory when the
	// configured backend name matches no implementation.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL-backed collection store when a statement fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan collection row")
)
