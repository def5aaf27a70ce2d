package domain

import "errors"

var (
	// ErrAlreadyPlayed is returned when a user submits a second answer for
	// the same day key. Recoverable: callers surface the stored answer.
	ErrAlreadyPlayed = errors.New("already played today")
	// ErrInvalidAnswerIndex is returned for an answer index outside the
	// options of today's question. No state is mutated.
	ErrInvalidAnswerIndex = errors.New("answer index out of range")
	// ErrEmptyCatalog indicates the question catalog has no entries. Fatal
	// at startup; the process must not serve traffic.
	ErrEmptyCatalog = errors.New("question catalog is empty")
	// ErrCatalogNotFound indicates catalog content could not be loaded.
	ErrCatalogNotFound = errors.New("question catalog not found")
	// ErrUserNotFound is returned by stores for a fid with no record.
	ErrUserNotFound = errors.New("user record not found")
)
