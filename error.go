package kvfifo

import "fmt"

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// ContainerEmpty is returned by operations that require at least one entry.
	ContainerEmpty
	// KeyNotFound is returned by keyed operations when the key has no live entries.
	KeyNotFound
	// CopyFailure is returned when a caller-supplied key or value copier fails
	// during push or while forking shared state.
	CopyFailure
)

// kvfifo custom error.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Errorf("error code: %d, user data: %v, details: %w", e.Code, e.UserData, e.Err).Error()
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e Error) Unwrap() error {
	return e.Err
}
