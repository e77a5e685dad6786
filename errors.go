package optlock

import "errors"

var (
	// ErrUnavailable is returned when a lock attempt fails because another
	// guard is currently held.
	ErrUnavailable = errors.New("optlock: lock unavailable")

	// ErrPoisoned is returned when a Mutex no longer holds a value because
	// it was removed with Extract.
	ErrPoisoned = errors.New("optlock: mutex value was extracted")
)
