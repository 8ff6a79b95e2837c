package items

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the read or mutate target does not exist.
	ErrNotFound = errors.New("item not found")
	// ErrForbidden means the store rejected a mutation despite the local
	// guard passing, or the session token was not accepted.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError is a local, pre-network failure. The request never left
// the process; the user corrects input and retries.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FetchError is a network, remote, or decode failure on the read path.
// It is non-fatal; prior results remain usable.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetch reports whether err is a fetch failure.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

func fetchErr(err error, message string) error {
	return &FetchError{Message: message, Err: err}
}
