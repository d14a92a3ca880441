package enumerable

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned for a missing required callback or a malformed parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptySequence is returned when First or Last finds no element.
	ErrEmptySequence = errors.New("sequence contains no elements")
	// ErrIndexOutOfRange is returned by ElementAt beyond the sequence bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyNotFound is returned by Dictionary.Get on a miss.
	ErrKeyNotFound = errors.New("key not found")
	// ErrDuplicateKey is returned by ToDictionary on a key collision.
	ErrDuplicateKey = errors.New("duplicate key")
)

func missingArgument(op, arg string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s is required", op, arg)
}
