package hashtable

import "github.com/pkg/errors"

// Errors returned by HashTable operations. Returned errors may wrap these
// with the offending key; test for them with errors.Is.
var (
	// ErrNullKey is returned by Put when the key is nil.
	ErrNullKey = errors.New("key cannot be nil")
	// ErrDuplicateKey is returned by Put when the key is already mapped.
	ErrDuplicateKey = errors.New("key is already in table")
	// ErrKeyNotFound is returned by Get and Remove when the key is nil or
	// not mapped.
	ErrKeyNotFound = errors.New("key is not in table")
	// ErrInvalidArgument is returned by NewWithCapacity for a non-positive
	// capacity.
	ErrInvalidArgument = errors.New("invalid argument")
)
