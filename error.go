package keyedlru

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrNilValue may be returned from [Cache.Add]
	// when the cache's value type admits nil.
	ErrNilValue = constError("nil value")
	// ErrNoValues may be returned from [Cache.Use].
	ErrNoValues = constError("no values")
	// ErrNotFound may be returned from [Cache.Use];
	// it wraps both unknown keys and untracked values.
	ErrNotFound = constError("not found")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func nilValueError(key any) error {
	return fmt.Errorf(
		"%w: cannot be added for key %v",
		ErrNilValue, key)
}

func unknownKeyError(key any) error {
	return fmt.Errorf(
		"%w: no entries have been added for key %v",
		ErrNotFound, key)
}

func missingValueError(key, value any) error {
	return fmt.Errorf(
		"%w: value %v is not tracked for key %v",
		ErrNotFound, value, key)
}
