package keyedlru

import (
	"iter"
	"reflect"
)

// Cache partitions storage by key: each key owns a bounded list of
// distinct values ordered by recency of use, and adding to a full
// list evicts its least recently used value.
// All methods are safe for concurrent use; operations on one key
// serialize against each other while operations on different keys
// proceed in parallel.
// Constructed by [New].
type Cache[Key comparable, Value comparable] struct {
	table    table[Key, Value]
	capacity int
}

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Cache] whose per-key lists each hold
// up to capacity distinct values.
// Capacity must be at least [MinimumCapacity].
func New[Key comparable, Value comparable](capacity int) (*Cache[Key, Value], error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Cache[Key, Value]{capacity: capacity}, nil
}

// Add records value as the most recently used entry of key's list,
// creating the list on first use of key. If the list is full, its
// least recently used entry is evicted to make room. Adding a value
// the list already tracks is a no-op and does not change its
// recency position; use [Cache.Use] to promote an existing value.
func (c *Cache[Key, Value]) Add(key Key, value Value) error {
	if isNil(value) {
		return nilValueError(key)
	}
	c.table.getOrCreate(key, c.capacity).insert(value)
	return nil
}

// Get returns key's values ordered from most to least recently
// used, or false if nothing was ever added for key. The returned
// slice is a snapshot; later operations do not modify it.
func (c *Cache[Key, Value]) Get(key Key) ([]Value, bool) {
	list, ok := c.table.lookup(key)
	if !ok {
		return nil, false
	}
	return list.snapshot(), true
}

// Use marks the given values of key's list as used, in order:
// afterwards the list begins with the given values, first argument
// most recently used, with the remaining entries following in their
// previous relative order.
// All values must already be tracked for key. If one is not, Use
// returns an error wrapping [ErrNotFound] naming it; values after
// it in the argument list (which are processed first) remain
// promoted, i.e. a failed Use is not rolled back.
func (c *Cache[Key, Value]) Use(key Key, values ...Value) error {
	if len(values) == 0 {
		return ErrNoValues
	}
	list, ok := c.table.lookup(key)
	if !ok {
		return unknownKeyError(key)
	}
	if missing, ok := list.promoteAll(values); !ok {
		return missingValueError(key, missing)
	}
	return nil
}

// Contains reports whether value is tracked in key's list,
// without affecting its recency position.
func (c *Cache[Key, Value]) Contains(key Key, value Value) bool {
	list, ok := c.table.lookup(key)
	return ok && list.contains(value)
}

// Size returns the number of values currently tracked for key;
// zero if nothing was ever added for key.
func (c *Cache[Key, Value]) Size(key Key) int {
	list, ok := c.table.lookup(key)
	if !ok {
		return 0
	}
	return list.len()
}

// Len returns the number of keys with a list in the cache.
func (c *Cache[Key, _]) Len() int {
	return c.table.len()
}

// Keys returns an iterator over the (unordered) keys of the cache.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return c.table.keys()
}

// isNil reports whether value is nil for value types that admit it.
// Most comparable types do not; pointers and channels do, and an
// interface-typed Value may be nil itself or wrap a nil.
func isNil[Value comparable](value Value) bool {
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer,
		reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
