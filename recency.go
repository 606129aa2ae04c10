package keyedlru

import (
	"sync"

	"github.com/djdv/go-keyedlru/internal/ring"
)

type (
	entry[Value comparable] = ring.Ring[Value]
	// recencyList is the bounded, duplicate-free collection
	// of one key's values, ordered front (most recently used)
	// to back (least recently used, next eviction candidate).
	//
	// Every operation holds mu for its full duration; the ring
	// and index must only be touched under it. Snapshots take the
	// same exclusive lock, there is no reader/writer split.
	recencyList[Value comparable] struct {
		mu       sync.Mutex
		index    map[Value]*entry[Value]
		front    *entry[Value]
		capacity int
		size     int
	}
)

// newRecencyList assumes capacity was validated by [New].
func newRecencyList[Value comparable](capacity int) *recencyList[Value] {
	return &recencyList[Value]{
		index:    make(map[Value]*entry[Value], capacity),
		capacity: capacity,
	}
}

// insert adds value as the most recently used entry,
// evicting the least recently used entry if the list is full.
// Inserting a value that is already tracked is a no-op;
// in particular it does not promote the existing entry.
func (l *recencyList[Value]) insert(value Value) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, tracked := l.index[value]; tracked {
		return
	}
	if l.size == l.capacity {
		l.evictBack()
	}
	l.pushFront(&entry[Value]{Value: value})
	if debugging {
		l.checkInvariants()
	}
}

// evictBack unlinks and forgets the least recently used entry.
// Caller must hold mu and guarantee size > 0.
func (l *recencyList[Value]) evictBack() {
	back := l.front.Prev()
	delete(l.index, back.Value)
	if back == l.front {
		l.front = nil
	} else {
		back.Prev().Unlink(1)
	}
	l.size--
}

// pushFront links a brand new entry as the most recently used.
// Caller must hold mu; entry.Value must not already be tracked.
func (l *recencyList[Value]) pushFront(entry *entry[Value]) {
	if l.front != nil {
		l.front.Prev().Link(entry)
	}
	l.front = entry
	l.index[entry.Value] = entry
	l.size++
}

// promoteAll repositions the given values at the front such that
// the final front-to-back order matches the input order.
// Values are processed back to front; on the first value with no
// entry it stops and reports that value, leaving promotions already
// performed in place (no rollback).
func (l *recencyList[Value]) promoteAll(values []Value) (Value, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(values) - 1; i >= 0; i-- {
		if value := values[i]; !l.promote(value) {
			return value, false
		}
	}
	if debugging {
		l.checkInvariants()
	}
	var zero Value
	return zero, true
}

// promote relinks the entry for value (if tracked) at the front.
// Caller must hold mu.
func (l *recencyList[Value]) promote(value Value) bool {
	entry, tracked := l.index[value]
	if !tracked {
		return false
	}
	if entry == l.front {
		return true
	}
	entry.Prev().Unlink(1)
	l.front.Prev().Link(entry)
	l.front = entry
	return true
}

// snapshot copies the current values front to back.
// Its length equals the list's size, which may be below capacity.
func (l *recencyList[Value]) snapshot() []Value {
	l.mu.Lock()
	defer l.mu.Unlock()
	values := make([]Value, 0, l.size)
	l.front.Do(func(value Value) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (l *recencyList[Value]) contains(value Value) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, tracked := l.index[value]
	return tracked
}

func (l *recencyList[Value]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// checkInvariants panics if the list's structure disagrees with
// its bookkeeping. Caller must hold mu.
func (l *recencyList[Value]) checkInvariants() {
	assert(l.size <= l.capacity,
		"size exceeds capacity")
	assert(l.size == len(l.index),
		"size disagrees with membership index")
	assert(l.size == l.front.Len(),
		"size disagrees with ring length")
	for entry := range l.front.Iter() {
		assert(l.index[entry.Value] == entry,
			"ring entry missing from membership index")
	}
}
