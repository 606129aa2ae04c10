package keyedlru

import (
	"iter"
	"sync"
)

// table maps keys to their recency lists. Lists are created lazily
// on first use of a key and are never removed; concurrent first
// accesses to one key converge on a single list instance.
type table[Key comparable, Value comparable] struct {
	lists sync.Map // Key -> *recencyList[Value]
}

// getOrCreate returns key's list, registering a new one of the
// given capacity if the key was not seen before. A racing caller
// may construct a list that loses the registration race and is
// discarded; all callers still observe the same winning instance.
func (t *table[Key, Value]) getOrCreate(key Key, capacity int) *recencyList[Value] {
	if list, ok := t.lists.Load(key); ok {
		return list.(*recencyList[Value])
	}
	list, _ := t.lists.LoadOrStore(key, newRecencyList[Value](capacity))
	return list.(*recencyList[Value])
}

// lookup is the non-creating counterpart of getOrCreate.
func (t *table[Key, Value]) lookup(key Key) (*recencyList[Value], bool) {
	list, ok := t.lists.Load(key)
	if !ok {
		return nil, false
	}
	return list.(*recencyList[Value]), true
}

func (t *table[Key, Value]) len() int {
	var count int
	t.lists.Range(func(any, any) bool {
		count++
		return true
	})
	return count
}

func (t *table[Key, Value]) keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		t.lists.Range(func(key, _ any) bool {
			return yield(key.(Key))
		})
	}
}
