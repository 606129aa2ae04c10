// Package keyedlru implements a [Cache] of per-key bounded recency lists.
//
// Unlike a single global LRU ring, the cache partitions storage by key:
// every key owns a small list of distinct values ordered by recency of
// use, and filling a key's list past its capacity evicts that list's
// least recently used value. This serves callers who want a per-key
// "working set" (e.g. the most recently used variants or results of a
// logical key) rather than one shared eviction domain.
//
// Glossary and invariants:
//
//   - Entry wraps one value and links it into its list's recency order.
//
//   - Front
//
//     The most recently used entry of a list.
//
//   - Back
//
//     The least recently used entry of a list; the next eviction candidate.
//
//   - Capacity
//
//     Fixed at construction, shared by every list; a list's size never
//     exceeds it.
//
//   - Uniqueness
//
//     No two entries of one list hold equal values. Values are compared
//     by equality, not identity, so value types must keep stable
//     equality behavior for as long as they reside in the cache.
//
//   - Key persistence
//
//     A list, once created for a key, lives until the cache is
//     discarded; empty or idle lists are never reaped.
//
// Operations:
//
//   - Add
//
//     Inserts a new value at the front, evicting the back first when
//     the list is full. Re-adding a tracked value is a no-op and does
//     not promote it.
//
//   - Use
//
//     Promotes existing values to the front; the argument order becomes
//     the list's leading order. Promotion never creates or evicts
//     entries.
//
//   - Get
//
//     Snapshots a list front to back without mutating it.
//
// Concurrency:
//
// Each list is guarded by a single exclusive lock covering every
// operation on it, snapshots included; lists of different keys share
// nothing and proceed in parallel. The key table resolves concurrent
// first accesses of one key to a single list instance.
package keyedlru
