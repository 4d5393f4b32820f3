// Package dict offers functional helpers over Go maps.
//
// dict is the keyed container family: entries are addressed by key. Find,
// Any and FoldLeft follow whatever order the runtime iterates; Take and
// Skip walk ascending key order so the two halves line up. Callers that
// need any other ordering must convert to a slice and use package seq.
package dict

import (
	"cmp"
	"slices"

	"github.com/gustavodias/fnkit/option"
)

// Entry pairs a key with its value.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Map transforms every value using fn, which also receives the key. The
// result has exactly the input's keys.
func Map[K comparable, A any, B any](in map[K]A, fn func(A, K) B) map[K]B {
	out := make(map[K]B, len(in))
	for k, v := range in {
		out[k] = fn(v, k)
	}
	return out
}

// Filter keeps entries satisfying predicate. Kept entries retain their keys;
// nothing is re-indexed.
func Filter[K comparable, V any](in map[K]V, predicate func(V, K) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range in {
		if predicate(v, k) {
			out[k] = v
		}
	}
	return out
}

// Reject drops entries satisfying predicate; the complement of Filter. Filter
// and Reject with the same predicate partition the input by key.
func Reject[K comparable, V any](in map[K]V, predicate func(V, K) bool) map[K]V {
	return Filter(in, func(v V, k K) bool { return !predicate(v, k) })
}

// Find returns the first value satisfying predicate in iteration order,
// short-circuiting the scan. Which match is "first" is unspecified when more
// than one entry satisfies predicate.
func Find[K comparable, V any](in map[K]V, predicate func(V, K) bool) option.Option[V] {
	for k, v := range in {
		if predicate(v, k) {
			return option.Some(v)
		}
	}
	return option.None[V]()
}

// FoldLeft reduces values in iteration order. Use an order-insensitive
// accumulator (sums, sets, unions) unless the caller controls ordering.
func FoldLeft[K comparable, V any, B any](in map[K]V, init B, fn func(B, V) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// sortedKeys collects the map's keys in ascending order. Take and Skip share
// this traversal; a raw range loop is randomized per loop, so two independent
// ranges would hand out overlapping halves.
func sortedKeys[K cmp.Ordered, V any](in map[K]V) []K {
	keys := make([]K, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Take returns the first n entries in ascending key order. Take and Skip for
// the same n walk the same sorted traversal, so together they partition the
// map by key.
func Take[K cmp.Ordered, V any](in map[K]V, n int) map[K]V {
	out := make(map[K]V)
	if n <= 0 {
		return out
	}
	keys := sortedKeys(in)
	if n > len(keys) {
		n = len(keys)
	}
	for _, k := range keys[:n] {
		out[k] = in[k]
	}
	return out
}

// Skip drops the first n entries in ascending key order and returns the
// complementary remainder of Take for the same n.
func Skip[K cmp.Ordered, V any](in map[K]V, n int) map[K]V {
	out := make(map[K]V)
	if n < 0 {
		n = 0
	}
	keys := sortedKeys(in)
	if n >= len(keys) {
		return out
	}
	for _, k := range keys[n:] {
		out[k] = in[k]
	}
	return out
}

// Any scans for an entry satisfying predicate and returns both the value and
// its key; None when nothing matches.
func Any[K comparable, V any](in map[K]V, predicate func(V, K) bool) option.Option[Entry[K, V]] {
	for k, v := range in {
		if predicate(v, k) {
			return option.Some(Entry[K, V]{Key: k, Value: v})
		}
	}
	return option.None[Entry[K, V]]()
}

// ForEach runs fn on every entry for its side effects and returns the input
// unchanged, so effectful stages can sit inside a pipeline.
func ForEach[K comparable, V any](in map[K]V, fn func(V, K)) map[K]V {
	for k, v := range in {
		fn(v, k)
	}
	return in
}

// Keys collects the map's keys in unspecified order.
func Keys[K comparable, V any](in map[K]V) []K {
	out := make([]K, 0, len(in))
	for k := range in {
		out = append(out, k)
	}
	return out
}

// Values collects the map's values in unspecified order.
func Values[K comparable, V any](in map[K]V) []V {
	out := make([]V, 0, len(in))
	for _, v := range in {
		out = append(out, v)
	}
	return out
}

// Entries collects key/value pairs in unspecified order.
func Entries[K comparable, V any](in map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(in))
	for k, v := range in {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

// FromEntries builds a map from pairs; later pairs win on duplicate keys.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// Union merges a and b into a new map containing every key from both, with
// b's value winning on conflict. Inputs are never mutated. This is the
// full-union merge policy; for the allow-list policy that only overwrites
// keys already present in the target, see record.Assign.
func Union[K comparable, V any](a, b map[K]V) map[K]V {
	out := make(map[K]V, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
