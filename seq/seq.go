// Package seq offers eager and lazy functional helpers for Go slices.
//
// seq is the order-preserving container family: positions are stable, so
// Take/Skip and index-aware operations behave predictably. When iteration
// order is irrelevant and data is keyed, use package dict instead.
package seq

import "github.com/gustavodias/fnkit/option"

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// MapIndexed is Map with the element position passed to fn.
func MapIndexed[A any, B any](in []A, fn func(A, int) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v, i)
	}
	return out
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input to preserve immutability.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reject drops values satisfying predicate; the complement of Filter. Filter
// and Reject with the same predicate partition the input.
func Reject[T any](in []T, predicate func(T) bool) []T {
	return Filter(in, func(v T) bool { return !predicate(v) })
}

// FilterIndexed is Filter with the element position passed to predicate.
func FilterIndexed[T any](in []T, predicate func(T, int) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	result := make([]T, 0, len(in))
	for i, v := range in {
		if predicate(v, i) {
			result = append(result, v)
		}
	}
	return result
}

// Find returns the first element satisfying predicate, short-circuiting the
// scan. None means no match; a matching zero value still comes back as Some.
func Find[T any](in []T, predicate func(T) bool) option.Option[T] {
	for _, v := range in {
		if predicate(v) {
			return option.Some(v)
		}
	}
	return option.None[T]()
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce folds elements pairwise using the first element as the seed,
// returning None when the slice is empty.
func Reduce[T any](in []T, fn func(T, T) T) option.Option[T] {
	if len(in) == 0 {
		return option.None[T]()
	}
	acc := in[0]
	for i := 1; i < len(in); i++ {
		acc = fn(acc, in[i])
	}
	return option.Some(acc)
}

// Take returns the first n elements as a fresh slice. n past the end returns
// the whole input; n <= 0 returns an empty slice. For every n,
// append(Take(s, n), Skip(s, n)...) reconstructs s.
func Take[T any](in []T, n int) []T {
	if n <= 0 || len(in) == 0 {
		return []T{}
	}
	if n > len(in) {
		n = len(in)
	}
	out := make([]T, n)
	copy(out, in[:n])
	return out
}

// Skip drops the first n elements and returns the remainder as a fresh slice.
func Skip[T any](in []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n >= len(in) {
		return []T{}
	}
	out := make([]T, len(in)-n)
	copy(out, in[n:])
	return out
}

// Match carries a found value together with its position.
type Match[T any] struct {
	Value T
	Index int
}

// Any scans for the first element satisfying predicate and returns both the
// value and its position; None when nothing matches.
func Any[T any](in []T, predicate func(T) bool) option.Option[Match[T]] {
	for i, v := range in {
		if predicate(v) {
			return option.Some(Match[T]{Value: v, Index: i})
		}
	}
	return option.None[Match[T]]()
}

// All reports whether all elements satisfy predicate.
func All[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Contains reports whether the slice holds v.
func Contains[T comparable](in []T, v T) bool {
	for _, e := range in {
		if e == v {
			return true
		}
	}
	return false
}

// ForEach runs fn on every element for its side effects and returns the input
// unchanged, so effectful stages can sit inside a pipeline.
func ForEach[T any](in []T, fn func(T)) []T {
	for _, v := range in {
		fn(v)
	}
	return in
}

// Compact keeps only non-zero values, re-indexed by survivor order. This is a
// LOSSY filter: legitimate zero payloads (0, false, "") are discarded along
// with absent values. Callers that must keep zeros should filter on an
// explicit predicate instead.
func Compact[T comparable](in []T) []T {
	var zero T
	return Filter(in, func(v T) bool { return v != zero })
}

// FlatMap applies fn to each element and concatenates the resulting slices.
func FlatMap[A any, B any](in []A, fn func(A) []B) []B {
	if len(in) == 0 {
		return []B{}
	}
	var out []B
	for _, v := range in {
		chunk := fn(v)
		if len(chunk) == 0 {
			continue
		}
		out = append(out, chunk...)
	}
	if out == nil {
		return []B{}
	}
	return out
}

// GroupBy groups elements by the key returned from keySelector.
func GroupBy[T any, K comparable](in []T, keySelector func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range in {
		key := keySelector(v)
		groups[key] = append(groups[key], v)
	}
	return groups
}

// DistinctBy removes duplicates determined by keySelector, preserving order.
func DistinctBy[T any, K comparable](in []T, keySelector func(T) K) []T {
	if len(in) == 0 {
		return []T{}
	}
	seen := make(map[K]struct{}, len(in))
	result := make([]T, 0, len(in))
	for _, v := range in {
		key := keySelector(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Partition splits the slice into two slices based on predicate outcome.
func Partition[T any](in []T, predicate func(T) bool) ([]T, []T) {
	if len(in) == 0 {
		return []T{}, []T{}
	}
	matches := make([]T, 0, len(in))
	rest := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest
}

// Zip combines two slices into a slice of pairs up to the shortest length.
func Zip[A any, B any](a []A, b []B) []Pair[A, B] {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	result := make([]Pair[A, B], limit)
	for i := 0; i < limit; i++ {
		result[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return result
}

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}
