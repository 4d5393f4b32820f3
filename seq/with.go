package seq

import "github.com/gustavodias/fnkit/option"

// Pipeable builders. Each two-argument operation op(slice, fn) has a With
// form that captures fn and waits for the slice, so stages compose with
// fp.Pipe: fp.Pipe2(seq.MapWith(f), seq.FilterWith(g)). Capturing arguments
// never executes the operation; execution happens only when the slice arrives.

// MapWith returns Map with fn captured.
func MapWith[A any, B any](fn func(A) B) func([]A) []B {
	return func(in []A) []B {
		return Map(in, fn)
	}
}

// FilterWith returns Filter with predicate captured.
func FilterWith[T any](predicate func(T) bool) func([]T) []T {
	return func(in []T) []T {
		return Filter(in, predicate)
	}
}

// RejectWith returns Reject with predicate captured.
func RejectWith[T any](predicate func(T) bool) func([]T) []T {
	return func(in []T) []T {
		return Reject(in, predicate)
	}
}

// FindWith returns Find with predicate captured.
func FindWith[T any](predicate func(T) bool) func([]T) option.Option[T] {
	return func(in []T) option.Option[T] {
		return Find(in, predicate)
	}
}

// FoldWith returns FoldLeft with the seed and accumulator captured.
func FoldWith[A any, B any](init B, fn func(B, A) B) func([]A) B {
	return func(in []A) B {
		return FoldLeft(in, init, fn)
	}
}

// TakeWith returns Take with n captured.
func TakeWith[T any](n int) func([]T) []T {
	return func(in []T) []T {
		return Take(in, n)
	}
}

// SkipWith returns Skip with n captured.
func SkipWith[T any](n int) func([]T) []T {
	return func(in []T) []T {
		return Skip(in, n)
	}
}

// ForEachWith returns ForEach with fn captured; the stage passes its input
// through unchanged.
func ForEachWith[T any](fn func(T)) func([]T) []T {
	return func(in []T) []T {
		return ForEach(in, fn)
	}
}
