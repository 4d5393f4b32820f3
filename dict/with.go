package dict

// Pipeable builders, mirroring seq's With family: capture the function now,
// receive the map later. Capturing never executes the operation.

// MapWith returns Map with fn captured.
func MapWith[K comparable, A any, B any](fn func(A, K) B) func(map[K]A) map[K]B {
	return func(in map[K]A) map[K]B {
		return Map(in, fn)
	}
}

// FilterWith returns Filter with predicate captured.
func FilterWith[K comparable, V any](predicate func(V, K) bool) func(map[K]V) map[K]V {
	return func(in map[K]V) map[K]V {
		return Filter(in, predicate)
	}
}

// RejectWith returns Reject with predicate captured.
func RejectWith[K comparable, V any](predicate func(V, K) bool) func(map[K]V) map[K]V {
	return func(in map[K]V) map[K]V {
		return Reject(in, predicate)
	}
}

// FoldWith returns FoldLeft with the seed and accumulator captured.
func FoldWith[K comparable, V any, B any](init B, fn func(B, V) B) func(map[K]V) B {
	return func(in map[K]V) B {
		return FoldLeft(in, init, fn)
	}
}
