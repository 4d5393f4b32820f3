package fp

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	curried := Curry(add)
//	addFive := curried(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Curry3 converts a ternary function into its curried form.
func Curry3[A any, B any, C any, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return fn(a, b, c)
			}
		}
	}
}

// Partial fixes the first argument of a binary function, returning a function
// of the remaining one. Partial(fn, a)(b) == fn(a, b).
func Partial[A any, B any, C any](fn func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return fn(a, b)
	}
}

// PartialRight fixes the last argument of a binary function.
// PartialRight(fn, b)(a) == fn(a, b).
func PartialRight[A any, B any, C any](fn func(A, B) C, b B) func(A) C {
	return func(a A) C {
		return fn(a, b)
	}
}

// Partial3 fixes the first argument of a ternary function, returning a
// function of the remaining two in order.
func Partial3[A any, B any, C any, D any](fn func(A, B, C) D, a A) func(B, C) D {
	return func(b B, c C) D {
		return fn(a, b, c)
	}
}

// PartialRight3 fixes the last argument of a ternary function.
func PartialRight3[A any, B any, C any, D any](fn func(A, B, C) D, c C) func(A, B) D {
	return func(a A, b B) D {
		return fn(a, b, c)
	}
}
