// Package fp provides lightweight functional composition helpers for Go.
//
// Example:
//
//	upper := fp.Pipe(
//		strings.ToUpper,
//		func(s string) string { return s + "!" },
//	)
//	value := upper("go")
package fp

// Identity returns the supplied value unchanged.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Apply threads value through fns immediately, left to right. All functions
// must accept and return the same type.
//
// Example:
//
//	result := Apply(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Apply[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Pipe composes functions left to right and returns the composed function.
// Pipe(f, g)(x) == g(f(x)). A caller holding a slice of stages passes it with
// fns... — the variadic and slice call shapes share this one code path.
//
// Example:
//
//	fn := Pipe(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5)
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for _, fn := range fns {
			result = fn(result)
		}
		return result
	}
}

// Compose composes functions in right-to-left order. Compose(f, g)(x) == f(g(x)).
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Pipe2 composes two functions of differing types left to right. Go's variadic
// Pipe cannot change types mid-stream; Pipe2 and Pipe3 cover that seam.
func Pipe2[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 composes three functions of differing types left to right.
func Pipe3[A any, B any, C any, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}
