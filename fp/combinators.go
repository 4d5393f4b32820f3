package fp

import "github.com/gustavodias/fnkit/option"

// Sequence applies every function to the same input, in order, for side
// effects, and returns the input unchanged. Unlike Pipe, outputs are discarded.
func Sequence[T any](fns ...func(T)) func(T) T {
	return func(value T) T {
		for _, fn := range fns {
			fn(value)
		}
		return value
	}
}

// Wrap decorates fn with wrapper. The returned function calls
// wrapper(fn, arg); the wrapper fully controls whether and how fn runs.
//
// Example:
//
//	traced := Wrap(load, func(fn func(string) int, key string) int {
//		defer trace(key)()
//		return fn(key)
//	})
func Wrap[A any, B any](fn func(A) B, wrapper func(func(A) B, A) B) func(A) B {
	return func(a A) B {
		return wrapper(fn, a)
	}
}

// Once returns a function that invokes fn on the first call and answers None
// on every call after that, without invoking fn again. The guard flag is
// private to the returned closure; separate Once values do not share state.
func Once[A any, B any](fn func(A) B) func(A) option.Option[B] {
	called := false
	return func(a A) option.Option[B] {
		if called {
			return option.None[B]()
		}
		called = true
		return option.Some(fn(a))
	}
}

// Maybe lifts fn into the Option domain: None propagates untouched, Some(v)
// becomes Some(fn(v)).
func Maybe[A any, B any](fn func(A) B) func(option.Option[A]) option.Option[B] {
	return func(o option.Option[A]) option.Option[B] {
		return option.Map(o, fn)
	}
}
