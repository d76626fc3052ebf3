package timing

// Bind1 returns fn with its argument fixed, ready for Run.
func Bind1[A any](fn func(A), a A) func() {
	return func() { fn(a) }
}

// Bind2 returns fn with both arguments fixed.
func Bind2[A, B any](fn func(A, B), a A, b B) func() {
	return func() { fn(a, b) }
}

// Bind3 returns fn with all three arguments fixed.
func Bind3[A, B, C any](fn func(A, B, C), a A, b B, c C) func() {
	return func() { fn(a, b, c) }
}

// Discard adapts a function with a result; the result is dropped.
func Discard[R any](fn func() R) func() {
	return func() { _ = fn() }
}
