// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

// Monad operations for readers.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept to avoid intermediate closures.

// Bind sequences two readers (monadic bind).
// It runs m, passes the result to f, and runs the returned reader
// against the same environment.
func Bind[E, A, B any](m Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(e E) B {
		return f(m(e))(e)
	}
}

// Map applies a pure function to the result of a reader.
// Map is equivalent to Bind(m, compose(Pure, f)).
func Map[E, A, B any](m Reader[E, A], f func(A) B) Reader[E, B] {
	return func(e E) B {
		return f(m(e))
	}
}

// Then sequences two readers, discarding the first result.
// Both readers see the same environment; m still runs, so any effect
// of its environment capabilities happens before n.
func Then[E, A, B any](m Reader[E, A], n Reader[E, B]) Reader[E, B] {
	return func(e E) B {
		m(e)
		return n(e)
	}
}

// Sequence runs readers in order against the same environment
// and collects their results.
func Sequence[E, A any](ms ...Reader[E, A]) Reader[E, []A] {
	return func(e E) []A {
		out := make([]A, len(ms))
		for i, m := range ms {
			out[i] = m(e)
		}
		return out
	}
}
