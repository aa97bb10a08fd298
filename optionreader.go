// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

// Composed Reader + Option effect.
// An OptionReader reads an environment and may produce no result.
// Absence short-circuits every later Bind: the continuation is never invoked.

// OptionReader is a Reader whose result is optional.
// It has no representation of its own beyond the wrapped Reader.
type OptionReader[E, A any] Reader[E, Option[A]]

// Reader returns the wrapped environment-to-optional computation.
func (m OptionReader[E, A]) Reader() Reader[E, Option[A]] {
	return Reader[E, Option[A]](m)
}

// PureOptionReader lifts a value into an OptionReader that ignores its
// environment and is always present.
func PureOptionReader[E, A any](a A) OptionReader[E, A] {
	return OptionReader[E, A](Pure[E](Some(a)))
}

// NoneReader returns an OptionReader that is absent for every environment.
func NoneReader[E, A any]() OptionReader[E, A] {
	return OptionReader[E, A](Pure[E](None[A]()))
}

// LiftReader promotes a Reader into the combined effect by wrapping its
// result in Some. Use it for steps that only read the environment.
func LiftReader[E, A any](m Reader[E, A]) OptionReader[E, A] {
	return func(e E) Option[A] {
		return Some(m(e))
	}
}

// LiftOption promotes an Option into the combined effect with a reader that
// ignores its environment. Use it for steps that are only optional.
func LiftOption[E, A any](o Option[A]) OptionReader[E, A] {
	return OptionReader[E, A](Pure[E](o))
}

// MapOptionReader applies a pure function to a present result.
// Absence maps to absence; f is not called.
func MapOptionReader[E, A, B any](m OptionReader[E, A], f func(A) B) OptionReader[E, B] {
	return func(e E) Option[B] {
		return MapOption(m(e), f)
	}
}

// BindOptionReader sequences two OptionReaders.
// If m is absent for an environment, the result is absent and f is never
// invoked. Otherwise the reader returned by f runs with the same environment.
func BindOptionReader[E, A, B any](m OptionReader[E, A], f func(A) OptionReader[E, B]) OptionReader[E, B] {
	return func(e E) Option[B] {
		a, ok := m(e).Get()
		if !ok {
			return None[B]()
		}
		return f(a)(e)
	}
}

// ThenOptionReader sequences two OptionReaders, discarding a present result
// of m. n does not run when m is absent.
func ThenOptionReader[E, A, B any](m OptionReader[E, A], n OptionReader[E, B]) OptionReader[E, B] {
	return func(e E) Option[B] {
		if m(e).IsNone() {
			return None[B]()
		}
		return n(e)
	}
}

// LocalOptionReader adapts m to run against a broader environment E2.
func LocalOptionReader[E2, E, A any](m OptionReader[E, A], f func(E2) E) OptionReader[E2, A] {
	return OptionReader[E2, A](Local(m.Reader(), f))
}

// GetOrElseReader leaves the combined effect, substituting fallback
// wherever m is absent.
func GetOrElseReader[E, A any](m OptionReader[E, A], fallback A) Reader[E, A] {
	return func(e E) A {
		return m(e).GetOrElse(fallback)
	}
}

// RunOptionReader runs a composed computation with the given environment.
func RunOptionReader[E, A any](env E, m OptionReader[E, A]) Option[A] {
	return m(env)
}
