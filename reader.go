// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

// Reader represents a computation that reads an environment.
// Reader[E, A] computes a value of type A from an environment of type E.
//
// The computation is deferred: nothing runs until [RunReader] supplies the
// environment. Applying the same environment always produces the same result
// unless the environment itself carries effects.
type Reader[E, A any] func(env E) A

// identity is the computation behind Ask.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[E any](e E) E { return e }

// Ask returns the environment unchanged.
func Ask[E any]() Reader[E, E] {
	return identity[E]
}

// Asks fuses Ask + Map: reads the environment and applies projection f.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return Reader[E, A](f)
}

// Pure lifts a value into a Reader that ignores its environment.
func Pure[E, A any](a A) Reader[E, A] {
	return func(E) A {
		return a
	}
}

// Local adapts m to run against a broader environment E2.
// f projects the broader environment onto the one m was written for.
//
// Example:
//
//	type Config struct{ Port int }
//	port := reader.Ask[int]()
//	fromConfig := reader.Local(port, func(c Config) int { return c.Port })
//	reader.RunReader(Config{Port: 8080}, fromConfig) // 8080
func Local[E2, E, A any](m Reader[E, A], f func(E2) E) Reader[E2, A] {
	return func(e E2) A {
		return m(f(e))
	}
}

// RunReader runs a computation with the given environment.
func RunReader[E, A any](env E, m Reader[E, A]) A {
	return m(env)
}
