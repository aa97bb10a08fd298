// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader

import "fmt"

// Option represents a value that is either present (Some) or absent (None).
// Absence carries no reason: it is the only failure signal of [OptionReader].
type Option[A any] struct {
	ok    bool
	value A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// OptionOf adapts a comma-ok pair, as returned by map lookups
// and type assertions, into an Option.
func OptionOf[A any](a A, ok bool) Option[A] {
	if ok {
		return Some(a)
	}
	return None[A]()
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.ok
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.ok {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value if present, otherwise fallback.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.ok {
		return o.value
	}
	return fallback
}

// String implements fmt.Stringer.
func (o Option[A]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
// f is not called when o is absent.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.value)
	}
	return None[B]()
}
