// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reader provides the Reader (environment-passing) monad and its
// composition with an optional result in Go.
//
// The core type [Reader] represents a computation that reads an environment
// and produces a result. Nothing runs until the environment is supplied with
// [RunReader]; every combinator builds a new immutable value.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: Lift a value into a reader that ignores its environment
//   - [Bind]: Sequence two readers against the same environment
//
// Derived operations:
//
//   - [Map]: Apply a function to the result, equivalent to Bind(m, func(a) Pure(f(a)))
//   - [Then]: Sequence, discarding first result, equivalent to Bind(m, func(_) n)
//   - [Sequence]: Run readers in order and collect results
//
// Environment access:
//
//   - [Ask]: Return the environment unchanged
//   - [Asks]: Ask followed by a projection
//   - [Local]: Adapt a reader written for a narrow environment to a broader one
//   - [RunReader]: Supply the environment and obtain the result
//
// # Option Type
//
// [Option] represents a present (Some) or absent (None) value:
//
//   - [Some], [None], [OptionOf]: Constructors
//   - [Option.IsSome], [Option.IsNone]: Predicates
//   - [Option.Get], [Option.GetOrElse]: Accessors
//   - [MatchOption]: Pattern matching
//   - [MapOption]: Functor map over Some
//   - [FlatMapOption]: Monadic bind
//
// Absence carries no reason. It is the only failure signal in this package.
//
// # Composed Effects
//
// [OptionReader] stacks Option on top of Reader: it reads an environment and
// may produce no result. Once a step is absent, later steps are skipped.
//
//   - [PureOptionReader], [NoneReader]: Constructors
//   - [MapOptionReader], [BindOptionReader], [ThenOptionReader]: Composition
//   - [LocalOptionReader]: Environment adaptation
//   - [GetOrElseReader]: Leave the combined effect with a fallback
//   - [RunOptionReader]: Supply the environment and obtain an [Option]
//
// Lifting lets single-effect steps join a combined chain:
//
//   - [LiftReader]: Reader[E, A] → OptionReader[E, A] (result wrapped in Some)
//   - [LiftOption]: Option[A] → OptionReader[E, A] (environment ignored)
//
// # Example
//
//	type Env struct{ Users map[int]string }
//
//	lookup := func(id int) reader.OptionReader[Env, string] {
//		return func(e Env) reader.Option[string] {
//			name, ok := e.Users[id]
//			return reader.OptionOf(name, ok)
//		}
//	}
//
//	greeting := reader.MapOptionReader(lookup(1), func(name string) string {
//		return "Hello " + name
//	})
//
//	reader.RunOptionReader(Env{Users: map[int]string{1: "Brandon"}}, greeting)
//	// Some(Hello Brandon)
//
// Environments are treated as opaque capability bundles. If an environment
// is shared mutable state, its own implementation provides synchronization.
package reader
