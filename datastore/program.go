// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package datastore

import "code.hybscloud.com/reader"

// DefaultSalutation is used by MixAndMatch when Config.Salutation is empty.
const DefaultSalutation = "Hello"

// Config is the program environment. It aggregates the datastore
// with the other settings a program may read.
type Config struct {
	Datastore  Datastore
	Salutation string
}

// DatastoreOf projects a Config onto its datastore.
// DSL computations run inside Config programs through reader.Local.
func DatastoreOf(c Config) Datastore {
	return c.Datastore
}

func salutation(c Config) string {
	if c.Salutation == "" {
		return DefaultSalutation
	}
	return c.Salutation
}

// Greet stores name under "name", reads it back and greets it.
func Greet(name string) reader.OptionReader[Config, string] {
	program := reader.ThenOptionReader(
		reader.LiftReader(Set("name", name)),
		reader.MapOptionReader(Get("name"), func(n string) string {
			return "Hello " + n
		}),
	)
	return reader.LocalOptionReader(program, DatastoreOf)
}

// MixAndMatch joins an Option-only step, a Reader-only step and a combined
// step. An absent nickname leaves the datastore untouched.
func MixAndMatch(nickname reader.Option[string]) reader.OptionReader[Config, string] {
	return reader.BindOptionReader(reader.LiftOption[Config](nickname), func(nick string) reader.OptionReader[Config, string] {
		store := reader.LocalOptionReader(
			reader.ThenOptionReader(reader.LiftReader(Set("nickname", nick)), Get("nickname")),
			DatastoreOf,
		)
		return reader.BindOptionReader(store, func(stored string) reader.OptionReader[Config, string] {
			return reader.MapOptionReader(reader.LiftReader(reader.Asks(salutation)), func(s string) string {
				return s + ", " + stored
			})
		})
	})
}
