// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader_test

import (
	"fmt"
	"strings"

	"code.hybscloud.com/reader"
)

func ExampleLocal() {
	type Config struct {
		Name string
		Port int
	}

	shout := reader.Map(reader.Ask[string](), strings.ToUpper)
	comp := reader.Local(shout, func(c Config) string { return c.Name })

	fmt.Println(reader.RunReader(Config{Name: "gopher", Port: 80}, comp))
	// Output: GOPHER
}

func ExampleBindOptionReader() {
	env := map[string]string{"name": "Brandon"}

	get := func(key string) reader.OptionReader[map[string]string, string] {
		return func(m map[string]string) reader.Option[string] {
			v, ok := m[key]
			return reader.OptionOf(v, ok)
		}
	}
	greet := func(key string) reader.OptionReader[map[string]string, string] {
		return reader.BindOptionReader(get(key), func(name string) reader.OptionReader[map[string]string, string] {
			return reader.PureOptionReader[map[string]string]("Hello " + name)
		})
	}

	fmt.Println(reader.RunOptionReader(env, greet("name")))
	fmt.Println(reader.RunOptionReader(env, greet("missing")))
	// Output:
	// Some(Hello Brandon)
	// None
}

func ExampleLiftOption() {
	comp := reader.BindOptionReader(
		reader.LiftOption[int](reader.None[int]()),
		func(x int) reader.OptionReader[int, int] {
			return reader.PureOptionReader[int](x)
		},
	)

	fmt.Println(reader.RunOptionReader(7, comp))
	// Output: None
}
