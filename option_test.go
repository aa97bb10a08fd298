// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reader_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/reader"
)

func TestOptionSome(t *testing.T) {
	o := reader.Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatal("expected Some")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestOptionNone(t *testing.T) {
	o := reader.None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatal("expected None")
	}
	v, ok := o.Get()
	if ok || v != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", v, ok)
	}
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var o reader.Option[string]
	if o.IsSome() {
		t.Fatal("zero Option should be None")
	}
}

func TestOptionOf(t *testing.T) {
	users := map[int]string{1: "alice"}

	name, ok := users[1]
	if got := reader.OptionOf(name, ok); got.GetOrElse("") != "alice" {
		t.Fatalf("got %v, want Some(alice)", got)
	}

	name, ok = users[2]
	if got := reader.OptionOf(name, ok); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
}

func TestOptionGetOrElse(t *testing.T) {
	if got := reader.Some(1).GetOrElse(9); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := reader.None[int]().GetOrElse(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestOptionString(t *testing.T) {
	if got := reader.Some("x").String(); got != "Some(x)" {
		t.Fatalf("got %q, want %q", got, "Some(x)")
	}
	if got := reader.None[string]().String(); got != "None" {
		t.Fatalf("got %q, want %q", got, "None")
	}
}

func TestMatchOption(t *testing.T) {
	onNone := func() string { return "none" }
	onSome := func(x int) string { return strconv.Itoa(x) }

	if got := reader.MatchOption(reader.Some(7), onNone, onSome); got != "7" {
		t.Fatalf("got %q, want %q", got, "7")
	}
	if got := reader.MatchOption(reader.None[int](), onNone, onSome); got != "none" {
		t.Fatalf("got %q, want %q", got, "none")
	}
}

func TestMapOptionNoneSkipsFunction(t *testing.T) {
	called := false
	result := reader.MapOption(reader.None[int](), func(x int) int {
		called = true
		return x
	})
	if called {
		t.Fatal("f must not be called on None")
	}
	if result.IsSome() {
		t.Fatalf("got %v, want None", result)
	}
}

func TestMapOptionSome(t *testing.T) {
	result := reader.MapOption(reader.Some(20), strconv.Itoa)
	if v, _ := result.Get(); v != "20" {
		t.Fatalf("got %v, want Some(20)", result)
	}
}

func TestFlatMapOption(t *testing.T) {
	parse := func(s string) reader.Option[int] {
		n, err := strconv.Atoi(s)
		return reader.OptionOf(n, err == nil)
	}

	if got := reader.FlatMapOption(reader.Some("12"), parse); got.GetOrElse(-1) != 12 {
		t.Fatalf("got %v, want Some(12)", got)
	}
	if got := reader.FlatMapOption(reader.Some("x"), parse); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
	if got := reader.FlatMapOption(reader.None[string](), parse); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
}
