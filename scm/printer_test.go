/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "testing"

func TestValueString(t *testing.T) {
	cases := []struct {
		v    *Value
		want string
	}{
		{num(42), "42"},
		{num(-7), "-7"},
		{errf("boom"), "Error: boom"},
		{sym("foo"), "foo"},
		{str("hi\n"), `"hi\n"`},
		{sexpr(num(1), num(2)), "(1 2)"},
		{qexpr(num(1), sym("x")), "{1 x}"},
		{sexpr(), "()"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestFunctionStringBuiltinVsClosure(t *testing.T) {
	b := NewBuiltin("head", func(env *Environment, args *Value) *Value { return args })
	if got := b.String(); got != "<builtin head>" {
		t.Errorf("builtin String() = %q, want %q", got, "<builtin head>")
	}

	c := NewClosure(qexpr(sym("x")), qexpr(sym("x")), NewEnvironment())
	if got := c.String(); got != "(\\ {x} {x})" {
		t.Errorf("closure String() = %q, want %q", got, "(\\ {x} {x})")
	}
}
