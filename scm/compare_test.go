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

func TestEqualPrimitives(t *testing.T) {
	cases := []struct {
		a, b  *Value
		equal bool
	}{
		{num(1), num(1), true},
		{num(1), num(2), false},
		{sym("x"), sym("x"), true},
		{str("a"), str("b"), false},
		{qexpr(num(1), num(2)), qexpr(num(1), num(2)), true},
		{qexpr(num(1)), qexpr(num(1), num(2)), false},
		{num(1), sym("1"), false}, // different Kind
	}
	for _, c := range cases {
		if got := Equal(c.a, c.b); got != c.equal {
			t.Errorf("Equal(%s, %s) = %v, want %v", c.a, c.b, got, c.equal)
		}
	}
}

func TestEqualClosureIgnoresEnvironment(t *testing.T) {
	env1 := NewEnvironment()
	env1.Put("captured", num(1))
	env2 := NewEnvironment()
	env2.Put("captured", num(2))

	a := NewClosure(qexpr(sym("x")), qexpr(sym("x")), env1)
	b := NewClosure(qexpr(sym("x")), qexpr(sym("x")), env2)
	if !Equal(a, b) {
		t.Fatalf("closures with identical formals/body but different captured environments should be Equal")
	}
}

func TestEqualBuiltinsByIdentity(t *testing.T) {
	fn1 := func(env *Environment, args *Value) *Value { return args }
	fn2 := func(env *Environment, args *Value) *Value { return args }
	a := NewBuiltin("f", fn1)
	b := NewBuiltin("f", fn1)
	c := NewBuiltin("f", fn2)
	if !Equal(a, b) {
		t.Fatalf("same underlying builtin func should be Equal")
	}
	if Equal(a, c) {
		t.Fatalf("distinct builtin funcs should not be Equal")
	}
}
