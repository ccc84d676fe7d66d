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

func TestEnvironmentPutGet(t *testing.T) {
	e := NewEnvironment()
	e.Put("x", num(42))
	got := e.Get("x")
	if got.Kind != KindNumber || got.Num != 42 {
		t.Fatalf("Get(x) = %s, want 42", got)
	}
}

func TestEnvironmentGetSearchesParentChain(t *testing.T) {
	parent := NewEnvironment()
	parent.Put("x", num(1))
	child := NewEnvironment()
	child.Parent = parent
	if got := child.Get("x"); got.Num != 1 {
		t.Fatalf("child.Get(x) = %s, want 1 (inherited from parent)", got)
	}
}

func TestEnvironmentGetUnboundIsError(t *testing.T) {
	e := NewEnvironment()
	got := e.Get("nope")
	if !got.IsError() {
		t.Fatalf("Get(unbound) = %s, want Error", got)
	}
}

func TestEnvironmentPutIsLocalOnly(t *testing.T) {
	parent := NewEnvironment()
	child := NewEnvironment()
	child.Parent = parent
	child.Put("x", num(1))
	if !parent.Get("x").IsError() {
		t.Fatalf("Put in child leaked into parent")
	}
}

func TestEnvironmentDefWritesToRoot(t *testing.T) {
	root := NewEnvironment()
	child := NewEnvironment()
	child.Parent = root
	child.Def("x", num(7))
	if got := root.Get("x"); got.Num != 7 {
		t.Fatalf("Def from child did not reach root: %s", got)
	}
}

func TestEnvironmentGetCopiesStoredValue(t *testing.T) {
	e := NewEnvironment()
	e.Put("x", qexpr(num(1)))
	a := e.Get("x")
	a.Cells[0].Num = 99
	b := e.Get("x")
	if b.Cells[0].Num == 99 {
		t.Fatalf("Get returned an aliased Value instead of a copy")
	}
}
