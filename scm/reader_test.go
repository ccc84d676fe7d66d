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

func TestUnescapeString(t *testing.T) {
	cases := []struct{ in, want string }{
		{`hello`, "hello"},
		{`a\nb`, "a\nb"},
		{`a\tb`, "a\tb"},
		{`a\rb`, "a\rb"},
		{`a\\b`, `a\b`},
		{`a\"b`, `a"b`},
	}
	for _, c := range cases {
		if got := unescapeString(c.in); got != c.want {
			t.Errorf("unescapeString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeUnescapeRoundtrip(t *testing.T) {
	in := "line1\nline2\ttabbed\\quoted\""
	if got := unescapeString(escapeString(in)); got != in {
		t.Errorf("roundtrip mismatch: got %q, want %q", got, in)
	}
}

func TestReadNumberOutOfRangeIsInvalidNumberError(t *testing.T) {
	n := &ParseNode{Tag: TagNumber, Text: "99999999999999999999999999999999"}
	got := Read(n)
	if !got.IsError() || got.Text != "invalid number" {
		t.Fatalf("Read(huge number) = %s, want Error: invalid number", got)
	}
}

func TestReadStringStripsQuotesAndUnescapes(t *testing.T) {
	n := &ParseNode{Tag: TagString, Text: `"hi\nthere"`}
	got := Read(n)
	if got.Kind != KindString || got.Text != "hi\nthere" {
		t.Fatalf(`Read(TagString %q) = %s, want String "hi\nthere"`, n.Text, got)
	}
}

func TestReadSexprNestsChildren(t *testing.T) {
	n := &ParseNode{Tag: TagSexpr, Children: []*ParseNode{
		{Tag: TagSymbol, Text: "+"},
		{Tag: TagNumber, Text: "1"},
		{Tag: TagNumber, Text: "2"},
	}}
	got := Read(n)
	if got.Kind != KindSExpr || len(got.Cells) != 3 {
		t.Fatalf("Read(sexpr) = %s, want 3-cell S-Expression", got)
	}
}
