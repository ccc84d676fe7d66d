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

func TestBuiltinHeadOfEmptyQExprIsError(t *testing.T) {
	env := NewGlobalEnvironment()
	got := eval(t, env, "head {}")
	if !got.IsError() {
		t.Fatalf("head {} = %s, want Error", got)
	}
}

func TestBuiltinHeadWrongTypeIsError(t *testing.T) {
	env := NewGlobalEnvironment()
	got := eval(t, env, "head (1 2)")
	if !got.IsError() {
		t.Fatalf("head (1 2) = %s, want Error", got)
	}
}

func TestBuiltinDefMismatchedArity(t *testing.T) {
	env := NewGlobalEnvironment()
	got := eval(t, env, "def {x y} 1")
	if !got.IsError() {
		t.Fatalf("def {x y} 1 = %s, want Error", got)
	}
}

func TestBuiltinTooManyArguments(t *testing.T) {
	env := NewGlobalEnvironment()
	eval(t, env, `def {f} (\ {x} {x})`)
	got := eval(t, env, "f 1 2")
	if !got.IsError() {
		t.Fatalf("calling arity-1 closure with 2 args = %s, want Error", got)
	}
}

func TestBuiltinHelpListsAndDescribes(t *testing.T) {
	env := NewGlobalEnvironment()
	all := eval(t, env, "help")
	if all.Kind != KindString || len(all.Text) == 0 {
		t.Fatalf("help = %s, want non-empty String", all)
	}
	one := eval(t, env, `help "head"`)
	if one.Kind != KindString || len(one.Text) == 0 {
		t.Fatalf(`help "head" = %s, want non-empty String`, one)
	}
	missing := eval(t, env, `help "nope"`)
	if !missing.IsError() {
		t.Fatalf(`help "nope" = %s, want Error`, missing)
	}
}

func TestBuiltinEnvReturnsSortedBindings(t *testing.T) {
	env := NewGlobalEnvironment()
	eval(t, env, "def {zz} 1")
	eval(t, env, "def {aa} 2")
	got := eval(t, env, "env")
	if got.Kind != KindQExpr || len(got.Cells) == 0 {
		t.Fatalf("env = %s, want non-empty Q-Expression", got)
	}
	for _, pair := range got.Cells {
		if pair.Kind != KindQExpr || len(pair.Cells) != 2 || pair.Cells[0].Kind != KindSymbol {
			t.Fatalf("env entry malformed: %s", pair)
		}
	}
	for i := 1; i < len(got.Cells); i++ {
		if prev, cur := got.Cells[i-1].Cells[0].Text, got.Cells[i].Cells[0].Text; prev >= cur {
			t.Fatalf("env not sorted by name: %q before %q", prev, cur)
		}
	}
}

func TestBuiltinStatsReturnsHumanReadableSummary(t *testing.T) {
	env := NewGlobalEnvironment()
	got := eval(t, env, "stats")
	if got.Kind != KindString || len(got.Text) == 0 {
		t.Fatalf("stats = %s, want non-empty String", got)
	}
}

func TestBuiltinErrorConstructsErrorValue(t *testing.T) {
	env := NewGlobalEnvironment()
	got := eval(t, env, `error "custom failure"`)
	if !got.IsError() || got.Text != "custom failure" {
		t.Fatalf(`error "custom failure" = %s, want Error: custom failure`, got)
	}
}
