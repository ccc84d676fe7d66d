/*
Copyright (C) 2023  Carl-Philip Hänsch

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

import (
	"fmt"
	"sort"
	"strings"
)

// Declaration documents and registers one built-in, the way the teacher's
// declare.go documents a scm primitive alongside its Fn.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
}

type DeclarationParameter struct {
	Name string
	Type string // any | number | string | symbol | func | list
	Desc string
}

var declarations = make(map[string]*Declaration)

// Declare registers fn under def.Name in env and records def for (help).
func Declare(env *Environment, def *Declaration, fn Builtin) {
	declarations[def.Name] = def
	env.Put(def.Name, NewBuiltin(def.Name, fn))
}

// Help implements (help) and (help "name"), per SPEC_FULL.md §4.10. With no
// argument it returns a String listing every declared built-in; with one it
// returns that built-in's full description.
func Help(name string) *Value {
	if name == "" {
		names := make([]string, 0, len(declarations))
		for n := range declarations {
			names = append(names, n)
		}
		sort.Strings(names)

		var b strings.Builder
		b.WriteString("Available functions:\n\n")
		for _, n := range names {
			first := strings.SplitN(declarations[n].Desc, "\n", 2)[0]
			fmt.Fprintf(&b, "  %s: %s\n", n, first)
		}
		b.WriteString("\nuse (help \"name\") for details on one function")
		return str(b.String())
	}

	def, ok := declarations[name]
	if !ok {
		return errf("function not found: %s", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n===\n\n%s\n\nAllowed number of parameters: %d-%d\n\n", def.Name, def.Desc, def.MinParameter, def.MaxParameter)
	for _, p := range def.Params {
		fmt.Fprintf(&b, " - %s (%s): %s\n", p.Name, p.Type, p.Desc)
	}
	return str(b.String())
}
