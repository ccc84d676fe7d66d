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
	"runtime"

	"github.com/docker/go-units"
	"github.com/google/btree"
)

// envBinding is a btree.Item ordering bindings by name, so (env) always
// lists a frame's symbols alphabetically regardless of Go map iteration
// order.
type envBinding struct {
	name  string
	value *Value
}

func (b envBinding) Less(than btree.Item) bool {
	return b.name < than.(envBinding).name
}

func initIntrospectBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "env", Desc: "returns a Q-Expression of {symbol value} pairs visible from the current scope, sorted by name",
		MinParameter: 0, MaxParameter: 0,
	}, builtinEnv)

	Declare(env, &Declaration{
		Name: "stats", Desc: "returns a human-readable summary of interpreter heap usage",
		MinParameter: 0, MaxParameter: 0,
	}, builtinStats)

	Declare(env, &Declaration{
		Name: "help", Desc: "lists every built-in, or describes one by name",
		MinParameter: 0, MaxParameter: 1,
		Params: []DeclarationParameter{{"name", "string", "(optional) built-in to describe"}},
	}, builtinHelp)
}

func builtinEnv(env *Environment, args *Value) *Value {
	if e := checkArgs("env", args, KindNumber, 0); e != nil {
		return e
	}
	tree := btree.New(8)
	for name, v := range env.bindings() {
		tree.ReplaceOrInsert(envBinding{name: name, value: v})
	}

	out := qexpr()
	tree.Ascend(func(it btree.Item) bool {
		b := it.(envBinding)
		addChild(out, qexpr(sym(b.name), b.value.Copy()))
		return true
	})
	return out
}

func builtinStats(env *Environment, args *Value) *Value {
	if e := checkArgs("stats", args, KindNumber, 0); e != nil {
		return e
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return str(fmt.Sprintf("heap alloc: %s, sys: %s, objects: %d",
		units.HumanSize(float64(m.HeapAlloc)), units.HumanSize(float64(m.Sys)), m.HeapObjects))
}

func builtinHelp(env *Environment, args *Value) *Value {
	if len(args.Cells) > 1 {
		return errf("Function 'help' passed incorrect number of arguments. Got %d, Expected 0-1.", len(args.Cells))
	}
	if len(args.Cells) == 0 {
		return Help("")
	}
	if args.Cells[0].Kind != KindString {
		return errf("Function 'help' passed incorrect type for argument. Got %s, Expected %s.", args.Cells[0].Kind, KindString)
	}
	return Help(args.Cells[0].Text)
}
