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

func initDefBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "def", Desc: "defines one or more symbols globally",
		MinParameter: 2, MaxParameter: -1,
		Params: []DeclarationParameter{
			{"names", "list", "Q-Expression of Symbols"},
			{"values", "any", "one value per name"},
		},
	}, func(env *Environment, args *Value) *Value { return builtinAssign(env, args, (*Environment).Def) })

	Declare(env, &Declaration{
		Name: "=", Desc: "defines one or more symbols in the local scope",
		MinParameter: 2, MaxParameter: -1,
		Params: []DeclarationParameter{
			{"names", "list", "Q-Expression of Symbols"},
			{"values", "any", "one value per name"},
		},
	}, func(env *Environment, args *Value) *Value { return builtinAssign(env, args, (*Environment).Put) })

	Declare(env, &Declaration{
		Name: "\\", Desc: "constructs a lambda (closure) from a Q-Expression of formal parameter symbols and a Q-Expression body",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{
			{"formals", "list", "Q-Expression of Symbols, optionally containing '&' for variadic capture"},
			{"body", "list", "Q-Expression evaluated as the function body"},
		},
	}, builtinLambda)
}

func builtinAssign(env *Environment, args *Value, bind func(*Environment, string, *Value)) *Value {
	if len(args.Cells) < 1 || args.Cells[0].Kind != KindQExpr {
		return errf("Function 'def' passed incorrect type for argument. Got %s, Expected %s.", args.Cells[0].Kind, KindQExpr)
	}
	names := args.Cells[0]
	for _, n := range names.Cells {
		if n.Kind != KindSymbol {
			return errf("Function 'def' cannot define non-symbol. Got %s, Expected %s.", n.Kind, KindSymbol)
		}
	}
	values := args.Cells[1:]
	if len(names.Cells) != len(values) {
		return errf("Function 'def' passed too many arguments for symbols. Got %d, Expected %d.", len(values), len(names.Cells))
	}
	for i, n := range names.Cells {
		bind(env, n.Text, values[i])
	}
	return sexpr()
}

func builtinLambda(env *Environment, args *Value) *Value {
	if e := checkArgs("\\", args, KindQExpr, 2); e != nil {
		return e
	}
	formals := args.Cells[0]
	for _, s := range formals.Cells {
		if s.Kind != KindSymbol {
			return errf("Cannot define non-symbol. Got %s, Expected %s.", s.Kind, KindSymbol)
		}
	}
	body := args.Cells[1]
	return NewClosure(formals.Copy(), body.Copy(), NewEnvironment())
}
