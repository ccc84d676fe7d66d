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

func initListBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "list", Desc: "turns zero or more arguments into a Q-Expression",
		MinParameter: 0, MaxParameter: -1,
		Params: []DeclarationParameter{{"args", "any", "values to collect"}},
	}, builtinList)

	Declare(env, &Declaration{
		Name: "head", Desc: "returns the first element of a Q-Expression, as a single-element Q-Expression",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{"q", "list", "non-empty Q-Expression"}},
	}, builtinHead)

	Declare(env, &Declaration{
		Name: "tail", Desc: "returns a Q-Expression with its first element removed",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{"q", "list", "non-empty Q-Expression"}},
	}, builtinTail)

	Declare(env, &Declaration{
		Name: "join", Desc: "concatenates one or more Q-Expressions",
		MinParameter: 1, MaxParameter: -1,
		Params: []DeclarationParameter{{"qs", "list", "Q-Expressions to concatenate"}},
	}, builtinJoin)

	Declare(env, &Declaration{
		Name: "eval", Desc: "evaluates a Q-Expression as if it were an S-Expression",
		MinParameter: 1, MaxParameter: 1,
		Params: []DeclarationParameter{{"q", "list", "Q-Expression to evaluate"}},
	}, builtinEval)
}

func builtinList(env *Environment, args *Value) *Value {
	args.Kind = KindQExpr
	return args
}

func checkArgs(name string, args *Value, kind Kind, n int) *Value {
	if n >= 0 && len(args.Cells) != n {
		return errf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, len(args.Cells), n)
	}
	for _, c := range args.Cells {
		if c.Kind != kind {
			return errf("Function '%s' passed incorrect type for argument. Got %s, Expected %s.", name, c.Kind, kind)
		}
	}
	return nil
}

func builtinHead(env *Environment, args *Value) *Value {
	if e := checkArgs("head", args, KindQExpr, 1); e != nil {
		return e
	}
	q := args.Cells[0]
	if len(q.Cells) == 0 {
		return errf("Function 'head' passed {}!")
	}
	for len(q.Cells) > 1 {
		popChild(q, 1)
	}
	return q
}

func builtinTail(env *Environment, args *Value) *Value {
	if e := checkArgs("tail", args, KindQExpr, 1); e != nil {
		return e
	}
	q := args.Cells[0]
	if len(q.Cells) == 0 {
		return errf("Function 'tail' passed {}!")
	}
	popChild(q, 0)
	return q
}

func builtinJoin(env *Environment, args *Value) *Value {
	if e := checkArgs("join", args, KindQExpr, -1); e != nil {
		return e
	}
	if len(args.Cells) == 0 {
		return qexpr()
	}
	out := args.Cells[0]
	for _, other := range args.Cells[1:] {
		out = joinInto(out, other)
	}
	return out
}

func builtinEval(env *Environment, args *Value) *Value {
	if e := checkArgs("eval", args, KindQExpr, 1); e != nil {
		return e
	}
	q := args.Cells[0]
	q.Kind = KindSExpr
	return Eval(env, q)
}
