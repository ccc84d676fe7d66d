/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

// Eval reduces v under env following the rule in spec.md §4.4:
//   - Number, String, Error, Q-Expression, Function evaluate to themselves.
//   - Symbol evaluates to env.Get(name).
//   - S-Expression reduces its children left to right, short-circuits on
//     the first Error among them, unwraps singletons, and otherwise applies
//     the (non-Function) head as an operator error or the Function head to
//     the rest as arguments.
func Eval(env *Environment, v *Value) *Value {
	switch v.Kind {
	case KindSymbol:
		return env.Get(v.Text)
	case KindSExpr:
		return evalSExpr(env, v)
	default:
		return v
	}
}

func evalSExpr(env *Environment, v *Value) *Value {
	for i, c := range v.Cells {
		v.Cells[i] = Eval(env, c)
	}
	for i, c := range v.Cells {
		if c.IsError() {
			return takeChild(v, i)
		}
	}
	if len(v.Cells) == 0 {
		return v
	}
	if len(v.Cells) == 1 {
		return takeChild(v, 0)
	}

	f := popChild(v, 0)
	if f.Kind != KindFunction {
		return errf("S-Expression starts with incorrect type. Got %s, Expected %s.", f.Kind, KindFunction)
	}
	return Call(env, f, v)
}

// Call applies f (a Function Value) to args (the remaining S-Expression of
// already-evaluated actuals), per spec.md §4.5.
func Call(env *Environment, f, args *Value) *Value {
	fn := f.Fn
	if fn.IsBuiltin() {
		return fn.Builtin(env, args)
	}
	return callClosure(env, fn, args)
}

func callClosure(callerEnv *Environment, fn *Function, args *Value) *Value {
	given := len(args.Cells)
	total := len(fn.Formals.Cells)

	for len(args.Cells) > 0 {
		if len(fn.Formals.Cells) == 0 {
			return errf("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}

		formal := popChild(fn.Formals, 0)
		if formal.Kind == KindSymbol && formal.Text == "&" {
			if len(fn.Formals.Cells) != 1 {
				return errf("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := popChild(fn.Formals, 0)
			fn.Env.Put(rest.Text, qexpr(args.Cells...))
			args.Cells = nil
			break
		}

		actual := popChild(args, 0)
		fn.Env.Put(formal.Text, actual)
	}

	// Variadic formal with zero actuals supplied: bind it to {}.
	if len(fn.Formals.Cells) > 0 && fn.Formals.Cells[0].Kind == KindSymbol && fn.Formals.Cells[0].Text == "&" {
		if len(fn.Formals.Cells) != 2 {
			return errf("Function format invalid. Symbol '&' not followed by single symbol.")
		}
		popChild(fn.Formals, 0)
		rest := popChild(fn.Formals, 0)
		fn.Env.Put(rest.Text, qexpr())
	}

	if len(fn.Formals.Cells) == 0 {
		// Late-bound parent pointer: set at call entry, not at closure
		// creation time (see spec.md §4.5, §9).
		fn.Env.Parent = callerEnv
		body := fn.Body.Copy()
		body.Kind = KindSExpr
		return Eval(fn.Env, body)
	}

	// Partial application: remaining formals, bindings already installed.
	return fun(fn).Copy()
}
