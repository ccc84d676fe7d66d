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

func initCtrlBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "if", Desc: "evaluates the then-branch if the condition is non-zero, else the else-branch; the unchosen branch is never evaluated",
		MinParameter: 3, MaxParameter: 3,
		Params: []DeclarationParameter{
			{"cond", "number", "condition, non-zero is true"},
			{"then", "list", "Q-Expression evaluated when cond is true"},
			{"else", "list", "Q-Expression evaluated when cond is false"},
		},
	}, builtinIf)
}

func builtinIf(env *Environment, args *Value) *Value {
	if len(args.Cells) != 3 {
		return errf("Function 'if' passed incorrect number of arguments. Got %d, Expected %d.", len(args.Cells), 3)
	}
	cond := args.Cells[0]
	if cond.Kind != KindNumber {
		return errf("Function 'if' passed incorrect type for argument. Got %s, Expected %s.", cond.Kind, KindNumber)
	}
	then, els := args.Cells[1], args.Cells[2]
	if then.Kind != KindQExpr || els.Kind != KindQExpr {
		return errf("Function 'if' passed incorrect type for argument. Got %s, Expected %s.", KindSExpr, KindQExpr)
	}

	var branch *Value
	if cond.Num != 0 {
		branch = popChild(args, 1)
	} else {
		branch = popChild(args, 2)
	}
	branch.Kind = KindSExpr
	return Eval(env, branch)
}
