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

func initArithBuiltins(env *Environment) {
	ops := []struct {
		sym, name, desc string
	}{
		{"+", "add", "sums one or more numbers"},
		{"-", "sub", "subtracts all following numbers from the first, or negates a single argument"},
		{"*", "mul", "multiplies one or more numbers"},
		{"/", "div", "divides the first number by all following numbers"},
	}
	for _, o := range ops {
		op := o.sym
		Declare(env, &Declaration{
			Name: o.sym, Desc: o.desc,
			MinParameter: 1, MaxParameter: -1,
			Params: []DeclarationParameter{{"nums", "number", "operands"}},
		}, func(env *Environment, args *Value) *Value { return builtinArith(op, args) })
	}

	cmps := []struct {
		sym, desc string
	}{
		{">", "true (1) if the first argument is greater than the second"},
		{"<", "true (1) if the first argument is less than the second"},
		{">=", "true (1) if the first argument is greater than or equal to the second"},
		{"<=", "true (1) if the first argument is less than or equal to the second"},
	}
	for _, c := range cmps {
		op := c.sym
		Declare(env, &Declaration{
			Name: op, Desc: c.desc,
			MinParameter: 2, MaxParameter: 2,
			Params: []DeclarationParameter{{"a", "number", "left operand"}, {"b", "number", "right operand"}},
		}, func(env *Environment, args *Value) *Value { return builtinOrder(op, args) })
	}

	Declare(env, &Declaration{
		Name: "==", Desc: "true (1) if both arguments are structurally equal",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{{"a", "any", "left operand"}, {"b", "any", "right operand"}},
	}, func(env *Environment, args *Value) *Value { return builtinEquality(args, true) })

	Declare(env, &Declaration{
		Name: "!=", Desc: "true (1) if both arguments are not structurally equal",
		MinParameter: 2, MaxParameter: 2,
		Params: []DeclarationParameter{{"a", "any", "left operand"}, {"b", "any", "right operand"}},
	}, func(env *Environment, args *Value) *Value { return builtinEquality(args, false) })
}

func builtinArith(op string, args *Value) *Value {
	if e := checkArgs(op, args, KindNumber, -1); e != nil {
		return e
	}

	acc := args.Cells[0].Num
	rest := args.Cells[1:]

	if op == "-" && len(rest) == 0 {
		return num(-acc)
	}

	for _, c := range rest {
		switch op {
		case "+":
			acc += c.Num
		case "-":
			acc -= c.Num
		case "*":
			acc *= c.Num
		case "/":
			if c.Num == 0 {
				return errf("Division By Zero!")
			}
			acc /= c.Num
		}
	}
	return num(acc)
}

func builtinOrder(op string, args *Value) *Value {
	if e := checkArgs(op, args, KindNumber, 2); e != nil {
		return e
	}
	a, b := args.Cells[0].Num, args.Cells[1].Num
	var r bool
	switch op {
	case ">":
		r = a > b
	case "<":
		r = a < b
	case ">=":
		r = a >= b
	case "<=":
		r = a <= b
	}
	return boolNum(r)
}

func builtinEquality(args *Value, want bool) *Value {
	name := "=="
	if !want {
		name = "!="
	}
	if len(args.Cells) != 2 {
		return errf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, len(args.Cells), 2)
	}
	eq := Equal(args.Cells[0], args.Cells[1])
	return boolNum(eq == want)
}

func boolNum(b bool) *Value {
	if b {
		return num(1)
	}
	return num(0)
}
