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
	"strconv"
	"strings"
)

// String renders v the way the REPL echoes a result, per spec.md §4.7.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindNumber:
		return strconv.FormatInt(v.Num, 10)
	case KindError:
		return "Error: " + v.Text
	case KindSymbol:
		return v.Text
	case KindString:
		return `"` + escapeString(v.Text) + `"`
	case KindSExpr:
		return wrap(v.Cells, "(", ")")
	case KindQExpr:
		return wrap(v.Cells, "{", "}")
	case KindFunction:
		return v.Fn.String()
	default:
		return "<unknown>"
	}
}

func (f *Function) String() string {
	if f.IsBuiltin() {
		if f.Name != "" {
			return "<builtin " + f.Name + ">"
		}
		return "<builtin>"
	}
	return "(\\ " + f.Formals.String() + " " + f.Body.String() + ")"
}

func wrap(cells []*Value, open, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteString(close)
	return b.String()
}
