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

// NewGlobalEnvironment builds a fresh top-level Environment with every
// built-in from spec.md §4.6 plus the SPEC_FULL.md §4.10 additions
// registered, the way the teacher's init_* functions populate Globalenv.
func NewGlobalEnvironment() *Environment {
	env := NewEnvironment()
	initListBuiltins(env)
	initArithBuiltins(env)
	initCtrlBuiltins(env)
	initDefBuiltins(env)
	initIOBuiltins(env)
	initIntrospectBuiltins(env)
	return env
}
