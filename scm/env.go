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

// Environment is a name -> Value mapping with an optional parent, mirroring
// scm.Env's Vars/Outer pair. Insertion order never matters; keys are unique
// within one frame.
type Environment struct {
	vars   map[string]*Value
	Parent *Environment
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*Value)}
}

// Copy is shallow on Parent, deep on stored Values; used whenever a closure
// is copied (partial application, equals-ignoring-env notwithstanding).
func (e *Environment) Copy() *Environment {
	if e == nil {
		return nil
	}
	n := &Environment{vars: make(map[string]*Value, len(e.vars)), Parent: e.Parent}
	for k, v := range e.vars {
		n.vars[k] = v.Copy()
	}
	return n
}

// Get searches this frame, then the parent chain; failure is an Error Value,
// not a Go error, per spec.
func (e *Environment) Get(name string) *Value {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.vars[name]; ok {
			return v.Copy()
		}
	}
	return errf("Unbound Symbol '%s'", name)
}

// Put replaces an existing binding or appends a new one in this frame.
func (e *Environment) Put(name string, v *Value) {
	e.vars[name] = v.Copy()
}

// Def walks to the root via Parent and Puts there (global binding).
func (e *Environment) Def(name string, v *Value) {
	env := e
	for env.Parent != nil {
		env = env.Parent
	}
	env.Put(name, v)
}

// bindings returns every (name, value) pair visible from e, root-first,
// for the (env) introspection builtin; see builtins_introspect.go.
func (e *Environment) bindings() map[string]*Value {
	out := make(map[string]*Value)
	chain := make([]*Environment, 0, 4)
	for env := e; env != nil; env = env.Parent {
		chain = append(chain, env)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].vars {
			out[k] = v
		}
	}
	return out
}
