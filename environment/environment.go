/*
File   : lox-mix/environment/environment.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package environment implements lexically-nested variable bindings: a
// chain of scopes, each owning its own binding map, linked to a
// (non-owning) enclosing scope.
package environment

import "github.com/akashmaji946/lox-mix/value"

// Environment is one scope in the chain. It owns Values outright; Parent
// is a borrowed reference to the enclosing scope, which by construction
// (block entry/exit, §5) always outlives it.
type Environment struct {
	Values map[string]value.Value
	Parent *Environment
}

// New creates a scope enclosed by parent. Pass nil to create the global
// (root) scope.
func New(parent *Environment) *Environment {
	return &Environment{
		Values: make(map[string]value.Value),
		Parent: parent,
	}
}

// Define unconditionally binds name to v in this scope, overwriting any
// existing binding of the same name in this scope.
func (e *Environment) Define(name string, v value.Value) {
	e.Values[name] = v
}

// Get resolves name by walking from this scope outward to the global
// scope. Presence is decided by map membership (Go's comma-ok idiom),
// not by nilness of the stored value, so a variable bound to nil is
// found and returned as nil, not reported as undefined.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.Values[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign updates name in the nearest enclosing scope that already defines
// it, walking outward the same way Get does. It reports false if no
// scope in the chain defines name, leaving every scope untouched.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.Values[name]; ok {
		e.Values[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
