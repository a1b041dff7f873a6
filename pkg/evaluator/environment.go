package evaluator

import "lwhlisp/pkg/types"

// Environment is a mapping from symbol name to Value, plus an optional
// parent environment; bindings in a child shadow those in a parent.
type Environment struct {
	bindings map[string]types.Value
	parent   *Environment
}

// NewEnvironment creates an empty frame chained to the optional parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]types.Value), parent: parent}
}

// Get returns the binding from the nearest frame that has it.
func (e *Environment) Get(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set inserts or replaces the binding in this frame only.
func (e *Environment) Set(name string, value types.Value) {
	e.bindings[name] = value
}

// Root walks the parent chain to its terminus.
func (e *Environment) Root() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// AppendToRoot walks this environment's parent chain to its terminus and
// attaches parent there. This mutates whatever environment sits at the end
// of the chain — typically the shared root environment — which is what
// gives closure calls their dynamic-scope lookup fallback: a call can still
// resolve a name bound only in the caller's environment once the lexical
// chain is exhausted.
//
// Every call frame's captured-environment chain bottoms out at the same
// shared root, so a caller is very often already reachable from that
// terminus (trivially so for a call made directly at the top level, where
// the caller environment *is* the root). Attaching it again in that case
// would link the terminus to something that already loops back to the
// terminus, turning the parent chain into a cycle and hanging every later
// Get/Root on it. So the terminus is only extended when parent does not
// already lead back to it.
func (e *Environment) AppendToRoot(parent *Environment) {
	terminus := e.Root()
	if reaches(parent, terminus) {
		return
	}
	terminus.parent = parent
}

// reaches reports whether walking from's parent chain ever arrives at to.
func reaches(from, to *Environment) bool {
	for env := from; env != nil; env = env.parent {
		if env == to {
			return true
		}
	}
	return false
}

// newCallEnvironment builds the environment a closure/macro body runs in:
// a fresh frame parented to the captured environment, with the caller's
// environment appended at the end of that chain.
func newCallEnvironment(captured, caller *Environment) *Environment {
	env := NewEnvironment(captured)
	env.AppendToRoot(caller)
	return env
}
