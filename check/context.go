package check

import (
	. "github.com/sukikrishna/dependent-type/common"
	"github.com/sukikrishna/dependent-type/tree"
)

// Env maps free identifiers to their declared types. Scopes chain
// through Parent; a Fork per binder keeps outer frames untouched.
type Env struct {
	Parent *Env
	Types  Map[Identifier, tree.Term]
}

func NewEnv() *Env {
	return &Env{Types: NewMap[Identifier, tree.Term]()}
}

func (e *Env) Fork() *Env {
	return &Env{Parent: e, Types: NewMap[Identifier, tree.Term]()}
}

func (e *Env) Lookup(name Identifier) (tree.Term, bool) {
	if e.Types.Contains(name) {
		return e.Types[name], true
	}
	if e.Parent != nil {
		return e.Parent.Lookup(name)
	}
	return nil, false
}

func (e *Env) Def(name Identifier, ty tree.Term) {
	e.Types.Add(name, ty)
}
