package tree

import (
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"

	. "github.com/sukikrishna/dependent-type/common"
)

// FreeVars collects the free identifiers of a term. Pi and Lam remove
// their binder from the codomain/body contribution only; the domain is
// outside the binder's scope.
func FreeVars(t Term) Set[Identifier] {
	switch t := t.(type) {
	case *Var:
		free := NewSet[Identifier]()
		free.Add(t.Name)
		return free
	case *Sort, *Nat, *Zero:
		return NewSet[Identifier]()
	case *Pi:
		under := FreeVars(t.Codomain)
		under.Remove(t.Binder)
		return MergeSets(FreeVars(t.Domain), under)
	case *Lam:
		under := FreeVars(t.Body)
		under.Remove(t.Binder)
		return MergeSets(FreeVars(t.Domain), under)
	case *App:
		return MergeSets(FreeVars(t.Func), FreeVars(t.Arg))
	case *Succ:
		return FreeVars(t.Operand)
	case *NatElim:
		return MergeSets(FreeVars(t.Motive), FreeVars(t.Base), FreeVars(t.Step), FreeVars(t.Target))
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// FreeVarNames lists the free identifiers in sorted order.
func FreeVarNames(t Term) []string {
	free := FreeVars(t)
	names := make([]string, 0, len(free))
	for name := range free {
		names = append(names, name.Value)
	}
	slices.Sort(names)
	return names
}
