package tree

import (
	"github.com/davecgh/go-spew/spew"
)

// Equal reports structural equality of two term trees. Binder names
// compare literally; callers that need definitional equality must
// normalize both sides first.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Name == b.Name
	case *Sort:
		_, ok := b.(*Sort)
		return ok
	case *Pi:
		b, ok := b.(*Pi)
		return ok && a.Binder == b.Binder && Equal(a.Domain, b.Domain) && Equal(a.Codomain, b.Codomain)
	case *Lam:
		b, ok := b.(*Lam)
		return ok && a.Binder == b.Binder && Equal(a.Domain, b.Domain) && Equal(a.Body, b.Body)
	case *App:
		b, ok := b.(*App)
		return ok && Equal(a.Func, b.Func) && Equal(a.Arg, b.Arg)
	case *Nat:
		_, ok := b.(*Nat)
		return ok
	case *Zero:
		_, ok := b.(*Zero)
		return ok
	case *Succ:
		b, ok := b.(*Succ)
		return ok && Equal(a.Operand, b.Operand)
	case *NatElim:
		b, ok := b.(*NatElim)
		return ok && Equal(a.Motive, b.Motive) && Equal(a.Base, b.Base) &&
			Equal(a.Step, b.Step) && Equal(a.Target, b.Target)
	default:
		spew.Dump(a, b)
		panic("unreachable")
	}
}
