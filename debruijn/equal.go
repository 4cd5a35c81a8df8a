package debruijn

import (
	"github.com/davecgh/go-spew/spew"
)

// Equal reports structural equality. With indices instead of binder
// names this is alpha-equivalence by construction.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Index == b.Index
	case *Sort:
		_, ok := b.(*Sort)
		return ok
	case *Pi:
		b, ok := b.(*Pi)
		return ok && Equal(a.Domain, b.Domain) && Equal(a.Codomain, b.Codomain)
	case *Lam:
		b, ok := b.(*Lam)
		return ok && Equal(a.Domain, b.Domain) && Equal(a.Body, b.Body)
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
