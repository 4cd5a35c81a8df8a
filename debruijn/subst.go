package debruijn

import (
	"github.com/davecgh/go-spew/spew"
)

// Shift adds by to every variable index >= cutoff. Crossing a binder
// raises the cutoff by one, so indices bound inside the term keep
// denoting the same binder.
func Shift(t Term, by, cutoff int) Term {
	switch t := t.(type) {
	case *Var:
		if t.Index >= cutoff {
			return &Var{Index: t.Index + by}
		}
		return t
	case *Sort, *Nat, *Zero:
		return t
	case *Pi:
		return &Pi{Domain: Shift(t.Domain, by, cutoff), Codomain: Shift(t.Codomain, by, cutoff+1)}
	case *Lam:
		return &Lam{Domain: Shift(t.Domain, by, cutoff), Body: Shift(t.Body, by, cutoff+1)}
	case *App:
		return &App{Func: Shift(t.Func, by, cutoff), Arg: Shift(t.Arg, by, cutoff)}
	case *Succ:
		return &Succ{Operand: Shift(t.Operand, by, cutoff)}
	case *NatElim:
		return &NatElim{
			Motive: Shift(t.Motive, by, cutoff),
			Base:   Shift(t.Base, by, cutoff),
			Step:   Shift(t.Step, by, cutoff),
			Target: Shift(t.Target, by, cutoff),
		}
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// Subst replaces the variable equal to index with repl. Descending into
// a binder bumps the index and shifts repl by one, reflecting the
// extra binder depth.
func Subst(t Term, index int, repl Term) Term {
	switch t := t.(type) {
	case *Var:
		if t.Index == index {
			return repl
		}
		return t
	case *Sort, *Nat, *Zero:
		return t
	case *Pi:
		return &Pi{
			Domain:   Subst(t.Domain, index, repl),
			Codomain: Subst(t.Codomain, index+1, Shift(repl, 1, 0)),
		}
	case *Lam:
		return &Lam{
			Domain: Subst(t.Domain, index, repl),
			Body:   Subst(t.Body, index+1, Shift(repl, 1, 0)),
		}
	case *App:
		return &App{Func: Subst(t.Func, index, repl), Arg: Subst(t.Arg, index, repl)}
	case *Succ:
		return &Succ{Operand: Subst(t.Operand, index, repl)}
	case *NatElim:
		return &NatElim{
			Motive: Subst(t.Motive, index, repl),
			Base:   Subst(t.Base, index, repl),
			Step:   Subst(t.Step, index, repl),
			Target: Subst(t.Target, index, repl),
		}
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}
