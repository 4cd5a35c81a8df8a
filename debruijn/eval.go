package debruijn

import (
	"github.com/davecgh/go-spew/spew"
)

// SubstTop substitutes arg for the outermost binder of body, then
// closes the gap the binder leaves behind. Without the final downshift
// every variable pointing past the binder drifts by one, which is the
// bookkeeping defect that makes addition non-commutative.
func SubstTop(body, arg Term) Term {
	return Shift(Subst(body, 0, Shift(arg, 1, 0)), -1, 0)
}

// Step performs one reduction step, or reports false when no redex
// remains. Stuck terms are normal forms here, never errors.
func Step(t Term) (Term, bool) {
	switch t := t.(type) {
	case *Var, *Sort, *Nat, *Zero:
		return t, false
	case *App:
		if lam, ok := t.Func.(*Lam); ok {
			return SubstTop(lam.Body, t.Arg), true
		}
		if fn, ok := Step(t.Func); ok {
			return &App{Func: fn, Arg: t.Arg}, true
		}
		if arg, ok := Step(t.Arg); ok {
			return &App{Func: t.Func, Arg: arg}, true
		}
		return t, false
	case *Lam:
		if body, ok := Step(t.Body); ok {
			return &Lam{Domain: t.Domain, Body: body}, true
		}
		return t, false
	case *Pi:
		if domain, ok := Step(t.Domain); ok {
			return &Pi{Domain: domain, Codomain: t.Codomain}, true
		}
		if codomain, ok := Step(t.Codomain); ok {
			return &Pi{Domain: t.Domain, Codomain: codomain}, true
		}
		return t, false
	case *Succ:
		if operand, ok := Step(t.Operand); ok {
			return &Succ{Operand: operand}, true
		}
		return t, false
	case *NatElim:
		switch target := t.Target.(type) {
		case *Zero:
			return t.Base, true
		case *Succ:
			rec := &NatElim{Motive: t.Motive, Base: t.Base, Step: t.Step, Target: target.Operand}
			return &App{Func: &App{Func: t.Step, Arg: target.Operand}, Arg: rec}, true
		default:
			if target, ok := Step(t.Target); ok {
				return &NatElim{Motive: t.Motive, Base: t.Base, Step: t.Step, Target: target}, true
			}
			return t, false
		}
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// Normalize repeats Step until no redex remains.
func Normalize(t Term) Term {
	for {
		next, ok := Step(t)
		if !ok {
			return t
		}
		t = next
	}
}

// NormalizeBounded is Normalize with a step cap; it returns the
// best-effort term and whether a normal form was reached.
func NormalizeBounded(t Term, limit int) (Term, bool) {
	for i := 0; i < limit; i++ {
		next, ok := Step(t)
		if !ok {
			return t, true
		}
		t = next
	}
	if _, ok := Step(t); !ok {
		return t, true
	}
	return t, false
}
