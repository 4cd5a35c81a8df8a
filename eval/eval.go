package eval

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/sukikrishna/dependent-type/tree"
)

// Step performs one reduction step. It returns the reduced term and
// true, or the term unchanged and false when no redex remains. A stuck
// application of a non-function is not an error here; ruling those out
// is the type checker's job.
func Step(t tree.Term) (tree.Term, bool) {
	switch t := t.(type) {
	case *tree.Var, *tree.Sort, *tree.Nat, *tree.Zero:
		return t, false
	case *tree.App:
		if lam, ok := t.Func.(*tree.Lam); ok {
			return tree.Subst(lam.Binder, t.Arg, lam.Body), true
		}
		if fn, ok := Step(t.Func); ok {
			return &tree.App{Func: fn, Arg: t.Arg}, true
		}
		if arg, ok := Step(t.Arg); ok {
			return &tree.App{Func: t.Func, Arg: arg}, true
		}
		return t, false
	case *tree.Lam:
		if body, ok := Step(t.Body); ok {
			return &tree.Lam{Binder: t.Binder, Domain: t.Domain, Body: body}, true
		}
		return t, false
	case *tree.Pi:
		if domain, ok := Step(t.Domain); ok {
			return &tree.Pi{Binder: t.Binder, Domain: domain, Codomain: t.Codomain}, true
		}
		if codomain, ok := Step(t.Codomain); ok {
			return &tree.Pi{Binder: t.Binder, Domain: t.Domain, Codomain: codomain}, true
		}
		return t, false
	case *tree.Succ:
		if operand, ok := Step(t.Operand); ok {
			return &tree.Succ{Operand: operand}, true
		}
		return t, false
	case *tree.NatElim:
		switch target := t.Target.(type) {
		case *tree.Zero:
			return t.Base, true
		case *tree.Succ:
			// One layer of primitive recursion unfolds symbolically.
			rec := &tree.NatElim{Motive: t.Motive, Base: t.Base, Step: t.Step, Target: target.Operand}
			return &tree.App{Func: &tree.App{Func: t.Step, Arg: target.Operand}, Arg: rec}, true
		default:
			if target, ok := Step(t.Target); ok {
				return &tree.NatElim{Motive: t.Motive, Base: t.Base, Step: t.Step, Target: target}, true
			}
			return t, false
		}
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// Normalize repeats Step until no redex remains. Termination is
// assumed for well-typed terms, not enforced; use NormalizeBounded
// when the input is not known to be well-typed.
func Normalize(t tree.Term) tree.Term {
	for {
		next, ok := Step(t)
		if !ok {
			return t
		}
		t = next
	}
}

// NormalizeBounded is Normalize with a step cap. It returns the
// best-effort term and whether a normal form was reached within limit
// steps. Exceeding the cap is a result, not an error.
func NormalizeBounded(t tree.Term, limit int) (tree.Term, bool) {
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
