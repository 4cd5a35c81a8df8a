package tree

import (
	"github.com/davecgh/go-spew/spew"

	. "github.com/sukikrishna/dependent-type/common"
)

// Subst replaces every free occurrence of x in target with repl. A
// Pi/Lam binder equal to x shadows it, so substitution stops at the
// domain. A binder that collides with a free variable of repl is
// renamed first, so repl's free variables are never captured.
func Subst(x Identifier, repl, target Term) Term {
	switch target := target.(type) {
	case *Var:
		if target.Name == x {
			return repl
		}
		return target
	case *Sort, *Nat, *Zero:
		return target
	case *Pi:
		binder, codomain := substUnderBinder(x, repl, target.Binder, target.Codomain)
		return &Pi{Binder: binder, Domain: Subst(x, repl, target.Domain), Codomain: codomain}
	case *Lam:
		binder, body := substUnderBinder(x, repl, target.Binder, target.Body)
		return &Lam{Binder: binder, Domain: Subst(x, repl, target.Domain), Body: body}
	case *App:
		return &App{Func: Subst(x, repl, target.Func), Arg: Subst(x, repl, target.Arg)}
	case *Succ:
		return &Succ{Operand: Subst(x, repl, target.Operand)}
	case *NatElim:
		return &NatElim{
			Motive: Subst(x, repl, target.Motive),
			Base:   Subst(x, repl, target.Base),
			Step:   Subst(x, repl, target.Step),
			Target: Subst(x, repl, target.Target),
		}
	default:
		spew.Dump(target)
		panic("unreachable")
	}
}

func substUnderBinder(x Identifier, repl Term, binder Identifier, scope Term) (Identifier, Term) {
	if binder == x {
		// Shadowed: x is rebound here, the scope keeps its own x.
		return binder, scope
	}
	if FreeVars(repl).Contains(binder) {
		fresh := freshBinder(binder, MergeSets(FreeVars(repl), FreeVars(scope)))
		scope = Subst(binder, &Var{Name: fresh}, scope)
		binder = fresh
	}
	return binder, Subst(x, repl, scope)
}

func freshBinder(binder Identifier, avoid Set[Identifier]) Identifier {
	fresh := binder.Prime()
	for avoid.Contains(fresh) {
		fresh = fresh.Prime()
	}
	return fresh
}
