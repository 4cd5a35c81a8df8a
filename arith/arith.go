// Package arith holds demonstration programs over the natural numbers,
// built directly from tree constructors. It exercises only the public
// API of the calculus and doubles as the source of black-box test
// fixtures.
package arith

import (
	"github.com/samber/lo"

	. "github.com/sukikrishna/dependent-type/common"
	"github.com/sukikrishna/dependent-type/tree"
)

var (
	a  = NewIdentifier("a")
	b  = NewIdentifier("b")
	m  = NewIdentifier("m")
	n  = NewIdentifier("n")
	ih = NewIdentifier("ih")
)

// Apply folds an application spine f a1 a2 ... over the arguments.
func Apply(f tree.Term, args ...tree.Term) tree.Term {
	return lo.Reduce(args, func(acc tree.Term, arg tree.Term, _ int) tree.Term {
		return &tree.App{Func: acc, Arg: arg}
	}, f)
}

// constMotive is λ_:Nat.Nat, the motive of a non-dependent elimination.
func constMotive() tree.Term {
	return &tree.Lam{Binder: IgnoreIdent, Domain: tree.TheNat, Body: tree.TheNat}
}

// Add eliminates its first argument: base is the second argument, the
// inductive step wraps the recursive result in one succ.
func Add() tree.Term {
	return &tree.Lam{
		Binder: a, Domain: tree.TheNat,
		Body: &tree.Lam{
			Binder: b, Domain: tree.TheNat,
			Body: &tree.NatElim{
				Motive: constMotive(),
				Base:   &tree.Var{Name: b},
				Step: &tree.Lam{
					Binder: n, Domain: tree.TheNat,
					Body: &tree.Lam{
						Binder: ih, Domain: tree.TheNat,
						Body: &tree.Succ{Operand: &tree.Var{Name: ih}},
					},
				},
				Target: &tree.Var{Name: a},
			},
		},
	}
}

// Mult eliminates its first argument: base is zero, the inductive step
// adds the second argument onto the recursive result.
func Mult() tree.Term {
	return &tree.Lam{
		Binder: a, Domain: tree.TheNat,
		Body: &tree.Lam{
			Binder: b, Domain: tree.TheNat,
			Body: &tree.NatElim{
				Motive: constMotive(),
				Base:   tree.TheZero,
				Step: &tree.Lam{
					Binder: n, Domain: tree.TheNat,
					Body: &tree.Lam{
						Binder: ih, Domain: tree.TheNat,
						Body:   Apply(Add(), &tree.Var{Name: b}, &tree.Var{Name: ih}),
					},
				},
				Target: &tree.Var{Name: a},
			},
		},
	}
}

// Factorial eliminates its argument: base is one, the inductive step
// multiplies succ of the predecessor onto the recursive result.
func Factorial() tree.Term {
	return &tree.Lam{
		Binder: m, Domain: tree.TheNat,
		Body: &tree.NatElim{
			Motive: constMotive(),
			Base:   &tree.Succ{Operand: tree.TheZero},
			Step: &tree.Lam{
				Binder: n, Domain: tree.TheNat,
				Body: &tree.Lam{
					Binder: ih, Domain: tree.TheNat,
					Body:   Apply(Mult(), &tree.Succ{Operand: &tree.Var{Name: n}}, &tree.Var{Name: ih}),
				},
			},
			Target: &tree.Var{Name: m},
		},
	}
}
