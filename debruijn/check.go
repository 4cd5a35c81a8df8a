package debruijn

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/sukikrishna/dependent-type/common"
)

type ErrorKind int

const (
	UnboundVariable ErrorKind = iota
	KindMismatch
	NotAFunctionType
	ArgumentTypeMismatch
	NotANat
	MotiveShapeMismatch
	BaseCaseMismatch
	InductiveStepMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "unbound variable"
	case KindMismatch:
		return "kind mismatch"
	case NotAFunctionType:
		return "not a function type"
	case ArgumentTypeMismatch:
		return "argument type mismatch"
	case NotANat:
		return "not a Nat"
	case MotiveShapeMismatch:
		return "motive shape mismatch"
	case BaseCaseMismatch:
		return "base case mismatch"
	case InductiveStepMismatch:
		return "inductive step mismatch"
	default:
		panic("unreachable")
	}
}

type TypeError struct {
	Kind ErrorKind
	Term Term
	Type Term // the offending computed type, when one exists
}

func (e *TypeError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("%v: %v has type %v", e.Kind, e.Term, e.Type)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Term)
}

// Env is positionally indexed by binder depth: index 0 is the
// innermost binder. A variable that is out of range is a defect of the
// input term, reported as UnboundVariable.
type Env []Term

// Extend pushes a domain type for one binder.
func (e Env) Extend(domain Term) Env {
	return append(Env{domain}, e...)
}

// Lookup shifts the stored type past the binders entered since it was
// pushed, so it stays well-scoped at the use site.
func (e Env) Lookup(index int) (Term, bool) {
	if index < 0 || index >= len(e) {
		return nil, false
	}
	return Shift(e[index], index+1, 0), true
}

// Check computes the type of t in env, converting the first violated
// typing premise into a returned error.
func Check(env Env, t Term) (Term, error) {
	return common.Try(func() Term {
		return TypeOf(env, t)
	})
}

// TypeOf computes the type of t in env, panicking with a *TypeError on
// the first violated premise.
func TypeOf(env Env, t Term) Term {
	switch t := t.(type) {
	case *Var:
		ty, ok := env.Lookup(t.Index)
		if !ok {
			panic(&TypeError{Kind: UnboundVariable, Term: t})
		}
		return ty
	case *Sort:
		return TheSort
	case *Pi:
		checkIsSort(env, t.Domain)
		checkIsSort(env.Extend(t.Domain), t.Codomain)
		return TheSort
	case *Lam:
		checkIsSort(env, t.Domain)
		bodyTy := TypeOf(env.Extend(t.Domain), t.Body)
		return &Pi{Domain: t.Domain, Codomain: bodyTy}
	case *App:
		funcTy := Normalize(TypeOf(env, t.Func))
		pi, ok := funcTy.(*Pi)
		if !ok {
			panic(&TypeError{Kind: NotAFunctionType, Term: t.Func, Type: funcTy})
		}
		argTy := Normalize(TypeOf(env, t.Arg))
		domain := Normalize(pi.Domain)
		if !Equal(argTy, domain) {
			panic(&TypeError{Kind: ArgumentTypeMismatch, Term: t.Arg, Type: argTy})
		}
		return Normalize(SubstTop(pi.Codomain, t.Arg))
	case *Nat:
		return TheSort
	case *Zero:
		return TheNat
	case *Succ:
		operandTy := Normalize(TypeOf(env, t.Operand))
		if _, ok := operandTy.(*Nat); !ok {
			panic(&TypeError{Kind: NotANat, Term: t.Operand, Type: operandTy})
		}
		return TheNat
	case *NatElim:
		return typeOfNatElim(env, t)
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

func typeOfNatElim(env Env, t *NatElim) Term {
	targetTy := Normalize(TypeOf(env, t.Target))
	if _, ok := targetTy.(*Nat); !ok {
		panic(&TypeError{Kind: NotANat, Term: t.Target, Type: targetTy})
	}

	motiveTy := Normalize(TypeOf(env, t.Motive))
	if !isNatToSortPi(motiveTy) {
		panic(&TypeError{Kind: MotiveShapeMismatch, Term: t.Motive, Type: motiveTy})
	}

	baseTy := Normalize(TypeOf(env, t.Base))
	wantBase := Normalize(&App{Func: t.Motive, Arg: TheZero})
	if !Equal(baseTy, wantBase) {
		panic(&TypeError{Kind: BaseCaseMismatch, Term: t.Base, Type: baseTy})
	}

	stepTy := Normalize(TypeOf(env, t.Step))
	wantStep := Normalize(InductiveStepType(t.Motive))
	if !Equal(stepTy, wantStep) {
		panic(&TypeError{Kind: InductiveStepMismatch, Term: t.Step, Type: stepTy})
	}

	return Normalize(&App{Func: t.Motive, Arg: t.Target})
}

// InductiveStepType builds Π Nat. Π (motive #0). (motive (succ #1)),
// shifting the motive under each binder it crosses. Getting these
// shifts wrong is exactly the bookkeeping defect that makes addition
// non-commutative, so they are covered by a regression test.
func InductiveStepType(motive Term) Term {
	return &Pi{
		Domain: TheNat,
		Codomain: &Pi{
			Domain: &App{Func: Shift(motive, 1, 0), Arg: &Var{Index: 0}},
			Codomain: &App{
				Func: Shift(motive, 2, 0),
				Arg:  &Succ{Operand: &Var{Index: 1}},
			},
		},
	}
}

func isNatToSortPi(ty Term) bool {
	pi, ok := ty.(*Pi)
	if !ok {
		return false
	}
	if _, ok := Normalize(pi.Domain).(*Nat); !ok {
		return false
	}
	if _, ok := Normalize(pi.Codomain).(*Sort); !ok {
		return false
	}
	return true
}

func checkIsSort(env Env, t Term) {
	ty := Normalize(TypeOf(env, t))
	if _, ok := ty.(*Sort); !ok {
		panic(&TypeError{Kind: KindMismatch, Term: t, Type: ty})
	}
}
