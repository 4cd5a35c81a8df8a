package check

import (
	"github.com/davecgh/go-spew/spew"

	. "github.com/sukikrishna/dependent-type/common"
	"github.com/sukikrishna/dependent-type/eval"
	"github.com/sukikrishna/dependent-type/tree"
)

type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

// Check computes the type of t in env, converting the first violated
// typing premise into a returned error.
func (c *Checker) Check(env *Env, t tree.Term) (tree.Term, error) {
	return Try(func() tree.Term {
		return c.TypeOf(env, t)
	})
}

// TypeOf computes the type of t in env. Violated premises panic with
// the typed error conditions in errors.go; Check recovers them.
func (c *Checker) TypeOf(env *Env, t tree.Term) tree.Term {
	switch t := t.(type) {
	case *tree.Var:
		return c.TypeOfVar(env, t)
	case *tree.Sort:
		return tree.TheSort
	case *tree.Pi:
		return c.TypeOfPi(env, t)
	case *tree.Lam:
		return c.TypeOfLam(env, t)
	case *tree.App:
		return c.TypeOfApp(env, t)
	case *tree.Nat:
		return tree.TheSort
	case *tree.Zero:
		return tree.TheNat
	case *tree.Succ:
		return c.TypeOfSucc(env, t)
	case *tree.NatElim:
		return c.TypeOfNatElim(env, t)
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

func (c *Checker) TypeOfVar(env *Env, t *tree.Var) tree.Term {
	ty, ok := env.Lookup(t.Name)
	if !ok {
		panic(&UnboundVariableError{Name: t.Name})
	}
	return ty
}

func (c *Checker) TypeOfPi(env *Env, t *tree.Pi) tree.Term {
	c.CheckIsSort(env, t.Domain)

	scope := env.Fork()
	scope.Def(t.Binder, t.Domain)
	c.CheckIsSort(scope, t.Codomain)

	return tree.TheSort
}

func (c *Checker) TypeOfLam(env *Env, t *tree.Lam) tree.Term {
	c.CheckIsSort(env, t.Domain)

	scope := env.Fork()
	scope.Def(t.Binder, t.Domain)
	bodyTy := c.TypeOf(scope, t.Body)

	// Callers normalize this Pi before comparing it.
	return &tree.Pi{Binder: t.Binder, Domain: t.Domain, Codomain: bodyTy}
}

func (c *Checker) TypeOfApp(env *Env, t *tree.App) tree.Term {
	funcTy := eval.Normalize(c.TypeOf(env, t.Func))
	pi, ok := funcTy.(*tree.Pi)
	if !ok {
		panic(&NotAFunctionTypeError{Func: t.Func, Type: funcTy})
	}

	argTy := eval.Normalize(c.TypeOf(env, t.Arg))
	domain := eval.Normalize(pi.Domain)
	if !tree.Equal(argTy, domain) {
		panic(&ArgumentTypeMismatchError{Arg: t.Arg, Want: domain, Got: argTy})
	}

	return eval.Normalize(tree.Subst(pi.Binder, t.Arg, pi.Codomain))
}

func (c *Checker) TypeOfSucc(env *Env, t *tree.Succ) tree.Term {
	operandTy := eval.Normalize(c.TypeOf(env, t.Operand))
	if _, ok := operandTy.(*tree.Nat); !ok {
		panic(&NotANatError{Term: t.Operand, Type: operandTy})
	}
	return tree.TheNat
}

func (c *Checker) TypeOfNatElim(env *Env, t *tree.NatElim) tree.Term {
	targetTy := eval.Normalize(c.TypeOf(env, t.Target))
	if _, ok := targetTy.(*tree.Nat); !ok {
		panic(&NotANatError{Term: t.Target, Type: targetTy})
	}

	motiveTy := eval.Normalize(c.TypeOf(env, t.Motive))
	if !c.IsNatToSortPi(motiveTy) {
		panic(&MotiveShapeMismatchError{Motive: t.Motive, Type: motiveTy})
	}

	baseTy := eval.Normalize(c.TypeOf(env, t.Base))
	wantBase := eval.Normalize(&tree.App{Func: t.Motive, Arg: tree.TheZero})
	if !tree.Equal(baseTy, wantBase) {
		panic(&BaseCaseMismatchError{Base: t.Base, Want: wantBase, Got: baseTy})
	}

	stepTy := eval.Normalize(c.TypeOf(env, t.Step))
	wantStep := eval.Normalize(c.InductiveStepType(t.Motive))
	if !tree.Equal(stepTy, wantStep) {
		panic(&InductiveStepMismatchError{Step: t.Step, Want: wantStep, Got: stepTy})
	}

	return eval.Normalize(&tree.App{Func: t.Motive, Arg: t.Target})
}

// InductiveStepType builds Πn:Nat. Πih:(motive n). motive (succ n),
// the required shape of the induction hypothesis.
func (c *Checker) InductiveStepType(motive tree.Term) tree.Term {
	n := NewIdentifier("n")
	ih := NewIdentifier("ih")
	return &tree.Pi{
		Binder: n,
		Domain: tree.TheNat,
		Codomain: &tree.Pi{
			Binder: ih,
			Domain: &tree.App{Func: motive, Arg: &tree.Var{Name: n}},
			Codomain: &tree.App{
				Func: motive,
				Arg:  &tree.Succ{Operand: &tree.Var{Name: n}},
			},
		},
	}
}

func (c *Checker) IsNatToSortPi(ty tree.Term) bool {
	pi, ok := ty.(*tree.Pi)
	if !ok {
		return false
	}
	if _, ok := eval.Normalize(pi.Domain).(*tree.Nat); !ok {
		return false
	}
	if _, ok := eval.Normalize(pi.Codomain).(*tree.Sort); !ok {
		return false
	}
	return true
}

// CheckIsSort checks that t is a type: its type must normalize to Sort.
func (c *Checker) CheckIsSort(env *Env, t tree.Term) {
	ty := eval.Normalize(c.TypeOf(env, t))
	if _, ok := ty.(*tree.Sort); !ok {
		panic(&KindMismatchError{Term: t, Type: ty})
	}
}
