package tree

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	. "github.com/sukikrishna/dependent-type/common"
)

// Term is the closed set of expression variants. Terms are immutable:
// every transform yields a new tree.
type Term interface {
	_Term()
}

type TermBase struct{}

func (TermBase) _Term() {}

type Var struct {
	TermBase
	Name Identifier
}

func (t *Var) String() string {
	return t.Name.Value
}

// Sort is the single impredicative universe. It classifies all types,
// including itself (Sort : Sort).
type Sort struct {
	TermBase
}

var TheSort = &Sort{}

func (*Sort) String() string {
	return "*"
}

// Pi is the dependent function type. Occurrences of Binder in Codomain
// denote the eventual argument.
type Pi struct {
	TermBase
	Binder   Identifier
	Domain   Term
	Codomain Term
}

func (t *Pi) String() string {
	return fmt.Sprintf("Π%v:%v.%v", t.Binder, t.Domain, t.Codomain)
}

type Lam struct {
	TermBase
	Binder Identifier
	Domain Term
	Body   Term
}

func (t *Lam) String() string {
	return fmt.Sprintf("λ%v:%v.%v", t.Binder, t.Domain, t.Body)
}

type App struct {
	TermBase
	Func Term
	Arg  Term
}

func (t *App) String() string {
	return fmt.Sprintf("(%v %v)", t.Func, t.Arg)
}

type Nat struct {
	TermBase
}

var TheNat = &Nat{}

func (*Nat) String() string {
	return "Nat"
}

type Zero struct {
	TermBase
}

var TheZero = &Zero{}

func (*Zero) String() string {
	return "zero"
}

type Succ struct {
	TermBase
	Operand Term
}

func (t *Succ) String() string {
	return fmt.Sprintf("(succ %v)", t.Operand)
}

// NatElim is the induction principle for Nat. Motive is a type family
// over Nat, Base inhabits Motive(zero), Step takes a predecessor and
// the recursive result to Motive(succ pred), Target is the natural
// being eliminated.
type NatElim struct {
	TermBase
	Motive Term
	Base   Term
	Step   Term
	Target Term
}

func (t *NatElim) String() string {
	parts := lo.Map([]Term{t.Motive, t.Base, t.Step, t.Target}, func(part Term, _ int) string {
		return fmt.Sprintf("%v", part)
	})
	return fmt.Sprintf("elim(%v)", strings.Join(parts, ", "))
}
