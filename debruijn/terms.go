// Package debruijn is the index-scheme rendition of the calculus:
// binders carry no names and a variable is the count of binders
// between its use and its binder. It is a self-contained reference
// implementation; its terms never mix with the named tree package.
package debruijn

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Term interface {
	_Term()
}

type TermBase struct{}

func (TermBase) _Term() {}

// Var counts enclosing binders outward from the point of use, starting
// at zero.
type Var struct {
	TermBase
	Index int
}

func (t *Var) String() string {
	return fmt.Sprintf("#%d", t.Index)
}

type Sort struct {
	TermBase
}

var TheSort = &Sort{}

func (*Sort) String() string {
	return "*"
}

type Pi struct {
	TermBase
	Domain   Term
	Codomain Term
}

func (t *Pi) String() string {
	return fmt.Sprintf("Π%v.%v", t.Domain, t.Codomain)
}

type Lam struct {
	TermBase
	Domain Term
	Body   Term
}

func (t *Lam) String() string {
	return fmt.Sprintf("λ%v.%v", t.Domain, t.Body)
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
