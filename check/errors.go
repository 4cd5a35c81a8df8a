package check

import (
	"fmt"

	. "github.com/sukikrishna/dependent-type/common"
	"github.com/sukikrishna/dependent-type/tree"
)

// Each violated typing premise raises one of these conditions. The
// checker is fail-fast: the first violation aborts the whole check.

type UnboundVariableError struct {
	Name Identifier
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable: %v", e.Name)
}

// KindMismatchError reports a Sort-classified position whose type does
// not normalize to Sort.
type KindMismatchError struct {
	Term tree.Term
	Type tree.Term
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%v must have type %v, has %v", e.Term, tree.TheSort, e.Type)
}

type NotAFunctionTypeError struct {
	Func tree.Term
	Type tree.Term
}

func (e *NotAFunctionTypeError) Error() string {
	return fmt.Sprintf("%v is applied but has non-Pi type %v", e.Func, e.Type)
}

type ArgumentTypeMismatchError struct {
	Arg  tree.Term
	Want tree.Term
	Got  tree.Term
}

func (e *ArgumentTypeMismatchError) Error() string {
	return fmt.Sprintf("argument %v has type %v, want %v", e.Arg, e.Got, e.Want)
}

type NotANatError struct {
	Term tree.Term
	Type tree.Term
}

func (e *NotANatError) Error() string {
	return fmt.Sprintf("%v must have type %v, has %v", e.Term, tree.TheNat, e.Type)
}

type MotiveShapeMismatchError struct {
	Motive tree.Term
	Type   tree.Term
}

func (e *MotiveShapeMismatchError) Error() string {
	return fmt.Sprintf("motive %v must have type Π_:Nat.*, has %v", e.Motive, e.Type)
}

type BaseCaseMismatchError struct {
	Base tree.Term
	Want tree.Term
	Got  tree.Term
}

func (e *BaseCaseMismatchError) Error() string {
	return fmt.Sprintf("base case %v has type %v, want %v", e.Base, e.Got, e.Want)
}

type InductiveStepMismatchError struct {
	Step tree.Term
	Want tree.Term
	Got  tree.Term
}

func (e *InductiveStepMismatchError) Error() string {
	return fmt.Sprintf("inductive step %v has type %v, want %v", e.Step, e.Got, e.Want)
}
