package tree

import (
	"fmt"

	. "github.com/sukikrishna/dependent-type/common"
)

// NotANaturalError reports a term that is not a pure zero/succ chain.
type NotANaturalError struct {
	Term Term
}

func (e *NotANaturalError) Error() string {
	return fmt.Sprintf("not a natural number: %v", e.Term)
}

// NatToInt converts a zero/succ chain to a host integer.
func NatToInt(t Term) (int, error) {
	n := 0
	for {
		switch chain := t.(type) {
		case *Zero:
			return n, nil
		case *Succ:
			n++
			t = chain.Operand
		default:
			return 0, &NotANaturalError{Term: t}
		}
	}
}

// IntToNat builds the succ chain of length n. n must be non-negative.
func IntToNat(n int) Term {
	Assert(n >= 0, "IntToNat: negative input")
	var t Term = TheZero
	for ; n > 0; n-- {
		t = &Succ{Operand: t}
	}
	return t
}
