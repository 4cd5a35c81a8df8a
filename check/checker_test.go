package check

import (
	"errors"
	"testing"

	"github.com/sukikrishna/dependent-type/arith"
	. "github.com/sukikrishna/dependent-type/common"
	"github.com/sukikrishna/dependent-type/eval"
	"github.com/sukikrishna/dependent-type/tree"
)

var (
	xIdent = NewIdentifier("x")
	aIdent = NewIdentifier("A")
)

// polyId is λA:*. λx:A. x, the dependent identity function.
func polyId() tree.Term {
	return &tree.Lam{
		Binder: aIdent, Domain: tree.TheSort,
		Body: &tree.Lam{
			Binder: xIdent, Domain: &tree.Var{Name: aIdent},
			Body: &tree.Var{Name: xIdent},
		},
	}
}

func mustTypeOf(t *testing.T, term tree.Term) tree.Term {
	t.Helper()
	ty, err := NewChecker().Check(NewEnv(), term)
	if err != nil {
		t.Fatalf("Check(%v): %v", term, err)
	}
	return ty
}

func TestTypeOfAxioms(t *testing.T) {
	tests := []struct {
		name string
		term tree.Term
		want tree.Term
	}{
		{"sort in sort", tree.TheSort, tree.TheSort},
		{"nat is a type", tree.TheNat, tree.TheSort},
		{"zero is a nat", tree.TheZero, tree.TheNat},
		{"succ chain is a nat", tree.IntToNat(3), tree.TheNat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustTypeOf(t, tt.term); !tree.Equal(got, tt.want) {
				t.Errorf("TypeOf(%v) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestTypeOfVarLookup(t *testing.T) {
	env := NewEnv()
	env.Def(xIdent, tree.TheNat)
	ty, err := NewChecker().Check(env, &tree.Var{Name: xIdent})
	if err != nil {
		t.Fatal(err)
	}
	if !tree.Equal(ty, tree.TheNat) {
		t.Errorf("TypeOf(x) = %v, want Nat", ty)
	}
}

func TestUnboundVariable(t *testing.T) {
	_, err := NewChecker().Check(NewEnv(), &tree.Var{Name: xIdent})
	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Fatalf("err = %v, want UnboundVariableError", err)
	}
	if unbound.Name != xIdent {
		t.Errorf("unbound name = %v, want x", unbound.Name)
	}
}

func TestTypeOfLamAndPi(t *testing.T) {
	lam := &tree.Lam{Binder: xIdent, Domain: tree.TheNat, Body: &tree.Var{Name: xIdent}}
	want := &tree.Pi{Binder: xIdent, Domain: tree.TheNat, Codomain: tree.TheNat}
	if got := mustTypeOf(t, lam); !tree.Equal(got, want) {
		t.Errorf("TypeOf(%v) = %v, want %v", lam, got, want)
	}

	pi := &tree.Pi{Binder: xIdent, Domain: tree.TheNat, Codomain: tree.TheNat}
	if got := mustTypeOf(t, pi); !tree.Equal(got, tree.TheSort) {
		t.Errorf("TypeOf(%v) = %v, want Sort", pi, got)
	}
}

func TestKindMismatch(t *testing.T) {
	// zero is not a type, so it cannot be a Lam domain.
	lam := &tree.Lam{Binder: xIdent, Domain: tree.TheZero, Body: &tree.Var{Name: xIdent}}
	_, err := NewChecker().Check(NewEnv(), lam)
	var kind *KindMismatchError
	if !errors.As(err, &kind) {
		t.Fatalf("err = %v, want KindMismatchError", err)
	}
}

func TestNotAFunctionType(t *testing.T) {
	app := &tree.App{Func: tree.TheZero, Arg: tree.TheZero}
	_, err := NewChecker().Check(NewEnv(), app)
	var notFn *NotAFunctionTypeError
	if !errors.As(err, &notFn) {
		t.Fatalf("err = %v, want NotAFunctionTypeError", err)
	}
}

func TestArgumentTypeMismatch(t *testing.T) {
	id := &tree.Lam{Binder: xIdent, Domain: tree.TheNat, Body: &tree.Var{Name: xIdent}}
	app := &tree.App{Func: id, Arg: tree.TheNat}
	_, err := NewChecker().Check(NewEnv(), app)
	var mismatch *ArgumentTypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want ArgumentTypeMismatchError", err)
	}
}

func TestDependentApplication(t *testing.T) {
	// (λA:*. λx:A. x) Nat zero : Nat — the codomain computes.
	applied := &tree.App{
		Func: &tree.App{Func: polyId(), Arg: tree.TheNat},
		Arg:  tree.TheZero,
	}
	if got := mustTypeOf(t, applied); !tree.Equal(got, tree.TheNat) {
		t.Errorf("TypeOf = %v, want Nat", got)
	}

	partial := &tree.App{Func: polyId(), Arg: tree.TheNat}
	got := eval.Normalize(mustTypeOf(t, partial))
	want := &tree.Pi{Binder: xIdent, Domain: tree.TheNat, Codomain: tree.TheNat}
	if !tree.Equal(got, want) {
		t.Errorf("TypeOf = %v, want %v", got, want)
	}
}

func TestSuccOperandMustBeNat(t *testing.T) {
	succ := &tree.Succ{Operand: tree.TheNat}
	_, err := NewChecker().Check(NewEnv(), succ)
	var notNat *NotANatError
	if !errors.As(err, &notNat) {
		t.Fatalf("err = %v, want NotANatError", err)
	}
}

func constMotive() tree.Term {
	return &tree.Lam{Binder: IgnoreIdent, Domain: tree.TheNat, Body: tree.TheNat}
}

func wellTypedStep() tree.Term {
	n := NewIdentifier("n")
	ih := NewIdentifier("ih")
	return &tree.Lam{
		Binder: n, Domain: tree.TheNat,
		Body: &tree.Lam{
			Binder: ih, Domain: tree.TheNat,
			Body: &tree.Succ{Operand: &tree.Var{Name: ih}},
		},
	}
}

func TestNatElimTargetMustBeNat(t *testing.T) {
	elim := &tree.NatElim{
		Motive: constMotive(),
		Base:   tree.TheZero,
		Step:   wellTypedStep(),
		Target: tree.TheNat,
	}
	_, err := NewChecker().Check(NewEnv(), elim)
	var notNat *NotANatError
	if !errors.As(err, &notNat) {
		t.Fatalf("err = %v, want NotANatError", err)
	}
}

func TestNatElimMotiveShape(t *testing.T) {
	elim := &tree.NatElim{
		Motive: tree.TheZero,
		Base:   tree.TheZero,
		Step:   wellTypedStep(),
		Target: tree.TheZero,
	}
	_, err := NewChecker().Check(NewEnv(), elim)
	var shape *MotiveShapeMismatchError
	if !errors.As(err, &shape) {
		t.Fatalf("err = %v, want MotiveShapeMismatchError", err)
	}
}

func TestNatElimBaseCaseMismatch(t *testing.T) {
	elim := &tree.NatElim{
		Motive: constMotive(),
		Base:   tree.TheNat, // : Sort, not motive(zero) = Nat
		Step:   wellTypedStep(),
		Target: tree.TheZero,
	}
	_, err := NewChecker().Check(NewEnv(), elim)
	var base *BaseCaseMismatchError
	if !errors.As(err, &base) {
		t.Fatalf("err = %v, want BaseCaseMismatchError", err)
	}
}

func TestNatElimInductiveStepMismatch(t *testing.T) {
	// The step is missing the induction-hypothesis argument; this must
	// be rejected, never silently typechecked.
	n := NewIdentifier("n")
	badStep := &tree.Lam{
		Binder: n, Domain: tree.TheNat,
		Body: &tree.Succ{Operand: &tree.Var{Name: n}},
	}
	elim := &tree.NatElim{
		Motive: constMotive(),
		Base:   tree.TheZero,
		Step:   badStep,
		Target: tree.TheZero,
	}
	_, err := NewChecker().Check(NewEnv(), elim)
	var step *InductiveStepMismatchError
	if !errors.As(err, &step) {
		t.Fatalf("err = %v, want InductiveStepMismatchError", err)
	}
}

func TestNatElimComputesMotiveOfTarget(t *testing.T) {
	elim := &tree.NatElim{
		Motive: constMotive(),
		Base:   tree.TheZero,
		Step:   wellTypedStep(),
		Target: tree.IntToNat(2),
	}
	if got := mustTypeOf(t, elim); !tree.Equal(got, tree.TheNat) {
		t.Errorf("TypeOf = %v, want Nat", got)
	}
}

func TestPreservation(t *testing.T) {
	checker := NewChecker()
	term := arith.Apply(arith.Add(), tree.IntToNat(2), tree.IntToNat(2))
	wantTy := eval.Normalize(mustTypeOf(t, term))

	for steps := 0; ; steps++ {
		next, ok := eval.Step(term)
		if !ok {
			break
		}
		term = next
		ty, err := checker.Check(NewEnv(), term)
		if err != nil {
			t.Fatalf("step %d: %v became ill-typed: %v", steps, term, err)
		}
		if got := eval.Normalize(ty); !tree.Equal(got, wantTy) {
			t.Fatalf("step %d: type changed to %v, want %v", steps, got, wantTy)
		}
		if steps > 1000 {
			t.Fatal("evaluation did not terminate")
		}
	}
}

func TestProgress(t *testing.T) {
	// Well-typed closed non-values must step.
	terms := []tree.Term{
		arith.Apply(arith.Add(), tree.IntToNat(1), tree.IntToNat(1)),
		arith.Apply(arith.Mult(), tree.IntToNat(2), tree.IntToNat(2)),
		&tree.App{Func: polyId(), Arg: tree.TheNat},
		&tree.NatElim{
			Motive: constMotive(),
			Base:   tree.TheZero,
			Step:   wellTypedStep(),
			Target: tree.TheZero,
		},
	}
	for _, term := range terms {
		mustTypeOf(t, term)
		if _, ok := eval.Step(term); !ok {
			t.Errorf("well-typed non-value %v is stuck", term)
		}
	}
}
