package eval

import (
	"testing"

	. "github.com/sukikrishna/dependent-type/common"
	"github.com/sukikrishna/dependent-type/tree"
)

var x = NewIdentifier("x")

func identity() *tree.Lam {
	return &tree.Lam{Binder: x, Domain: tree.TheNat, Body: &tree.Var{Name: x}}
}

// omega loops forever; it is ill-typed, which is exactly why the
// bounded normalizer exists.
func omega() tree.Term {
	self := &tree.Lam{
		Binder: x, Domain: tree.TheNat,
		Body: &tree.App{Func: &tree.Var{Name: x}, Arg: &tree.Var{Name: x}},
	}
	return &tree.App{Func: self, Arg: self}
}

func TestBetaStep(t *testing.T) {
	term := &tree.App{Func: identity(), Arg: tree.TheZero}
	got, ok := Step(term)
	if !ok {
		t.Fatal("expected a beta step")
	}
	if !tree.Equal(got, tree.TheZero) {
		t.Errorf("Step = %v, want zero", got)
	}
}

func TestValuesAreNormal(t *testing.T) {
	values := []tree.Term{
		tree.TheSort,
		tree.TheNat,
		tree.TheZero,
		tree.IntToNat(5),
		identity(),
		&tree.Pi{Binder: x, Domain: tree.TheNat, Codomain: tree.TheNat},
		&tree.Var{Name: x},
	}
	for _, value := range values {
		if _, ok := Step(value); ok {
			t.Errorf("value %v should not step", value)
		}
	}
}

func TestStuckApplicationIsNormal(t *testing.T) {
	stuck := &tree.App{Func: tree.TheZero, Arg: tree.TheZero}
	if _, ok := Step(stuck); ok {
		t.Fatalf("stuck term %v should not step", stuck)
	}
	if got := Normalize(stuck); !tree.Equal(got, stuck) {
		t.Errorf("Normalize(%v) = %v, want unchanged", stuck, got)
	}
}

func TestCongruenceFuncBeforeArg(t *testing.T) {
	redex := &tree.App{Func: identity(), Arg: tree.TheZero}
	term := &tree.App{Func: redex, Arg: redex}
	got, ok := Step(term)
	if !ok {
		t.Fatal("expected a step")
	}
	app, ok := got.(*tree.App)
	if !ok {
		t.Fatalf("Step = %v, want an application", got)
	}
	if !tree.Equal(app.Func, tree.TheZero) {
		t.Errorf("function position not reduced first: %v", got)
	}
	if !tree.Equal(app.Arg, redex) {
		t.Errorf("argument reduced too early: %v", got)
	}
}

func TestElimUnfoldZero(t *testing.T) {
	elim := &tree.NatElim{
		Motive: identity(),
		Base:   tree.IntToNat(3),
		Step:   identity(),
		Target: tree.TheZero,
	}
	got, ok := Step(elim)
	if !ok {
		t.Fatal("expected an unfold step")
	}
	if !tree.Equal(got, tree.IntToNat(3)) {
		t.Errorf("Step = %v, want the base case", got)
	}
}

func TestElimUnfoldSucc(t *testing.T) {
	step := identity()
	elim := &tree.NatElim{
		Motive: identity(),
		Base:   tree.TheZero,
		Step:   step,
		Target: tree.IntToNat(1),
	}
	got, ok := Step(elim)
	if !ok {
		t.Fatal("expected an unfold step")
	}
	// One layer only: step applied to the predecessor and the
	// still-symbolic recursive elimination.
	want := &tree.App{
		Func: &tree.App{Func: step, Arg: tree.TheZero},
		Arg: &tree.NatElim{
			Motive: identity(),
			Base:   tree.TheZero,
			Step:   step,
			Target: tree.TheZero,
		},
	}
	if !tree.Equal(got, want) {
		t.Errorf("Step = %v, want %v", got, want)
	}
}

func TestElimReducesTarget(t *testing.T) {
	elim := &tree.NatElim{
		Motive: identity(),
		Base:   tree.TheZero,
		Step:   identity(),
		Target: &tree.App{Func: identity(), Arg: tree.TheZero},
	}
	got, ok := Step(elim)
	if !ok {
		t.Fatal("expected the target to step")
	}
	want := &tree.NatElim{
		Motive: identity(),
		Base:   tree.TheZero,
		Step:   identity(),
		Target: tree.TheZero,
	}
	if !tree.Equal(got, want) {
		t.Errorf("Step = %v, want %v", got, want)
	}
}

func TestNormalizeBoundedGivesUp(t *testing.T) {
	got, done := NormalizeBounded(omega(), 50)
	if done {
		t.Fatalf("omega normalized to %v", got)
	}
	if got == nil {
		t.Fatal("expected a best-effort term")
	}
}

func TestNormalizeBoundedCompletes(t *testing.T) {
	term := &tree.App{Func: identity(), Arg: tree.TheZero}
	got, done := NormalizeBounded(term, 10)
	if !done {
		t.Fatal("expected a normal form within the cap")
	}
	if !tree.Equal(got, tree.TheZero) {
		t.Errorf("NormalizeBounded = %v, want zero", got)
	}
}

func TestNormalizeBoundedZeroCapOnNormalForm(t *testing.T) {
	got, done := NormalizeBounded(tree.TheZero, 0)
	if !done || !tree.Equal(got, tree.TheZero) {
		t.Errorf("NormalizeBounded(zero, 0) = %v, %v", got, done)
	}
}
