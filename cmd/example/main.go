package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/sukikrishna/dependent-type/arith"
	"github.com/sukikrishna/dependent-type/check"
	"github.com/sukikrishna/dependent-type/eval"
	"github.com/sukikrishna/dependent-type/tree"
)

var (
	maxSteps = flag.Int("max-steps", 10000, "reduction step cap for the bounded normalizer")
	debug    = flag.Bool("debug", false, "dump term trees as they are checked")

	DebugWriter io.Writer = os.Stdout
)

func DebugPrintf(format string, args ...interface{}) {
	if *debug {
		_, err := fmt.Fprintf(DebugWriter, format, args...)
		if err != nil {
			panic(err)
		}
	}
}

func main() {
	flag.Parse()

	checker := check.NewChecker()
	env := check.NewEnv()

	fixtures := []struct {
		name string
		term tree.Term
	}{
		{"add", arith.Add()},
		{"mult", arith.Mult()},
		{"factorial", arith.Factorial()},
	}

	for _, fixture := range fixtures {
		DebugPrintf("=== Checking %s ===\n%s\n", fixture.name, spew.Sdump(fixture.term))
		ty, err := checker.Check(env, fixture.term)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", fixture.name, err)
			spew.Dump(fixture.term)
			os.Exit(1)
		}
		fmt.Printf("%s : %v\n", fixture.name, eval.Normalize(ty))
	}

	show("3 + 4", arith.Apply(arith.Add(), tree.IntToNat(3), tree.IntToNat(4)))
	show("3 * 4", arith.Apply(arith.Mult(), tree.IntToNat(3), tree.IntToNat(4)))
	show("4!", arith.Apply(arith.Factorial(), tree.IntToNat(4)))

	// Addition commutes under a correct binding discipline.
	lhs := eval.Normalize(arith.Apply(arith.Add(), tree.IntToNat(2), tree.IntToNat(3)))
	rhs := eval.Normalize(arith.Apply(arith.Add(), tree.IntToNat(3), tree.IntToNat(2)))
	fmt.Printf("2 + 3 == 3 + 2: %v\n", tree.Equal(lhs, rhs))
}

func show(label string, t tree.Term) {
	nf, done := eval.NormalizeBounded(t, *maxSteps)
	if !done {
		fmt.Printf("%s: no normal form within %d steps\n", label, *maxSteps)
		return
	}
	n, err := tree.NatToInt(nf)
	if err != nil {
		fmt.Printf("%s: normal form is not a numeral: %v\n", label, nf)
		return
	}
	fmt.Printf("%s = %d\n", label, n)
}
