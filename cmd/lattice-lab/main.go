// Command lattice-lab sequences two worked examples over the real
// LLL/BKZ engine, in the same shape as the teacher repo's main.go:
// Lab 1 (Gaussian Heuristic verification) followed by Lab 2
// (Geometric Series Assumption verification).
package main

import (
	"fmt"
	"math"
	"math/big"

	"github.com/lattice-labs/lllbkz/examples/heuristics"
	"github.com/lattice-labs/lllbkz/examples/profile"
)

func main() {
	fmt.Println("=== Lattice Reduction Lab ===")
	fmt.Println()

	runLab1()
	fmt.Println()
	runLab2()

	fmt.Println()
	fmt.Println("=== All experiments completed ===")
}

// runLab1 verifies the Gaussian Heuristic against the shortest vector
// the real engine finds in a handful of q-ary lattices, the way the
// teacher's runLab1Verification did against its simulated oracle.
func runLab1() {
	fmt.Println("--- Lab 1: Verifying the Gaussian Heuristic ---")
	q := big.NewInt(131)
	fmt.Printf("Target q: %s. Iterating from n=6 to n=14...\n\n", q.String())

	fmt.Printf("%-4s | %-13s | %-13s | %-14s\n", "n", "GH Prediction", "Shortest found", "Relative Error")
	fmt.Println("------------------------------------------------------")

	for n := 6; n <= 14; n += 2 {
		m := n

		basis, err := heuristics.GenQaryBasisDeterministic(n, m, q, []byte(fmt.Sprintf("lab1-%d", n)))
		if err != nil {
			fmt.Printf("n=%d: generation failed: %v\n", n, err)
			continue
		}

		vol := heuristics.LatticeVolume(basis)
		gh := heuristics.GaussianHeuristic(vol, m+n)
		ghFloat, _ := gh.Float64()

		sq, err := heuristics.ShortestVectorViaLLL(basis, 4)
		if err != nil {
			fmt.Printf("n=%d: reduction failed: %v\n", n, err)
			continue
		}
		found := sq.Float64()
		foundLen := math.Sqrt(found)

		relErr := math.Abs(foundLen-ghFloat) / foundLen * 100
		fmt.Printf("%-4d | %-13.2f | %-13.2f | %-13.2f%%\n", n, ghFloat, foundLen, relErr)
	}

	fmt.Println("\nLab 1 finished.")
}

// runLab2 verifies the Geometric Series Assumption by fitting a line
// to an actual BKZ-reduced basis profile, the way the teacher's
// runLab2Verification asked the reader to do visually.
func runLab2() {
	fmt.Println("--- Lab 2: Verifying the Geometric Series Assumption ---")

	rank := 12
	beta := 4

	fmt.Printf("Generating a random lattice of rank %d.\n", rank)
	basis, err := profile.GenRandomBasisDeterministic(rank, 50, []byte("lab2-seed"))
	if err != nil {
		fmt.Printf("generation failed: %v\n", err)
		return
	}

	fmt.Printf("Running BKZ reduction with block size beta = %d...\n", beta)
	prof, err := profile.BasisProfile(basis, beta)
	if err != nil {
		fmt.Printf("reduction failed: %v\n", err)
		return
	}

	fmt.Println("BKZ finished.")
	fmt.Print("Basis profile (log2 of Gram-Schmidt norms): [")
	for i, v := range prof {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Printf("%.2f", v)
	}
	fmt.Println("]")

	check, err := profile.CheckGSA(prof)
	if err != nil {
		fmt.Printf("GSA fit failed: %v\n", err)
		return
	}
	fmt.Printf("Linear fit: slope=%.4f intercept=%.4f correlation=%.4f\n",
		check.Slope, check.Intercept, check.Correlation)

	fmt.Println("\nLab 2 finished.")
}
