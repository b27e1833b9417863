package nn

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Node names in drawing order.
var Nodes = []string{"A", "B", "H1", "H2", "Out"}

// Edge is one directed weighted connection in the fixed topology.
type Edge struct {
	From, To string
	Weight   float64
}

// Activations holds the derived state of the network: the weighted input sum
// and sigmoid output for each non-input node. Never stored, recomputed from
// the current parameters on every change.
type Activations struct {
	SumH1, SumH2, SumOut float64
	H1, H2, Out          float64
}

// Sigmoid maps any real number to (0,1).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activations feeds the inputs forward through both layers.
func (p Params) Activations() Activations {
	hidden := mat.NewDense(2, 2, []float64{
		p.WeightAH1, p.WeightBH1,
		p.WeightAH2, p.WeightBH2,
	})
	in := mat.NewVecDense(2, []float64{p.InputA, p.InputB})
	var sum mat.VecDense
	sum.MulVec(hidden, in)

	a := Activations{
		SumH1: sum.AtVec(0) + p.BiasH1,
		SumH2: sum.AtVec(1) + p.BiasH2,
	}
	a.H1 = Sigmoid(a.SumH1)
	a.H2 = Sigmoid(a.SumH2)

	wout := mat.NewVecDense(2, []float64{p.WeightH1Out, p.WeightH2Out})
	a.SumOut = mat.Dot(wout, mat.NewVecDense(2, []float64{a.H1, a.H2})) + p.BiasOut
	a.Out = Sigmoid(a.SumOut)
	return a
}

// Edges lists the six connections with their current weights, input layer
// first.
func (p Params) Edges() []Edge {
	return []Edge{
		{"A", "H1", p.WeightAH1},
		{"B", "H1", p.WeightBH1},
		{"A", "H2", p.WeightAH2},
		{"B", "H2", p.WeightBH2},
		{"H1", "Out", p.WeightH1Out},
		{"H2", "Out", p.WeightH2Out},
	}
}

// Value returns the quantity a node is coloured by: the raw input for input
// nodes, the activation otherwise.
func (a Activations) Value(p Params, node string) float64 {
	switch node {
	case "A":
		return p.InputA
	case "B":
		return p.InputB
	case "H1":
		return a.H1
	case "H2":
		return a.H2
	case "Out":
		return a.Out
	}
	return 0
}

// Exit in case of error
func CheckErr(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
