package mna

import (
	"math"

	"dccircuit/dcerr"
	"dccircuit/types"
)

// Result is the outcome of one MNA solve: the potential at every node
// index (ground's entry is 0), and the branch current through every
// voltage source (including ammeter-modeled ones), keyed by its ID.
type Result struct {
	NodeVoltage   []float64
	SourceCurrent map[types.ID]float64
}

// Solve assembles and solves the MNA linear system for elements over
// n node indices with the given ground index. The unknown vector is
// ordered node potentials (ground omitted) followed
// by one auxiliary current per VSource, in first-occurrence order.
// Positive VSource current flows from NPlus through the source to
// NMinus.
func Solve(elements []Element, n, ground int) (*Result, error) {
	if n < 2 {
		return nil, dcerr.NumericError("fewer than two nodes")
	}
	if ground < 0 || ground >= n {
		return nil, dcerr.NumericError("ground node out of range")
	}

	idx := func(node int) int {
		switch {
		case node == ground:
			return -1
		case node < ground:
			return node
		default:
			return node - 1
		}
	}

	var vsrcOrder []VSource
	for _, e := range elements {
		if v, ok := e.(VSource); ok {
			vsrcOrder = append(vsrcOrder, v)
		}
	}
	vsrcCol := make(map[types.ID]int, len(vsrcOrder))
	for k, v := range vsrcOrder {
		vsrcCol[v.ID] = k
	}

	size := (n - 1) + len(vsrcOrder)
	A := make([][]float64, size)
	for i := range A {
		A[i] = make([]float64, size)
	}
	b := make([]float64, size)

	for _, e := range elements {
		switch el := e.(type) {
		case Resistor:
			if el.Ohms == 0 {
				return nil, dcerr.NumericError("zero-ohm resistor cannot be stamped directly")
			}
			g := 1.0 / el.Ohms
			i1, i2 := idx(el.N1), idx(el.N2)
			if i1 >= 0 {
				A[i1][i1] += g
			}
			if i2 >= 0 {
				A[i2][i2] += g
			}
			if i1 >= 0 && i2 >= 0 {
				A[i1][i2] -= g
				A[i2][i1] -= g
			}
		case ISource:
			iFrom, iTo := idx(el.NFrom), idx(el.NTo)
			if iTo >= 0 {
				b[iTo] += el.Amps
			}
			if iFrom >= 0 {
				b[iFrom] -= el.Amps
			}
		case VSource:
			col := (n - 1) + vsrcCol[el.ID]
			iPlus, iMinus := idx(el.NPlus), idx(el.NMinus)
			if iPlus >= 0 {
				A[iPlus][col] += 1
				A[col][iPlus] += 1
			}
			if iMinus >= 0 {
				A[iMinus][col] -= 1
				A[col][iMinus] -= 1
			}
			b[col] += el.Volts
		}
	}

	x, err := gaussianSolve(A, b)
	if err != nil {
		return nil, err
	}

	voltages := make([]float64, n)
	for node := 0; node < n; node++ {
		if i := idx(node); i >= 0 {
			voltages[node] = x[i]
		}
	}
	currents := make(map[types.ID]float64, len(vsrcOrder))
	for k, v := range vsrcOrder {
		currents[v.ID] = x[(n-1)+k]
	}

	return &Result{NodeVoltage: voltages, SourceCurrent: currents}, nil
}

// gaussianSolve solves A x = b by Gaussian elimination with partial
// pivoting, adapted from the teacher's maths/lu.go pivot-selection
// discipline (search the remaining column for the largest-magnitude
// entry) into a single elimination pass rather than a reusable
// decomposition, since this system is solved exactly once per case.
func gaussianSolve(A [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivotRow := col
		pivotVal := math.Abs(A[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(A[r][col]); v > pivotVal {
				pivotVal = v
				pivotRow = r
			}
		}
		if pivotVal < 1e-12 {
			return nil, dcerr.NumericError("singular or inconsistent system")
		}
		A[col], A[pivotRow] = A[pivotRow], A[col]
		b[col], b[pivotRow] = b[pivotRow], b[col]

		for r := col + 1; r < n; r++ {
			factor := A[r][col] / A[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				A[r][c] -= factor * A[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= A[i][j] * x[j]
		}
		x[i] = sum / A[i][i]
	}
	return x, nil
}
