package distance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/qmeans/state"
)

// KernelMatrix builds the fidelity Gram matrix for the given states:
// K[i,j] = Fidelity(states[i], states[j]).
//
// The matrix is symmetric with a unit diagonal. Fidelity is computed once per
// unordered pair and mirrored.
func KernelMatrix(states []state.State) (*mat.SymDense, error) {
	n := len(states)
	if n == 0 {
		return nil, fmt.Errorf("distance: kernel matrix needs at least one state")
	}
	for _, s := range states {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		k.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			f, err := Fidelity(states[i], states[j])
			if err != nil {
				return nil, err
			}
			k.SetSym(i, j, f)
		}
	}
	return k, nil
}
