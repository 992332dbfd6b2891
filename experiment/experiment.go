// Package experiment runs the discrete Schrödinger experiment: a particle
// in a potential sketched by the user, starting in a sketched wave function.
//
// The Hamiltonian on n samples is the tridiagonal matrix with 2+V_i on the
// diagonal and -1 on both off diagonals. Its eigenvectors are the stationary
// states; a start wave function is expanded in them and evolved in time by
// rotating the phase of every coefficient with its energy.
package experiment

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/data"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoSamples      = errors.New("experiment: no samples")
	ErrLengthMismatch = errors.New("experiment: potential and wave function differ in length")
	ErrFactorize      = errors.New("experiment: eigen decomposition failed")
	ErrZeroNorm       = errors.New("experiment: wave function has zero norm")
	ErrModeRange      = errors.New("experiment: mode out of range")
)

// An Experiment holds the stationary states of a potential and the
// expansion of a wave function in them.
type Experiment struct {
	resolution   int
	wavefunction []complex128
	energies     []float64   // ascending
	states       [][]float64 // states[n] belongs to energies[n], unit length
	coefficients []complex128
}

// Phase returns the plane wave e^{i·momentum·x}, the factor that gives a
// wave function a mean momentum.
func Phase(momentum, x float64) complex128 {
	return cmplx.Exp(complex(0, momentum*x))
}

// Simulate sets up an experiment. The wave function samples are multiplied
// by Phase(momentum, x) and normalized; only the y values of potential are
// used.
func Simulate(potential, wavefunction sketch.Datapoints, momentum float64) (*Experiment, error) {
	n := potential.Len()
	if n == 0 {
		return nil, ErrNoSamples
	}
	if wavefunction.Len() != n {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, wavefunction.Len())
	}

	e := &Experiment{resolution: n}

	e.wavefunction = make([]complex128, n)
	for i, p := range wavefunction.Values {
		e.wavefunction[i] = complex(p.Y, 0) * Phase(momentum, p.X)
	}
	if err := normalize(e.wavefunction); err != nil {
		return nil, err
	}

	var es mat.EigenSym
	if ok := es.Factorize(Hamiltonian(data.Ys(potential)), true); !ok {
		return nil, ErrFactorize
	}
	e.energies = es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	e.states = make([][]float64, n)
	e.coefficients = make([]complex128, n)
	for k := 0; k < n; k++ {
		v := mat.Col(nil, k, &vecs)
		if norm := floats.Norm(v, 2); norm != 0 {
			floats.Scale(1/norm, v)
		}
		e.states[k] = v
		e.coefficients[k] = project(v, e.wavefunction)
	}

	sketch.Logger().Debug("experiment simulated",
		"resolution", n, "momentum", momentum,
		"ground", e.energies[0], "highest", e.energies[n-1])
	return e, nil
}

// Hamiltonian returns the discrete Hamiltonian for potential.
func Hamiltonian(potential []float64) *mat.SymDense {
	n := len(potential)
	h := mat.NewSymDense(n, nil)
	for i, v := range potential {
		h.SetSym(i, i, 2+v)
		if i+1 < n {
			h.SetSym(i, i+1, -1)
		}
	}
	return h
}

// Resolution returns the number of samples.
func (e *Experiment) Resolution() int { return e.resolution }

// Energies returns the eigenvalues in ascending order.
func (e *Experiment) Energies() []float64 {
	return append([]float64(nil), e.energies...)
}

// Coefficients returns the expansion of the start wave function in the
// stationary states.
func (e *Experiment) Coefficients() []complex128 {
	return append([]complex128(nil), e.coefficients...)
}

// Eigenvector returns the stationary state n placed on the grid [start, end).
func (e *Experiment) Eigenvector(n int, start, end float64) (*sketch.Datapoints, error) {
	if n < 0 || n >= e.resolution {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrModeRange, n, e.resolution)
	}
	return data.FromValues(start, end, e.states[n]), nil
}

// Evolve returns the probability density |ψ(t)|² on the grid [start, end).
// Only the lower half of the modes takes part; the others are dropped as
// the discretization cannot represent them faithfully.
func (e *Experiment) Evolve(t, start, end float64) *sketch.Datapoints {
	psi := make([]complex128, e.resolution)
	for k := 0; k <= e.resolution/2 && k < e.resolution; k++ {
		c := e.coefficients[k] * cmplx.Exp(complex(0, -e.energies[k]*t))
		for i, v := range e.states[k] {
			psi[i] += c * complex(v, 0)
		}
	}
	density := make([]float64, e.resolution)
	for i, z := range psi {
		density[i] = real(z)*real(z) + imag(z)*imag(z)
	}
	return data.FromValues(start, end, density)
}

// project returns the inner product <v|psi> for a real v.
func project(v []float64, psi []complex128) complex128 {
	var sum complex128
	for i := range v {
		sum += complex(v[i], 0) * psi[i]
	}
	return sum
}

func normalize(psi []complex128) error {
	sum := 0.0
	for _, z := range psi {
		sum += real(z)*real(z) + imag(z)*imag(z)
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return ErrZeroNorm
	}
	norm := complex(math.Sqrt(sum), 0)
	for i := range psi {
		psi[i] /= norm
	}
	return nil
}
