package experiment

import (
	"sync"

	"github.com/vdobler/sketch"
)

// A Lab holds the current experiment. It is safe for concurrent use.
// The zero value is an empty lab.
type Lab struct {
	mu  sync.Mutex
	cur *Experiment
}

// Run simulates a new experiment and makes it current. On error the
// previous experiment is kept.
func (l *Lab) Run(potential, wavefunction sketch.Datapoints, momentum float64) error {
	e, err := Simulate(potential, wavefunction, momentum)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.cur = e
	l.mu.Unlock()
	return nil
}

// Current returns the current experiment or nil.
func (l *Lab) Current() *Experiment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cur
}

// Restart discards the current experiment.
func (l *Lab) Restart() {
	l.mu.Lock()
	l.cur = nil
	l.mu.Unlock()
}

// Evolve evolves the current experiment, see Experiment.Evolve.
// An empty lab yields empty datapoints.
func (l *Lab) Evolve(t, start, end float64) *sketch.Datapoints {
	e := l.Current()
	if e == nil {
		return &sketch.Datapoints{}
	}
	return e.Evolve(t, start, end)
}

// Eigenvector returns a stationary state of the current experiment, see
// Experiment.Eigenvector. An empty lab yields empty datapoints.
func (l *Lab) Eigenvector(n int, start, end float64) (*sketch.Datapoints, error) {
	e := l.Current()
	if e == nil {
		return &sketch.Datapoints{}, nil
	}
	return e.Eigenvector(n, start, end)
}
