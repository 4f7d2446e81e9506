package flow

import (
	"fmt"
	"math"
)

// PhaseSpec defines the time-dependent phase
//
//	phi(t) = Sum_i Epsilons[i]*sin(Omegas[i]*t + Betas[i]) + Sum_j Rates[j]*t
//
// The three sinusoidal sequences must have equal length; all sequences may
// be empty, in which case the phase is identically zero.
type PhaseSpec struct {
	Epsilons []float64
	Omegas   []float64
	Betas    []float64
	Rates    []float64
}

func (ps PhaseSpec) Validate() error {
	if len(ps.Epsilons) != len(ps.Omegas) || len(ps.Omegas) != len(ps.Betas) {
		return fmt.Errorf("mismatched sinusoidal term lengths: %d epsilons, %d omegas, %d betas",
			len(ps.Epsilons), len(ps.Omegas), len(ps.Betas))
	}
	return nil
}

// Eval computes phi(t). Pure function of t and the fixed term sets.
func (ps PhaseSpec) Eval(t float64) (phi float64) {
	for i, eps := range ps.Epsilons {
		phi += eps * math.Sin(ps.Omegas[i]*t+ps.Betas[i])
	}
	for _, a := range ps.Rates {
		phi += a * t
	}
	return
}
