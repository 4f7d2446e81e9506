package flow

import (
	"fmt"
	"math"
)

// Formulation selects which ABC field formula the generator evaluates.
type Formulation uint8

const (
	// Coupled applies the phase inside all six trigonometric terms:
	//	vx = A*(sin(Z+ph) + cos(Y+ph))
	//	vy = B*(sin(X+ph) + cos(Z+ph))
	//	vz = C*(sin(Y+ph) + cos(X+ph))
	Coupled Formulation = iota
	// Legacy matches the original standalone script, phase on two terms
	// only and a fixed linear phase phi(t) = t:
	//	vx = A*sin(Z+ph) + C*cos(Y)
	//	vy = B*sin(X) + A*cos(Z+ph)
	//	vz = C*sin(Y) + B*cos(X)
	Legacy
)

func (f Formulation) String() string {
	switch f {
	case Coupled:
		return "coupled"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("Formulation(%d)", uint8(f))
}

// Field holds the three velocity component arrays of one snapshot, in the
// same flat point ordering as Grid.Mesh.
type Field struct {
	Vx, Vy, Vz []float64
}

// GenerateField evaluates the selected formulation over the coordinate
// meshes at a single scalar phase value. Pure function of its inputs; the
// three meshes must have equal length.
func GenerateField(form Formulation, A, B, C, ph float64, X, Y, Z []float64) *Field {
	np := len(X)
	f := &Field{
		Vx: make([]float64, np),
		Vy: make([]float64, np),
		Vz: make([]float64, np),
	}
	switch form {
	case Legacy:
		for n := 0; n < np; n++ {
			f.Vx[n] = A*math.Sin(Z[n]+ph) + C*math.Cos(Y[n])
			f.Vy[n] = B*math.Sin(X[n]) + A*math.Cos(Z[n]+ph)
			f.Vz[n] = C*math.Sin(Y[n]) + B*math.Cos(X[n])
		}
	default:
		for n := 0; n < np; n++ {
			f.Vx[n] = A * (math.Sin(Z[n]+ph) + math.Cos(Y[n]+ph))
			f.Vy[n] = B * (math.Sin(X[n]+ph) + math.Cos(Z[n]+ph))
			f.Vz[n] = C * (math.Sin(Y[n]+ph) + math.Cos(X[n]+ph))
		}
	}
	return f
}
