package flow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DomainLength is the side length of the cubic domain, identical on all
// three axes.
const DomainLength = 2 * math.Pi

// Grid is the isotropic cubic sampling of [0, DomainLength]^3 with N points
// per axis, endpoints included. All three axes share the same coordinate
// sequence.
type Grid struct {
	N    int
	Axis []float64
}

func NewGrid(N int) (*Grid, error) {
	if N < 2 {
		return nil, fmt.Errorf("invalid grid size N = %d, need at least 2 points per axis", N)
	}
	return &Grid{
		N:    N,
		Axis: floats.Span(make([]float64, N), 0, DomainLength),
	}, nil
}

// NumPoints is the total point count N^3.
func (g *Grid) NumPoints() int {
	return g.N * g.N * g.N
}

// Spacing is the uniform distance between neighboring samples on any axis.
func (g *Grid) Spacing() float64 {
	return DomainLength / float64(g.N-1)
}

// Mesh expands the axis into the three full coordinate meshes. The meshes
// are flattened with the first axis varying fastest, so the value at grid
// indices (i, j, k) lives at flat index i + N*(j + N*k) - the same point
// ordering the rectilinear output files use.
func (g *Grid) Mesh() (X, Y, Z []float64) {
	var (
		N  = g.N
		np = g.NumPoints()
	)
	X, Y, Z = make([]float64, np), make([]float64, np), make([]float64, np)
	var ind int
	for k := 0; k < N; k++ {
		for j := 0; j < N; j++ {
			for i := 0; i < N; i++ {
				X[ind] = g.Axis[i]
				Y[ind] = g.Axis[j]
				Z[ind] = g.Axis[k]
				ind++
			}
		}
	}
	return
}
