package flow

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/hweifluids/ABC-Flow-Generator/vtk"
)

// ProgressFunc is invoked synchronously after each completed step with the
// number of steps done so far and the total step count.
type ProgressFunc func(done, total int)

// TimeSpec divides [Start, End] into Steps equal intervals; step k runs at
// Start + k*Dt(). Start == End is a valid degenerate series where every
// step carries the same time.
type TimeSpec struct {
	Start, End float64
	Steps      int
}

func (ts TimeSpec) Validate() error {
	if ts.Steps < 1 {
		return fmt.Errorf("invalid step count n_step = %d, need at least 1", ts.Steps)
	}
	return nil
}

func (ts TimeSpec) Dt() float64 {
	return (ts.End - ts.Start) / float64(ts.Steps)
}

// Series drives one full generation run: it evaluates the phase and the
// field at every timestep, writes one rectilinear file per step, then the
// collection index for the whole run.
type Series struct {
	// Input parameters
	Grid        *Grid
	A, B, C     float64
	Phase       PhaseSpec
	Time        TimeSpec
	Formulation Formulation
	OutDir      string
	BaseName    string
	// Progress, when non-nil, is called once per completed step.
	Progress ProgressFunc
	// LogFrequency is the step interval of status lines; 0 uses a default,
	// negative disables them.
	LogFrequency int
}

// Run executes the loop to completion and returns the first error. Steps
// are strictly sequential; files written before a failure remain on disk.
func (s *Series) Run() error {
	var (
		logFrequency = s.LogFrequency
	)
	if err := s.validate(); err != nil {
		return err
	}
	if logFrequency == 0 {
		logFrequency = 50
	}
	dt := s.Time.Dt()
	X, Y, Z := s.Grid.Mesh()

	steps := make([]vtk.TimeStep, 0, s.Time.Steps)
	for k := 0; k < s.Time.Steps; k++ {
		t := s.Time.Start + float64(k)*dt
		var ph float64
		if s.Formulation == Legacy {
			ph = t
		} else {
			ph = s.Phase.Eval(t)
		}
		f := GenerateField(s.Formulation, s.A, s.B, s.C, ph, X, Y, Z)
		name := vtk.FileName(s.BaseName, k)
		err := vtk.WriteRectilinear(s.OutDir, name, s.Grid.Axis, s.Grid.Axis, s.Grid.Axis,
			vtk.VectorField{Name: "velocity", Vx: f.Vx, Vy: f.Vy, Vz: f.Vz})
		if err != nil {
			return err
		}
		steps = append(steps, vtk.TimeStep{Time: t, File: name})
		if logFrequency > 0 && k%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, step %d, phase = %8.4f, vx min/max = %8.4f/%8.4f\n",
				t, k, ph, floats.Min(f.Vx), floats.Max(f.Vx))
		}
		if s.Progress != nil {
			s.Progress(k+1, s.Time.Steps)
		}
	}

	if err := vtk.WriteCollection(s.OutDir, s.BaseName, steps); err != nil {
		return err
	}
	fmt.Printf("Generated %d time steps in '%s'\n", len(steps), s.OutDir)
	return nil
}

func (s *Series) validate() error {
	if s.Grid == nil || s.Grid.N < 2 {
		return fmt.Errorf("invalid grid, need at least 2 points per axis")
	}
	if len(s.BaseName) == 0 {
		return fmt.Errorf("base file name must not be empty")
	}
	if err := s.Phase.Validate(); err != nil {
		return err
	}
	return s.Time.Validate()
}
