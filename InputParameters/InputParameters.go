package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type FlowParameters struct {
	Title       string    `yaml:"Title"`
	GridPoints  int       `yaml:"GridPoints"`
	A           float64   `yaml:"A"`
	B           float64   `yaml:"B"`
	C           float64   `yaml:"C"`
	Epsilons    []float64 `yaml:"Epsilons"`    // amplitudes of sinusoidal phase terms
	Omegas      []float64 `yaml:"Omegas"`      // angular frequencies of sinusoidal phase terms
	Betas       []float64 `yaml:"Betas"`       // offsets of sinusoidal phase terms
	LinearRates []float64 `yaml:"LinearRates"` // linear phase growth rates
	TStart      float64   `yaml:"TStart"`
	TEnd        float64   `yaml:"TEnd"`
	NSteps      int       `yaml:"NSteps"`
	OutputDir   string    `yaml:"OutputDir"`
	BaseName    string    `yaml:"BaseName"`
}

// DefaultParameters is the default configuration block used when no input
// file or flag overrides a value.
func DefaultParameters() *FlowParameters {
	return &FlowParameters{
		Title:       "ABC flow series",
		GridPoints:  48,
		A:           1.0,
		B:           1.0,
		C:           1.0,
		Epsilons:    []float64{0.5, 0.2},
		Omegas:      []float64{2.0, 1.0},
		Betas:       []float64{0, math.Pi / 4},
		LinearRates: []float64{1.0, 0.3},
		TStart:      0.0,
		TEnd:        10.0,
		NSteps:      200,
		OutputDir:   "output",
		BaseName:    "abc",
	}
}

func (fp *FlowParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, fp)
}

func (fp *FlowParameters) Validate() error {
	if fp.GridPoints < 2 {
		return fmt.Errorf("GridPoints must be at least 2, got %d", fp.GridPoints)
	}
	if fp.NSteps < 1 {
		return fmt.Errorf("NSteps must be at least 1, got %d", fp.NSteps)
	}
	if len(fp.Epsilons) != len(fp.Omegas) || len(fp.Omegas) != len(fp.Betas) {
		return fmt.Errorf("Epsilons, Omegas and Betas must have equal length, got %d/%d/%d",
			len(fp.Epsilons), len(fp.Omegas), len(fp.Betas))
	}
	if len(fp.BaseName) == 0 {
		return fmt.Errorf("BaseName must not be empty")
	}
	return nil
}

func (fp *FlowParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%d]\t\t\t= Grid Points per axis\n", fp.GridPoints)
	fmt.Printf("%8.5f %8.5f %8.5f\t= A, B, C\n", fp.A, fp.B, fp.C)
	fmt.Printf("%v\t= Epsilons\n", fp.Epsilons)
	fmt.Printf("%v\t= Omegas\n", fp.Omegas)
	fmt.Printf("%v\t= Betas\n", fp.Betas)
	fmt.Printf("%v\t= Linear Rates\n", fp.LinearRates)
	fmt.Printf("%8.5f -> %8.5f\t= Time range\n", fp.TStart, fp.TEnd)
	fmt.Printf("[%d]\t\t\t= Number of Steps\n", fp.NSteps)
	fmt.Printf("[%s]\t\t= Output Directory\n", fp.OutputDir)
	fmt.Printf("[%s]\t\t\t= Base Name\n", fp.BaseName)
}
