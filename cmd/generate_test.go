package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/hweifluids/ABC-Flow-Generator/InputParameters"
	"github.com/hweifluids/ABC-Flow-Generator/flow"
)

func TestGenerate(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
GridPoints: 4
A: 1.
B: 1.
C: 1.
Epsilons: []
Omegas: []
Betas: []
LinearRates: [1.]
TStart: 0.
TEnd: 1.
NSteps: 2
BaseName: abc
`)
	input := InputParameters.DefaultParameters()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.GridPoints, 4)
	assert.Equal(t, input.LinearRates, []float64{1.})
	assert.Equal(t, input.NSteps, 2)
	input.Print()

	// Comma-separated rates, as typed into the form's a_j line
	rates, err := ParseRates("1.0, 0.3,")
	if err != nil {
		panic(err)
	}
	assert.Equal(t, rates, []float64{1.0, 0.3})
	if _, err = ParseRates("1.0,oops"); err == nil {
		t.Fatalf("expected a parse error")
	}

	// Full run into a scratch directory
	input.OutputDir = t.TempDir()
	if err = RunSeries(input, flow.Coupled); err != nil {
		panic(err)
	}
	for _, name := range []string{"abc_0000.vtr", "abc_0001.vtr", "abc_series.pvd"} {
		if _, err = os.Stat(filepath.Join(input.OutputDir, name)); err != nil {
			t.Fatalf("missing output %s: %s", name, err)
		}
	}
}
