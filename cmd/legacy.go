/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hweifluids/ABC-Flow-Generator/InputParameters"
	"github.com/hweifluids/ABC-Flow-Generator/flow"
)

// LegacyCmd represents the legacy command
var LegacyCmd = &cobra.Command{
	Use:   "legacy",
	Short: "Generate a series with the legacy two-term field and fixed phase",
	Long: `
Generate a series using the legacy script's field formulation, phase applied
to two of the six trigonometric terms only, with a fixed linear phase
phi(t) = t. The configurable sinusoidal and linear phase terms do not apply
here; this exists for compatibility with output of the original script.`,
	Run: func(cmd *cobra.Command, args []string) {
		fp := InputParameters.DefaultParameters()
		fp.Epsilons, fp.Omegas, fp.Betas, fp.LinearRates = nil, nil, nil, nil
		fp.GridPoints, _ = cmd.Flags().GetInt("n")
		fp.A, _ = cmd.Flags().GetFloat64("A")
		fp.B, _ = cmd.Flags().GetFloat64("B")
		fp.C, _ = cmd.Flags().GetFloat64("C")
		fp.TStart, _ = cmd.Flags().GetFloat64("tStart")
		fp.TEnd, _ = cmd.Flags().GetFloat64("tEnd")
		fp.NSteps, _ = cmd.Flags().GetInt("steps")
		fp.OutputDir, _ = cmd.Flags().GetString("outDir")
		fp.BaseName, _ = cmd.Flags().GetString("baseName")
		if err := fp.Validate(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err := RunSeries(fp, flow.Legacy); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(LegacyCmd)
	LegacyCmd.Flags().IntP("n", "n", 48, "grid points per axis")
	LegacyCmd.Flags().Float64("A", 1.0, "ABC coefficient A")
	LegacyCmd.Flags().Float64("B", 1.0, "ABC coefficient B")
	LegacyCmd.Flags().Float64("C", 1.0, "ABC coefficient C")
	LegacyCmd.Flags().Float64("tStart", 0.0, "start time")
	LegacyCmd.Flags().Float64("tEnd", 10.0, "end time")
	LegacyCmd.Flags().IntP("steps", "s", 200, "number of time steps")
	LegacyCmd.Flags().StringP("outDir", "o", "output", "output directory, created if missing")
	LegacyCmd.Flags().StringP("baseName", "b", "abc", "base name for the output files")
}
