// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/pkg/profile"
	"github.com/relaxfem/relaxfem/ana"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/fem"
	"github.com/relaxfem/relaxfem/inp"
	"github.com/relaxfem/relaxfem/out"
	"github.com/spf13/cobra"
)

// flags
var (
	verbose bool // show messages
	doprof  bool // CPU profiling
)

var rootCmd = &cobra.Command{
	Use:   "relaxfem",
	Short: "Relaxfem -- particle goals for nonlinear structural analysis",
	Long: `Relax structures made of bars, cables, rods, beams and pressurised
membranes to equilibrium and find buckling load factors.

Models are given in hjson files with nodes, materials, goals and
solver settings.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		io.Verbose = verbose
		chk.Verbose = verbose
	},
}

var runCmd = &cobra.Command{
	Use:   "run <model.hjson>",
	Short: "Relax a model to equilibrium",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if doprof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		analysis, err := newAnalysis(args[0])
		if err != nil {
			return err
		}
		res, err := analysis.Run()
		if err != nil {
			return chk.Err("Run failed:\n%v", err)
		}
		io.Pf("%s", out.Report(res))
		return nil
	},
}

var buckleCmd = &cobra.Command{
	Use:   "buckle <model.hjson>",
	Short: "Increase the loads of a model until it buckles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if doprof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		analysis, err := newAnalysis(args[0])
		if err != nil {
			return err
		}
		res, err := analysis.Buckle()
		if err != nil {
			return chk.Err("Buckle failed:\n%v", err)
		}
		io.Pf("%s", out.BucklingReport(res))
		return nil
	},
}

// section flags
var sec struct {
	typ, mat            string
	wid, hei, tf, tw, r float64
}

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Print the material entry of a cross-section for model files",
	Long: `Compute area, moments of inertia, torsional constant and fibre
distance of a cross-section and print them, together with a reference
material, as a material entry of model files.

Types: rectangle, circle, tube and I-beam. Lengths in mm.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var s ana.CrossSection
		if err := s.Init(sec.typ, "mm", sec.wid, sec.hei, sec.tf, sec.tw, sec.r); err != nil {
			return err
		}
		var m ana.Material
		if err := m.Init(sec.mat, "MPa"); err != nil {
			return err
		}
		io.Pf("%s\n", m.GetMatString(sec.mat+"-"+sec.typ, "%g", &s))
		return nil
	},
}

func init() {
	runCmd.Long = "Relax a model to equilibrium and print the output of all goals.\n\nGoal types: " + strings.Join(ele.Names(), ", ")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	rootCmd.PersistentFlags().BoolVar(&doprof, "prof", false, "write CPU profile")
	f := sectionCmd.Flags()
	f.StringVarP(&sec.typ, "type", "t", "rectangle", "rectangle, circle, tube or I-beam")
	f.StringVarP(&sec.mat, "mat", "m", "steel", "reference material")
	f.Float64Var(&sec.wid, "wid", 0, "width")
	f.Float64Var(&sec.hei, "hei", 0, "height")
	f.Float64Var(&sec.tf, "tf", 0, "flange thickness (I-beam)")
	f.Float64Var(&sec.tw, "tw", 0, "web thickness (I-beam) or wall thickness (tube)")
	f.Float64Var(&sec.r, "r", 0, "radius (circle, tube)")
	rootCmd.AddCommand(runCmd, buckleCmd, sectionCmd)
}

// newAnalysis reads a model and allocates its goals
func newAnalysis(fnamepath string) (*fem.Analysis, error) {
	mdl, err := inp.ReadModel(fnamepath)
	if err != nil {
		return nil, err
	}
	if verbose {
		io.PfWhite("\nRelaxfem -- particle goals for nonlinear structural analysis\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"model file", "fnamepath", fnamepath,
			"description", "desc", mdl.Desc,
			"solver", "type", mdl.Solver.Type,
			"CPU profiling", "prof", doprof,
		))
	}
	return fem.NewAnalysis(mdl, verbose)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}
