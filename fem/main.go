// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the particle solver and the analyses driving it
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Analysis holds all goals of a model and runs analyses on them
type Analysis struct {

	// input
	Mdl     *inp.Model // model data
	Verbose bool       // show messages

	// goals
	All      []ele.Goal     // all goals in the order of the model file
	Goals    []ele.Goal     // permanent goals (not scalable)
	Loads    []ele.Scalable // goals scaled by buckling analyses
	Warnings []string       // non-fatal configuration warnings
}

// RunResult holds the results of a relaxation to equilibrium
type RunResult struct {
	Iterations int            // relaxation steps performed
	Converged  bool           // kinetic metric fell below threshold before the cap
	Metric     float64        // last kinetic metric
	Initial    []r3.Vec       // positions at registration
	Positions  []r3.Vec       // final positions
	Particles  []ele.Particle // final particles
	Outputs    []ele.Result   // one output per goal; same order as All
}

// NewAnalysis allocates all goals of a model
func NewAnalysis(mdl *inp.Model, verbose bool) (o *Analysis, err error) {
	if len(mdl.Goals) == 0 {
		return nil, chk.Err("model has no goals")
	}
	o = &Analysis{Mdl: mdl, Verbose: verbose}
	for i, gdat := range mdl.Goals {
		g, err := ele.New(gdat, mdl)
		if err != nil {
			return nil, chk.Err("goal %d:\n%v", i, err)
		}
		if w, ok := g.(ele.WithWarning); ok && w.Warning() != "" {
			msg := io.Sf("goal %d (%s): %s", i, gdat.Type, w.Warning())
			o.Warnings = append(o.Warnings, msg)
			if verbose {
				io.PfYel("> warning: %s\n", msg)
			}
		}
		o.All = append(o.All, g)
		if s, ok := g.(ele.Scalable); ok {
			o.Loads = append(o.Loads, s)
		} else {
			o.Goals = append(o.Goals, g)
		}
	}
	if verbose {
		io.Pf("> %d goals allocated (%d loads)\n", len(o.All), len(o.Loads))
	}
	return
}

// Run relaxes the structure to equilibrium under the unscaled loads
func (o *Analysis) Run() (res *RunResult, err error) {
	s, err := NewSolver(&o.Mdl.Solver)
	if err != nil {
		return
	}
	dat := o.Mdl.Solver
	if b, ok := s.(WithBounds); ok {
		if err = b.SetBounds(o.All, dat.MergeTol); err != nil {
			return
		}
	}
	for i, g := range o.All {
		if err = s.AssignIndices(g, dat.MergeTol); err != nil {
			return nil, chk.Err("cannot assign indices of goal %d:\n%v", i, err)
		}
	}
	res = &RunResult{Initial: s.Positions()}
	for res.Iterations < dat.NmaxIt {
		s.StepOnce(o.All, dat.UseTorque, dat.Threshold)
		res.Iterations++
		res.Metric = s.KineticMetric()
		if res.Metric < dat.Threshold {
			res.Converged = true
			break
		}
	}
	res.Positions = s.Positions()
	res.Particles = append([]ele.Particle{}, s.Particles()...)
	res.Outputs = s.CollectOutputs(o.All)
	if o.Verbose {
		if res.Converged {
			io.Pfgreen("> converged after %d iterations\n", res.Iterations)
		} else {
			io.PfYel("> not converged after %d iterations; metric = %g\n", res.Iterations, res.Metric)
		}
	}
	return
}

// Buckle runs the buckling analysis defined in the model
func (o *Analysis) Buckle() (res *BucklingResult, err error) {
	if len(o.Loads) == 0 {
		return nil, chk.Err("buckling analysis requires at least one load")
	}
	b, err := NewBuckling(NewBucklingConfig(&o.Mdl.Buckling, &o.Mdl.Solver), o.Verbose)
	if err != nil {
		return
	}
	s, err := NewSolver(&o.Mdl.Solver)
	if err != nil {
		return
	}
	return b.Run(s, o.Goals, o.Loads)
}
