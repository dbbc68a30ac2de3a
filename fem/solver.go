// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solver implements the particle solver driven by analyses
type Solver interface {
	AssignIndices(goal ele.Goal, tol float64) error                // registers the positions of interest of goal and sets its indices
	StepOnce(goals []ele.Goal, useTorque bool, threshold float64) // performs one relaxation iteration
	KineticMetric() float64                                       // kinetic-energy-like metric of the last iteration
	Positions() []r3.Vec                                          // copy of current positions
	Particles() []ele.Particle                                    // current particles (read only)
	CollectOutputs(goals []ele.Goal) []ele.Result                 // output of all goals at the current state
}

// WithBounds defines solvers that size their particle search structure from all goals before indices are assigned
type WithBounds interface {
	SetBounds(goals []ele.Goal, tol float64) error
}

// allocators holds all available solvers
var allocators = make(map[string]func(dat *inp.SolverData) Solver)

// NewSolver returns a new solver
func NewSolver(dat *inp.SolverData) (Solver, error) {
	alloc, ok := allocators[dat.Type]
	if !ok {
		return nil, chk.Err("cannot find solver type = %q", dat.Type)
	}
	return alloc(dat), nil
}
