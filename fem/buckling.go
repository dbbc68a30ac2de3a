// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// BucklingStatus defines the outcome of a buckling analysis
type BucklingStatus int

const (
	NoBuckling       BucklingStatus = iota // cap on increments reached; inconclusive
	Buckled                                // a heuristic fired; factor is the one of the previous increment (zero if (b) fires at the first increment)
	LoadStepTooLarge                       // the angle heuristic (a) fired at the first increment
)

// String returns the name of the status
func (o BucklingStatus) String() string {
	switch o {
	case NoBuckling:
		return "no buckling detected within range"
	case Buckled:
		return "buckled"
	case LoadStepTooLarge:
		return "load step too large"
	}
	return io.Sf("BucklingStatus(%d)", int(o))
}

// BucklingConfig holds the control parameters of buckling analyses
type BucklingConfig struct {
	Start         float64 // load factor of the first increment
	Step          float64 // load factor increment
	MaxIncrements int     // cap on increments
	MaxIterations int     // cap on relaxation steps per increment
	Threshold     float64 // convergence threshold on the kinetic metric
	AngleLimit    float64 // [deg] heuristic (a): min angle of the load-displacement tangent
	DispLimit     float64 // heuristic (b): max displacement of any particle since the unloaded state
	KeepHistory   bool    // keep all increments; otherwise only the last two
	UseTorque     bool    // solver accounts for orientations
	MergeTol      float64 // tolerance to merge particles
}

// NewBucklingConfig returns the configuration given by model data
func NewBucklingConfig(b *inp.BucklingData, s *inp.SolverData) *BucklingConfig {
	return &BucklingConfig{
		Start:         b.Start,
		Step:          b.Step,
		MaxIncrements: b.NmaxIncr,
		MaxIterations: b.NmaxIt,
		Threshold:     b.Threshold,
		AngleLimit:    b.AngleLimit,
		DispLimit:     b.DispLimit,
		KeepHistory:   b.KeepHistory,
		UseTorque:     s.UseTorque,
		MergeTol:      s.MergeTol,
	}
}

// Check checks configuration
func (o *BucklingConfig) Check() (err error) {
	if o.Start <= 0 || o.Step <= 0 {
		return chk.Err("start and step of load factor must be positive. start=%g, step=%g is invalid", o.Start, o.Step)
	}
	if o.MaxIncrements < 1 || o.MaxIterations < 1 {
		return chk.Err("max numbers of increments and iterations must be at least 1. %d, %d is invalid", o.MaxIncrements, o.MaxIterations)
	}
	if o.Threshold < 0 {
		return chk.Err("threshold must be non-negative. %g is invalid", o.Threshold)
	}
	if o.AngleLimit <= 0 || o.AngleLimit >= 90 {
		return chk.Err("angle limit must be in (0, 90) degrees. %g is invalid", o.AngleLimit)
	}
	if o.DispLimit <= 0 {
		return chk.Err("displacement limit must be positive. %g is invalid", o.DispLimit)
	}
	if o.MergeTol < 0 {
		return chk.Err("merge tolerance must be non-negative. %g is invalid", o.MergeTol)
	}
	return
}

// Factor returns the load factor of increment k
func (o *BucklingConfig) Factor(k int) float64 {
	return o.Start + float64(k)*o.Step
}

// Increment holds the state after one equilibrated load increment
type Increment struct {
	Factor     float64      // load factor
	Iterations int          // relaxation steps performed
	Converged  bool         // kinetic metric fell below threshold before the cap
	Rms        float64      // RMS of displacements relative to the previous increment
	Angle      float64      // [deg] angle of the load-displacement tangent
	MaxDisp    float64      // max displacement since the unloaded state
	Positions  []r3.Vec     // particles
	Outputs    []ele.Result // permanent goals followed by scaled loads
}

// BucklingResult holds the outcome of buckling analyses
type BucklingResult struct {
	Status  BucklingStatus // outcome
	Factor  float64        // buckling load factor; zero unless Buckled
	Factors []float64      // load factor of each increment
	Rms     []float64      // RMS displacement of each increment
	History []*Increment   // all increments or the last two
	Initial []r3.Vec       // unloaded positions
}

// Last returns the last increment or nil
func (o *BucklingResult) Last() *Increment {
	if len(o.History) == 0 {
		return nil
	}
	return o.History[len(o.History)-1]
}

// Buckling implements the incremental buckling analysis.
//
//   For increments k = 0, 1, ... the loads are scaled by λ_k = start + k·step
//   and the structure is relaxed to equilibrium. Buckling is detected when
//   either (a) the tangent of the λ versus RMS displacement curve becomes
//   flatter than AngleLimit, i.e. atan(Δλ/rms) < AngleLimit, or (b) a
//   particle moves more than DispLimit from its unloaded position
//
type Buckling struct {
	Cfg     *BucklingConfig
	Verbose bool
}

// NewBuckling returns a new buckling analysis
func NewBuckling(cfg *BucklingConfig, verbose bool) (o *Buckling, err error) {
	if err = cfg.Check(); err != nil {
		return nil, chk.Err("cannot create buckling analysis:\n%v", err)
	}
	return &Buckling{Cfg: cfg, Verbose: verbose}, nil
}

// Run runs the analysis. goals are permanent; loads are scaled at each
// increment. The solver must be fresh; indices are assigned here
func (o *Buckling) Run(solver Solver, goals []ele.Goal, loads []ele.Scalable) (res *BucklingResult, err error) {

	// indices
	if b, ok := solver.(WithBounds); ok {
		all := make([]ele.Goal, 0, len(goals)+len(loads))
		all = append(all, goals...)
		for _, g := range loads {
			all = append(all, g)
		}
		if err = b.SetBounds(all, o.Cfg.MergeTol); err != nil {
			return
		}
	}
	for _, g := range goals {
		if err = solver.AssignIndices(g, o.Cfg.MergeTol); err != nil {
			return
		}
	}
	for _, g := range loads {
		if err = solver.AssignIndices(g, o.Cfg.MergeTol); err != nil {
			return
		}
	}

	// loop over increments
	res = &BucklingResult{Initial: solver.Positions()}
	prev, λprev := res.Initial, 0.0
	all := make([]ele.Goal, len(goals)+len(loads))
	copy(all, goals)
	for k := 0; k < o.Cfg.MaxIncrements; k++ {

		// increment
		λ := o.Cfg.Factor(k)
		for i, g := range loads {
			all[len(goals)+i] = g.Scaled(λ)
		}

		// equilibrate
		inc := &Increment{Factor: λ}
		for inc.Iterations < o.Cfg.MaxIterations {
			solver.StepOnce(all, o.Cfg.UseTorque, o.Cfg.Threshold)
			inc.Iterations++
			if solver.KineticMetric() < o.Cfg.Threshold {
				inc.Converged = true
				break
			}
		}
		inc.Positions = solver.Positions()
		inc.Outputs = solver.CollectOutputs(all)

		// classify
		inc.Rms = rmsDisplacement(prev, inc.Positions)
		inc.Angle = math.Atan2(λ-λprev, inc.Rms) * 180.0 / math.Pi
		for i, x := range inc.Positions {
			inc.MaxDisp = math.Max(inc.MaxDisp, r3.Norm(r3.Sub(x, res.Initial[i])))
		}
		res.Factors = append(res.Factors, λ)
		res.Rms = append(res.Rms, inc.Rms)
		res.History = append(res.History, inc)
		if !o.Cfg.KeepHistory && len(res.History) > 2 {
			res.History = res.History[len(res.History)-2:]
		}
		if o.Verbose {
			io.Pf("> increment %3d: λ=%g iterations=%d converged=%v rms=%g angle=%g\n", k, λ, inc.Iterations, inc.Converged, inc.Rms, inc.Angle)
		}
		angleFired := inc.Angle < o.Cfg.AngleLimit
		if angleFired || inc.MaxDisp > o.Cfg.DispLimit {
			if k == 0 && angleFired {
				res.Status = LoadStepTooLarge
			} else {
				res.Status = Buckled
				res.Factor = λprev
			}
			if o.Verbose {
				io.PfYel("> %v: factor=%g\n", res.Status, res.Factor)
			}
			return
		}
		prev, λprev = inc.Positions, λ
	}
	res.Status = NoBuckling
	if o.Verbose {
		io.PfYel("> %v: last factor=%g\n", res.Status, λprev)
	}
	return
}

// rmsDisplacement returns the RMS of the displacement magnitudes from a to b
func rmsDisplacement(a, b []r3.Vec) float64 {
	if len(b) == 0 {
		return 0
	}
	d := make([]float64, len(b))
	for i := range b {
		d[i] = r3.Norm(r3.Sub(b[i], a[i]))
	}
	return la.Vector(d).Rms()
}
