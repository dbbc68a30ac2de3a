// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"runtime"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Relax implements a dynamic relaxation solver.
//
//   Each iteration evaluates all goals against a read-only snapshot of the
//   particles and aggregates the corrections per axis:
//
//     d_i = Σ w·m / Σ w        (only goals acting on that axis)
//     v   = damping·v + d      x += v
//     ω   = damping·ω + dθ     q = exp(ω) q
//
type Relax struct {
	Dom     *Domain  // particles
	Vel     []r3.Vec // translational velocities
	Omega   []r3.Vec // angular velocities
	Damping float64  // momentum factor in [0, 1)
	Ngo     int      // number of goroutines; 0 means runtime.NumCPU

	// auxiliary
	metric float64        // kinetic metric of the last iteration
	snap   []ele.Particle // read-only copy of particles for goals
}

// add solver to factory
func init() {
	allocators["relax"] = func(dat *inp.SolverData) Solver {
		return NewRelax(dat.Damping, dat.Ngo)
	}
}

// NewRelax returns a new relaxation solver
func NewRelax(damping float64, ngo int) *Relax {
	if damping < 0 || damping >= 1 {
		damping = 0.9
	}
	return &Relax{Dom: NewDomain(), Damping: damping, Ngo: ngo}
}

// AssignIndices registers the positions of interest of goal and sets its indices
func (o *Relax) AssignIndices(goal ele.Goal, tol float64) (err error) {
	err = o.Dom.AssignIndices(goal, tol)
	for len(o.Vel) < len(o.Dom.Particles) {
		o.Vel = append(o.Vel, r3.Vec{})
		o.Omega = append(o.Omega, r3.Vec{})
	}
	return
}

// SetBounds sizes the bins of the domain from the positions of interest of goals
func (o *Relax) SetBounds(goals []ele.Goal, tol float64) error {
	return o.Dom.SetBounds(goals, tol)
}

// Particles returns the current particles
func (o *Relax) Particles() []ele.Particle { return o.Dom.Particles }

// Positions returns a copy of the current positions
func (o *Relax) Positions() []r3.Vec { return o.Dom.Positions() }

// KineticMetric returns Σ|v|² + Σ|ω|² of the last iteration
func (o *Relax) KineticMetric() float64 { return o.metric }

// CollectOutputs returns the output of all goals
func (o *Relax) CollectOutputs(goals []ele.Goal) (res []ele.Result) {
	res = make([]ele.Result, len(goals))
	for i, g := range goals {
		res[i] = g.Output(o.Dom.Particles)
	}
	return
}

// StepOnce performs one iteration. Velocities are cleared and particles are
// not moved if the kinetic metric falls below threshold
func (o *Relax) StepOnce(goals []ele.Goal, useTorque bool, threshold float64) {

	// evaluate goals concurrently; particles are read only
	o.snap = append(o.snap[:0], o.Dom.Particles...)
	ngo := o.Ngo
	if ngo < 1 {
		ngo = runtime.NumCPU()
	}
	parallel.WithNumGoroutines(ngo).For(len(goals), func(i, _ int) {
		goals[i].Calculate(o.snap)
	})

	// aggregate
	n := len(o.Dom.Particles)
	wm, ws, tm, ts := make([]r3.Vec, n), make([]r3.Vec, n), make([]r3.Vec, n), make([]r3.Vec, n)
	for _, g := range goals {
		idx, mv, w := g.Indices(), g.Moves(), g.Weightings()
		var masks []ele.Mask
		if gm, ok := g.(ele.WithMask); ok {
			masks = gm.Masks()
		}
		for k, id := range idx {
			accumulate(&wm[id], &ws[id], mv[k], w[k], maskOf(masks, k))
		}
		if !useTorque {
			continue
		}
		gt, ok := g.(ele.WithTorque)
		if !ok {
			continue
		}
		var tmasks []ele.Mask
		if gm, ok := g.(ele.WithTorqueMask); ok {
			tmasks = gm.TorqueMasks()
		}
		tq, tw := gt.Torques(), gt.TorqueWeightings()
		for k, id := range idx {
			accumulate(&tm[id], &ts[id], tq[k], tw[k], maskOf(tmasks, k))
		}
	}

	// integrate
	o.metric = 0
	for i := 0; i < n; i++ {
		o.Vel[i] = r3.Add(r3.Scale(o.Damping, o.Vel[i]), average(wm[i], ws[i]))
		o.metric += r3.Norm2(o.Vel[i])
		if useTorque {
			o.Omega[i] = r3.Add(r3.Scale(o.Damping, o.Omega[i]), average(tm[i], ts[i]))
			o.metric += r3.Norm2(o.Omega[i])
		}
	}
	if o.metric < threshold || math.IsNaN(o.metric) {
		for i := 0; i < n; i++ {
			o.Vel[i], o.Omega[i] = r3.Vec{}, r3.Vec{}
		}
		return
	}
	for i := 0; i < n; i++ {
		p := &o.Dom.Particles[i]
		p.Position = r3.Add(p.Position, o.Vel[i])
		if useTorque {
			p.Orientation = geo.Unit(quat.Mul(geo.FromRotationVector(o.Omega[i]), p.Orientation))
		}
	}
}

// maskOf returns the k-th mask or MaskAll
func maskOf(masks []ele.Mask, k int) ele.Mask {
	if k < len(masks) {
		return masks[k]
	}
	return ele.MaskAll
}

// accumulate adds w·m and w to the selected axes
func accumulate(sum, wsum *r3.Vec, m r3.Vec, w float64, mask ele.Mask) {
	if mask[0] {
		sum.X += w * m.X
		wsum.X += w
	}
	if mask[1] {
		sum.Y += w * m.Y
		wsum.Y += w
	}
	if mask[2] {
		sum.Z += w * m.Z
		wsum.Z += w
	}
}

// average returns sum/wsum per axis; zero where no goal acts
func average(sum, wsum r3.Vec) (d r3.Vec) {
	if wsum.X > 0 {
		d.X = sum.X / wsum.X
	}
	if wsum.Y > 0 {
		d.Y = sum.Y / wsum.Y
	}
	if wsum.Z > 0 {
		d.Z = sum.Z / wsum.Z
	}
	return
}
