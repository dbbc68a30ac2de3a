// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// number of bins along the largest side of the box
const domainNdiv = 16

// Domain holds the particles shared by all goals.
//
//   Particles closer than the merge tolerance are the same particle. A new
//   particle takes its orientation from the first goal registering it.
//
//   Registration positions are kept in bins whose size is at least twice the
//   tolerance; hence the cube of side 2·tol around a point touches at most two
//   bins along each direction and its eight corners locate all of them
//
type Domain struct {
	Particles []ele.Particle // current state
	Initial   []ele.Particle // state at registration

	// bins for merging particles
	tol    float64
	bins   gm.Bins
	lo, hi r3.Vec // box covered by bins (without padding)
	ready  bool   // bins are allocated
}

// NewDomain returns a new empty domain
func NewDomain() (o *Domain) {
	return new(Domain)
}

// SetBounds allocates the bins for all positions of interest of goals.
// Positions outside this box registered later make the bins grow
func (o *Domain) SetBounds(goals []ele.Goal, tol float64) (err error) {
	if err = o.setTol(tol); err != nil {
		return
	}
	var pts []r3.Vec
	for _, g := range goals {
		pts = append(pts, g.PositionsOfInterest()...)
	}
	if len(pts) == 0 {
		return
	}
	o.resize(pts)
	return
}

// AssignIndices registers the positions of interest of goal and sets its particle indices
func (o *Domain) AssignIndices(goal ele.Goal, tol float64) (err error) {
	if err = o.setTol(tol); err != nil {
		return
	}
	var orients []quat.Number
	if g, ok := goal.(ele.WithTorque); ok {
		orients = g.InitialOrientations()
	}
	ppos := goal.PositionsOfInterest()
	if !o.contains(ppos) {
		o.resize(ppos)
	}
	idx := make([]int, len(ppos))
	for i, x := range ppos {
		q := geo.Identity
		if i < len(orients) {
			q = geo.Unit(orients[i])
		}
		idx[i] = o.find(x)
		if idx[i] < 0 {
			idx[i] = o.add(ele.Particle{Position: x, Orientation: q})
		}
	}
	return goal.SetIndices(idx)
}

// Positions returns a copy of the current positions
func (o *Domain) Positions() []r3.Vec {
	return ele.Positions(o.Particles)
}

// setTol sets the merge tolerance; it cannot change once particles exist
func (o *Domain) setTol(tol float64) error {
	if tol < 0 {
		return chk.Err("merge tolerance must be non-negative. %g is invalid", tol)
	}
	if len(o.Particles) > 0 && tol != o.tol {
		return chk.Err("merge tolerance cannot change from %g to %g after particles are registered", o.tol, tol)
	}
	if o.ready && tol != o.tol {
		o.ready = false
	}
	o.tol = tol
	return nil
}

// contains tells whether all pts are inside the box covered by bins
func (o *Domain) contains(pts []r3.Vec) bool {
	if !o.ready {
		return false
	}
	for _, x := range pts {
		if x.X < o.lo.X || x.X > o.hi.X || x.Y < o.lo.Y || x.Y > o.hi.Y || x.Z < o.lo.Z || x.Z > o.hi.Z {
			return false
		}
	}
	return true
}

// resize (re)allocates the bins covering the registered particles and pts
func (o *Domain) resize(pts []r3.Vec) {

	// box
	first := true
	grow := func(x r3.Vec) {
		if first {
			o.lo, o.hi, first = x, x, false
			return
		}
		o.lo = r3.Vec{X: math.Min(o.lo.X, x.X), Y: math.Min(o.lo.Y, x.Y), Z: math.Min(o.lo.Z, x.Z)}
		o.hi = r3.Vec{X: math.Max(o.hi.X, x.X), Y: math.Max(o.hi.Y, x.Y), Z: math.Max(o.hi.Z, x.Z)}
	}
	if o.ready {
		grow(o.lo)
		grow(o.hi)
	}
	for _, p := range o.Initial {
		grow(p.Position)
	}
	for _, x := range pts {
		grow(x)
	}

	// enlarge a growing box to avoid reallocating at every goal
	d := r3.Sub(o.hi, o.lo)
	span := math.Max(d.X, math.Max(d.Y, d.Z))
	if o.ready {
		o.lo = r3.Sub(o.lo, r3.Scale(0.25, d))
		o.hi = r3.Add(o.hi, r3.Scale(0.25, d))
		span *= 1.5
	}

	// bins: size ≥ 2·tol and padding ≥ size + tol
	size := math.Max(2.0*o.tol, span/domainNdiv)
	if size <= 0 {
		size = 1
	}
	pad := 2.0 * size
	xmin := []float64{o.lo.X - pad, o.lo.Y - pad, o.lo.Z - pad}
	xmax := []float64{o.hi.X + pad, o.hi.Y + pad, o.hi.Z + pad}
	ndiv := make([]int, 3)
	for k := 0; k < 3; k++ {
		ndiv[k] = int(math.Floor((xmax[k] - xmin[k]) / size))
	}
	o.bins.Init(xmin, xmax, ndiv)
	for id, p := range o.Initial {
		o.bins.Append(coords(p.Position), id, nil)
	}
	o.ready = true
}

// find returns the index of the closest particle within tol of x or -1
func (o *Domain) find(x r3.Vec) int {
	best, dmin := -1, math.Inf(1)
	visited := make(map[int]bool, 8)
	for _, dx := range []float64{-o.tol, o.tol} {
		for _, dy := range []float64{-o.tol, o.tol} {
			for _, dz := range []float64{-o.tol, o.tol} {
				idx := o.bins.CalcIndex([]float64{x.X + dx, x.Y + dy, x.Z + dz})
				if idx < 0 || visited[idx] {
					continue
				}
				visited[idx] = true
				bin := o.bins.FindBinByIndex(idx)
				if bin == nil {
					continue
				}
				for _, entry := range bin.Entries {
					d := r3.Norm(r3.Sub(o.Initial[entry.ID].Position, x))
					if d <= o.tol && (d < dmin || (d == dmin && entry.ID < best)) {
						best, dmin = entry.ID, d
					}
				}
			}
		}
	}
	return best
}

// add appends a new particle
func (o *Domain) add(p ele.Particle) (id int) {
	id = len(o.Particles)
	o.Particles = append(o.Particles, p)
	o.Initial = append(o.Initial, p)
	o.bins.Append(coords(p.Position), id, nil)
	return
}

// coords returns the components of x
func coords(x r3.Vec) []float64 {
	return []float64{x.X, x.Y, x.Z}
}
