// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bar represents a two-node member carrying axial loads only.
// A cable is a bar that cannot carry compression
type Bar struct {
	ele.GoalObject

	// parameters
	E          float64 // Young's modulus
	A          float64 // cross-sectional area
	Pretension float64 // initial tension of cables
	Cable      bool    // no compression

	// derived
	L0    float64 // length at construction
	Lrest float64 // length at zero force
}

// BarResult holds the output of bars and cables
type BarResult struct {
	StartIndex int      // particle at start
	EndIndex   int      // particle at end
	Line       geo.Line // current chord
	ForceKN    float64  // axial force; tension is positive
	StressMPa  float64  // axial stress
	cable      bool
}

// Kind returns "bar" or "cable"
func (o BarResult) Kind() string {
	if o.cable {
		return "cable"
	}
	return "bar"
}

// register goals
func init() {
	ele.SetAllocator("bar", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if err := checkNodes(gdat, 2); err != nil {
			return nil, err
		}
		m, err := getOned(gdat, mdl)
		if err != nil {
			return nil, err
		}
		return NewBar(mdl.Coords(gdat.Nodes[0]), mdl.Coords(gdat.Nodes[1]), m.E, m.A)
	})
	ele.SetAllocator("cable", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if err := checkNodes(gdat, 2); err != nil {
			return nil, err
		}
		m, err := getOned(gdat, mdl)
		if err != nil {
			return nil, err
		}
		a, b := mdl.Coords(gdat.Nodes[0]), mdl.Coords(gdat.Nodes[1])
		if p := gdat.Prms.Find("prestress"); p != nil {
			return NewCablePrestress(a, b, m.E, m.A, p.V)
		}
		return NewCable(a, b, m.E, m.A, gdat.Param("pretension", 0))
	})
}

// NewBar returns a new bar whose rest length is the distance between start and end
func NewBar(start, end r3.Vec, E, A float64) (*Bar, error) {
	return newBar(start, end, E, A, 0, false)
}

// NewCable returns a new cable with initial tension (force units)
func NewCable(start, end r3.Vec, E, A, pretension float64) (*Bar, error) {
	return newBar(start, end, E, A, pretension, true)
}

// NewCablePrestress returns a new cable with initial stress (stress units)
func NewCablePrestress(start, end r3.Vec, E, A, stress float64) (*Bar, error) {
	return newBar(start, end, E, A, stress*A, true)
}

func newBar(start, end r3.Vec, E, A, pretension float64, cable bool) (o *Bar, err error) {
	if E <= 0 || A <= 0 {
		return nil, chk.Err("E and A must be positive. E=%g, A=%g is invalid", E, A)
	}
	L0 := r3.Norm(r3.Sub(end, start))
	if L0 < 1e-12 {
		return nil, chk.Err("cannot create member with zero length: start=%v end=%v", start, end)
	}
	o = &Bar{E: E, A: A, Pretension: pretension, Cable: cable, L0: L0}
	o.Lrest = L0 * (1.0 - pretension/(E*A))
	if o.Lrest <= 0 {
		return nil, chk.Err("pretension %g exceeds the capacity of the member (EA=%g) giving rest length %g", pretension, E*A, o.Lrest)
	}
	o.Init([]r3.Vec{start, end}, 2.0*E*A/o.Lrest)
	return
}

// Calculate computes the corrections
func (o *Bar) Calculate(p []ele.Particle) {
	o.ClearMoves()
	d := r3.Sub(o.Pos(p, 1), o.Pos(p, 0))
	L := r3.Norm(d)
	if L == 0 {
		return
	}
	e := L - o.Lrest
	if o.Cable && e <= 0 {
		return
	}
	m := r3.Scale(0.5*e/L, d)
	o.Move[0] = m
	o.Move[1] = r3.Scale(-1, m)
}

// Force returns the axial force for the current length L
func (o *Bar) Force(L float64) float64 {
	e := L - o.Lrest
	if o.Cable && e <= 0 {
		return 0
	}
	return o.E * o.A * e / o.Lrest
}

// Output returns the current chord, axial force and stress
func (o *Bar) Output(p []ele.Particle) ele.Result {
	line := geo.Line{From: o.Pos(p, 0), To: o.Pos(p, 1)}
	N := o.Force(line.Length())
	return BarResult{
		StartIndex: o.PIndex[0],
		EndIndex:   o.PIndex[1],
		Line:       line,
		ForceKN:    N * ele.NtoKN,
		StressMPa:  N / o.A,
		cable:      o.Cable,
	}
}
