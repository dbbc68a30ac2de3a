// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements boundary conditions: supports and loads
package bcs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// default weightings of supports
const (
	DefaultStrength    = 1e10 // translations
	DefaultRotStrength = 1e14 // rotations
)

// Support holds a particle at a target position on the fixed axes
type Support struct {
	ele.GoalObject
	Target r3.Vec   // position to hold
	Fix    ele.Mask // fixed axes
	warn   string
}

// SupportResult holds the reactions of supports
type SupportResult struct {
	Index       int       // particle index
	Plane       geo.Plane // current frame of the supported particle
	ReactionKN  r3.Vec    // force the support applies on the structure
	ReactionKNm r3.Vec    // moment the support applies on the structure (6-DOF only)
	LocalKNm    r3.Vec    // ReactionKNm on the axes of the target plane (6-DOF only)
}

// Kind returns "support"
func (o SupportResult) Kind() string { return "support" }

// register goals
func init() {
	ele.SetAllocator("support", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if len(gdat.Nodes) != 1 {
			return nil, chk.Err("support requires 1 node; %d is invalid", len(gdat.Nodes))
		}
		return NewSupport(mdl.Coords(gdat.Nodes[0]), ele.ParseMask(gdat.Fix), gdat.Param("strength", DefaultStrength))
	})
}

// NewSupport returns a new support at pt
func NewSupport(pt r3.Vec, fix ele.Mask, strength float64) (o *Support, err error) {
	if strength <= 0 {
		return nil, chk.Err("strength must be positive. %g is invalid", strength)
	}
	o = &Support{Target: pt, Fix: fix}
	o.Init([]r3.Vec{pt}, strength)
	if !fix.Any() {
		o.warn = io.Sf("support at %v does not fix any degree of freedom", pt)
	}
	return
}

// Masks returns the fixed axes
func (o *Support) Masks() []ele.Mask { return []ele.Mask{o.Fix} }

// Warning returns a message if no axis is fixed
func (o *Support) Warning() string { return o.warn }

// Calculate computes the corrections
func (o *Support) Calculate(p []ele.Particle) {
	o.Move[0] = o.Fix.Apply(r3.Sub(o.Target, o.Pos(p, 0)))
}

// Output returns the reaction
func (o *Support) Output(p []ele.Particle) ele.Result {
	x := o.Pos(p, 0)
	m := o.Fix.Apply(r3.Sub(o.Target, x))
	return SupportResult{
		Index:      o.PIndex[0],
		Plane:      p[o.PIndex[0]].Plane(),
		ReactionKN: r3.Scale(o.Weighting[0]*ele.NtoKN, m),
	}
}
