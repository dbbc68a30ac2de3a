// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Support6 holds a particle at a target plane on the fixed translational and
// rotational axes. Rotations are measured by the rotation vector (log map)
// taking the current orientation to the target one
type Support6 struct {
	ele.OrientedGoalObject
	Target geo.Plane // frame to hold
	Fix    ele.Mask  // fixed translational axes
	FixRot ele.Mask  // fixed rotational axes
	warn   string
}

// register goal
func init() {
	ele.SetAllocator("support6", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if len(gdat.Nodes) != 1 {
			return nil, chk.Err("support6 requires 1 node; %d is invalid", len(gdat.Nodes))
		}
		return NewSupport6(mdl.Plane(gdat.Nodes[0]), ele.ParseMask(gdat.Fix), ele.ParseMask(gdat.FixRot),
			gdat.Param("strength", DefaultStrength), gdat.Param("rotstrength", DefaultRotStrength))
	})
}

// NewSupport6 returns a new 6-DOF support at target
func NewSupport6(target geo.Plane, fix, fixRot ele.Mask, strength, rotStrength float64) (o *Support6, err error) {
	if strength <= 0 || rotStrength <= 0 {
		return nil, chk.Err("strengths must be positive. %g and %g is invalid", strength, rotStrength)
	}
	target.Q = geo.Unit(target.Q)
	o = &Support6{Target: target, Fix: fix, FixRot: fixRot}
	o.InitOriented([]r3.Vec{target.Origin}, []quat.Number{target.Q}, strength, rotStrength)
	if !fix.Any() && !fixRot.Any() {
		o.warn = io.Sf("support6 at %v does not fix any degree of freedom", target.Origin)
	}
	return
}

// Masks returns the fixed translational axes
func (o *Support6) Masks() []ele.Mask { return []ele.Mask{o.Fix} }

// TorqueMasks returns the fixed rotational axes
func (o *Support6) TorqueMasks() []ele.Mask { return []ele.Mask{o.FixRot} }

// Warning returns a message if no axis is fixed
func (o *Support6) Warning() string { return o.warn }

// corrections returns the masked translation and rotation to the target
func (o *Support6) corrections(p []ele.Particle) (m, r r3.Vec) {
	q := p[o.PIndex[0]]
	m = o.Fix.Apply(r3.Sub(o.Target.Origin, q.Position))
	r = o.FixRot.Apply(geo.RotationVector(quat.Mul(o.Target.Q, quat.Conj(q.Orientation))))
	return
}

// Calculate computes the corrections
func (o *Support6) Calculate(p []ele.Particle) {
	o.Move[0], o.Torque[0] = o.corrections(p)
}

// Output returns the reactions
func (o *Support6) Output(p []ele.Particle) ele.Result {
	m, r := o.corrections(p)
	mom := r3.Scale(o.TorqueWeighting[0]*ele.NmmToKNm, r)
	return SupportResult{
		Index:       o.PIndex[0],
		Plane:       p[o.PIndex[0]].Plane(),
		ReactionKN:  r3.Scale(o.Weighting[0]*ele.NtoKN, m),
		ReactionKNm: mom,
		LocalKNm:    geo.ToLocal(o.Target, mom),
	}
}
