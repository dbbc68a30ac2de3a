// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// GoalObject holds the buffers common to all goals.
// Concrete goals embed it and implement Calculate and Output
type GoalObject struct {
	PPos      []r3.Vec  // positions of interest (reference geometry)
	PIndex    []int     // particle indices; set by the solver
	Move      []r3.Vec  // corrections; recomputed by each Calculate
	Weighting []float64 // effective stiffness of each correction
}

// Init allocates buffers for the given positions of interest; all weightings are set to w
func (o *GoalObject) Init(ppos []r3.Vec, w float64) {
	n := len(ppos)
	o.PPos = ppos
	o.PIndex = make([]int, n)
	for i := 0; i < n; i++ {
		o.PIndex[i] = i
	}
	o.Move = make([]r3.Vec, n)
	o.Weighting = make([]float64, n)
	for i := 0; i < n; i++ {
		o.Weighting[i] = w
	}
}

// PositionsOfInterest returns the reference geometry
func (o *GoalObject) PositionsOfInterest() []r3.Vec { return o.PPos }

// Indices returns the particle indices
func (o *GoalObject) Indices() []int { return o.PIndex }

// SetIndices sets the particle indices
func (o *GoalObject) SetIndices(idx []int) (err error) {
	if len(idx) != len(o.PPos) {
		return chk.Err("cannot set %d indices for goal with %d positions of interest", len(idx), len(o.PPos))
	}
	copy(o.PIndex, idx)
	return
}

// Moves returns the corrections
func (o *GoalObject) Moves() []r3.Vec { return o.Move }

// Weightings returns the weightings
func (o *GoalObject) Weightings() []float64 { return o.Weighting }

// ClearMoves zeroes all corrections
func (o *GoalObject) ClearMoves() {
	for i := range o.Move {
		o.Move[i] = r3.Vec{}
	}
}

// Pos returns the current position of the i-th particle of interest
func (o *GoalObject) Pos(p []Particle, i int) r3.Vec {
	return p[o.PIndex[i]].Position
}

// Copy returns a deep copy of the buffers, keeping particle indices
func (o *GoalObject) Copy() (c GoalObject) {
	c.PPos = append([]r3.Vec{}, o.PPos...)
	c.PIndex = append([]int{}, o.PIndex...)
	c.Move = make([]r3.Vec, len(o.Move))
	c.Weighting = append([]float64{}, o.Weighting...)
	return
}

// OrientedGoalObject holds the buffers of goals acting on orientations too
type OrientedGoalObject struct {
	GoalObject
	InitialOrientation []quat.Number // orientation of each particle at construction
	Torque             []r3.Vec      // corrective rotation vectors
	TorqueWeighting    []float64     // effective rotational stiffness
}

// InitOriented allocates buffers; q holds one initial orientation per position
func (o *OrientedGoalObject) InitOriented(ppos []r3.Vec, q []quat.Number, w, tw float64) {
	o.Init(ppos, w)
	n := len(ppos)
	o.InitialOrientation = q
	o.Torque = make([]r3.Vec, n)
	o.TorqueWeighting = make([]float64, n)
	for i := 0; i < n; i++ {
		o.TorqueWeighting[i] = tw
	}
}

// InitialOrientations returns the orientations at construction
func (o *OrientedGoalObject) InitialOrientations() []quat.Number { return o.InitialOrientation }

// Torques returns the corrective rotation vectors
func (o *OrientedGoalObject) Torques() []r3.Vec { return o.Torque }

// TorqueWeightings returns the rotational weightings
func (o *OrientedGoalObject) TorqueWeightings() []float64 { return o.TorqueWeighting }

// ClearTorques zeroes all rotational corrections
func (o *OrientedGoalObject) ClearTorques() {
	for i := range o.Torque {
		o.Torque[i] = r3.Vec{}
	}
}
