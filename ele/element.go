// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the goal contract shared by all structural goals
package ele

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Goal defines what all goals must implement
type Goal interface {

	// information and initialisation
	PositionsOfInterest() []r3.Vec // reference geometry; called once at registration
	Indices() []int                // particle indices; valid after SetIndices
	SetIndices(idx []int) error    // set particle indices (called by the solver)

	// called for each iteration
	Calculate(p []Particle) // recomputes Move (and Torque) buffers from current particles
	Moves() []r3.Vec        // corrections computed by the last Calculate
	Weightings() []float64  // effective stiffness of each correction

	// results
	Output(p []Particle) Result // side-effect-free snapshot of the element state
}

// WithTorque defines goals acting on particle orientations
type WithTorque interface {
	InitialOrientations() []quat.Number // orientation of each particle at construction
	Torques() []r3.Vec                  // corrective rotation vectors computed by the last Calculate
	TorqueWeightings() []float64        // effective rotational stiffness
}

// WithMask defines goals that act only on some translational axes
type WithMask interface {
	Masks() []Mask // one mask per particle
}

// WithTorqueMask defines goals that act only on some rotational axes
type WithTorqueMask interface {
	TorqueMasks() []Mask // one mask per particle
}

// Scalable defines goals whose magnitude can be scaled; e.g. loads
type Scalable interface {
	Goal
	Scaled(factor float64) Goal // returns a fresh copy; the receiver is unchanged
}

// WithWarning defines goals carrying non-fatal configuration warnings
type WithWarning interface {
	Warning() string // empty if there are no warnings
}

// Result defines output records of goals
type Result interface {
	Kind() string // name of the goal family; e.g. "bar", "beam"
}

// Mask selects global axes
type Mask [3]bool

// MaskAll selects all axes
var MaskAll = Mask{true, true, true}

// Apply zeroes the components of v on unselected axes
func (m Mask) Apply(v r3.Vec) r3.Vec {
	if !m[0] {
		v.X = 0
	}
	if !m[1] {
		v.Y = 0
	}
	if !m[2] {
		v.Z = 0
	}
	return v
}

// Any tells whether at least one axis is selected
func (m Mask) Any() bool { return m[0] || m[1] || m[2] }

// ParseMask converts strings such as "xyz", "xz" or "" into a mask
func ParseMask(axes string) (m Mask) {
	for _, c := range axes {
		switch c {
		case 'x', 'X':
			m[0] = true
		case 'y', 'Y':
			m[1] = true
		case 'z', 'Z':
			m[2] = true
		}
	}
	return
}
