// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/relaxfem/relaxfem/geo"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Particle holds the state of a node: position and orientation frame.
//
//   The particle array is owned by the solver; goals only read it
//
type Particle struct {
	Position    r3.Vec      // current position
	Orientation quat.Number // current orientation (unit quaternion)
}

// Plane returns the particle frame as a plane
func (o Particle) Plane() geo.Plane {
	return geo.Plane{Origin: o.Position, Q: o.Orientation}
}

// Positions extracts the positions of particles
func Positions(p []Particle) (x []r3.Vec) {
	x = make([]r3.Vec, len(p))
	for i, q := range p {
		x[i] = q.Position
	}
	return
}
