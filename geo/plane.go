// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an oriented frame: an origin and the rotation from the world axes
// to the local axes (x, y, z == normal)
type Plane struct {
	Origin r3.Vec      // origin
	Q      quat.Number // orientation
}

// Line is a straight segment
type Line struct {
	From r3.Vec
	To   r3.Vec
}

// WorldXY returns the plane parallel to the world XY plane at origin
func WorldXY(origin r3.Vec) Plane {
	return Plane{Origin: origin, Q: Identity}
}

// NewPlane returns a plane with x along xaxis and y in the xaxis-yaxis plane
func NewPlane(origin, xaxis, yaxis r3.Vec) (o Plane, err error) {
	nx := r3.Norm(xaxis)
	if nx < 1e-12 {
		return o, chk.Err("cannot build plane: x-axis has zero length")
	}
	x := r3.Scale(1.0/nx, xaxis)
	y := r3.Sub(yaxis, r3.Scale(r3.Dot(yaxis, x), x))
	ny := r3.Norm(y)
	if ny < 1e-12*r3.Norm(yaxis) || ny == 0 {
		return o, chk.Err("cannot build plane: y-axis is parallel to x-axis")
	}
	y = r3.Scale(1.0/ny, y)
	return Plane{Origin: origin, Q: FromAxes(x, y)}, nil
}

// XAxis returns the local x-axis
func (o Plane) XAxis() r3.Vec { return Rotate(o.Q, Ex) }

// YAxis returns the local y-axis
func (o Plane) YAxis() r3.Vec { return Rotate(o.Q, Ey) }

// ZAxis returns the normal
func (o Plane) ZAxis() r3.Vec { return Rotate(o.Q, Ez) }

// ToLocal returns the components of the global vector v on the plane axes.
// Used to express moments in a member or support frame
func ToLocal(o Plane, v r3.Vec) r3.Vec {
	return Rotate(quat.Conj(o.Q), v)
}

// ToGlobal is the inverse of ToLocal
func ToGlobal(o Plane, v r3.Vec) r3.Vec {
	return Rotate(o.Q, v)
}

// Length returns the length of the line
func (o Line) Length() float64 { return r3.Norm(r3.Sub(o.To, o.From)) }

// Direction returns the unit vector from From to To
func (o Line) Direction() r3.Vec { return r3.Unit(r3.Sub(o.To, o.From)) }
