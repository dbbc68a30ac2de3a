// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the geometric value types consumed by goals
package geo

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// global axes
var (
	Ex = r3.Vec{X: 1}
	Ey = r3.Vec{Y: 1}
	Ez = r3.Vec{Z: 1}
)

// Identity is the orientation of the world XY plane
var Identity = quat.Number{Real: 1}

// Rotate rotates v by the unit quaternion q
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Unit returns q scaled to unit length. A null quaternion yields the identity
func Unit(q quat.Number) quat.Number {
	a := quat.Abs(q)
	if a == 0 {
		return Identity
	}
	return quat.Scale(1.0/a, q)
}

// FromAxes returns the orientation whose local axes are the given orthonormal
// vectors x, y and z := x cross y
func FromAxes(x, y r3.Vec) quat.Number {
	z := r3.Cross(x, y)
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z
	var q quat.Number
	tr := m00 + m11 + m22
	switch {
	case tr > 0:
		s := 2.0 * math.Sqrt(tr+1.0)
		q = quat.Number{Real: s / 4.0, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := 2.0 * math.Sqrt(1.0+m00-m11-m22)
		q = quat.Number{Real: (m21 - m12) / s, Imag: s / 4.0, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2.0 * math.Sqrt(1.0+m11-m00-m22)
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: s / 4.0, Kmag: (m12 + m21) / s}
	default:
		s := 2.0 * math.Sqrt(1.0+m22-m00-m11)
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: s / 4.0}
	}
	return Unit(q)
}

// Relative returns r such that to = from * r
func Relative(from, to quat.Number) quat.Number {
	return Unit(quat.Mul(quat.Conj(from), to))
}

// RotationVector returns the rotation vector (axis times angle) of the unit
// quaternion q, taking the shortest path
func RotationVector(q quat.Number) r3.Vec {
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	l := quat.Log(Unit(q))
	return r3.Vec{X: 2 * l.Imag, Y: 2 * l.Jmag, Z: 2 * l.Kmag}
}

// FromRotationVector is the inverse of RotationVector
func FromRotationVector(w r3.Vec) quat.Number {
	return Unit(quat.Exp(quat.Number{Imag: w.X / 2, Jmag: w.Y / 2, Kmag: w.Z / 2}))
}

// Orthogonal returns a unit vector perpendicular to v
func Orthogonal(v r3.Vec) r3.Vec {
	a := Ex
	if math.Abs(v.X) > math.Abs(v.Y) && math.Abs(v.X) > math.Abs(v.Z) {
		a = Ey
	}
	return r3.Unit(r3.Cross(v, a))
}

// Circumcenter returns the centre of the circle through a, b and c.
// ok is false if the points are collinear (infinite radius)
func Circumcenter(a, b, c r3.Vec) (centre r3.Vec, ok bool) {
	u := r3.Sub(b, a)
	v := r3.Sub(c, a)
	n := r3.Cross(u, v)
	nn := r3.Norm2(n)
	if nn <= 1e-20*r3.Norm2(u)*r3.Norm2(v) || nn == 0 {
		return
	}
	// centre = a + (|u|² v×n + |v|² n×u) / (2|n|²)
	w := r3.Add(r3.Scale(r3.Norm2(u), r3.Cross(v, n)), r3.Scale(r3.Norm2(v), r3.Cross(n, u)))
	return r3.Add(a, r3.Scale(0.5/nn, w)), true
}
