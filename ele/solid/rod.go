// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// RodRest defines the rest curvature of rods
type RodRest int

const (
	RestStraight RodRest = iota // rest curvature is zero
	RestCurrent                 // rest curvature is measured at construction
)

// RodMethod defines how the curvature of rods is computed
type RodMethod int

const (
	RodAngle  RodMethod = iota // from the turning angle between segments: 2 sin(α) / |AD|
	RodCircle                  // from the circle through A, H and D: 1 / R
)

// collinearity tolerance on sin(α)
const rodTolSin = 1e-12

// Rod represents a bending hinge between segments A-B and C-D.
//
//                     H = (B+C)/2
//                 ,o.
//          u    ,'   `.    v
//             ,'       `.
//           ,'           `.
//         (A)             (D)
//
//   B and C are usually the same particle. The bending moment at H is
//   M = EI (κ - κ0) where κ is the curvature of A-H-D.
//
//   κ is unsigned: a RestCurrent rod bent into the mirror image of its rest
//   shape about the chord A-D has κ = κ0 and carries no moment
//
type Rod struct {
	ele.GoalObject

	// parameters
	EI     float64   // bending rigidity
	I      float64   // moment of inertia
	Zf     float64   // distance from neutral axis to extreme fibre
	Rest   RodRest   // rest state
	Method RodMethod // curvature algorithm

	// derived
	La0    float64 // length of A-H at construction
	Lb0    float64 // length of H-D at construction
	Kappa0 float64 // rest curvature
}

// RodResult holds the output of rods
type RodResult struct {
	SharedIndex  int       // particle at the hinge (B)
	BendingPlane geo.Plane // origin at hinge, x along tangent, y towards convex side
	MomentKNm    float64   // bending moment
	StressMPa    float64   // bending stress at extreme fibre
}

// Kind returns "rod"
func (o RodResult) Kind() string { return "rod" }

// register goal
func init() {
	ele.SetAllocator("rod", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if err := checkNodes(gdat, 4); err != nil {
			return nil, err
		}
		m, err := getOned(gdat, mdl)
		if err != nil {
			return nil, err
		}
		rest := RestStraight
		switch s := gdat.Flag("rest", "straight"); s {
		case "straight":
		case "current":
			rest = RestCurrent
		default:
			return nil, chk.Err("rest %q is invalid; options are \"straight\" and \"current\"", s)
		}
		method := RodAngle
		switch s := gdat.Flag("method", "angle"); s {
		case "angle":
		case "circle":
			method = RodCircle
		default:
			return nil, chk.Err("method %q is invalid; options are \"angle\" and \"circle\"", s)
		}
		var x [4]r3.Vec
		for i, n := range gdat.Nodes {
			x[i] = mdl.Coords(n)
		}
		return NewRod(x[0], x[1], x[2], x[3], m.EIy(), m.I22, m.Zf, rest, method)
	})
}

// NewRod returns a new rod
func NewRod(a, b, c, d r3.Vec, EI, I, zfibre float64, rest RodRest, method RodMethod) (o *Rod, err error) {
	if EI <= 0 || I <= 0 {
		return nil, chk.Err("EI and I must be positive. EI=%g, I=%g is invalid", EI, I)
	}
	if r3.Norm(r3.Sub(b, a)) < 1e-12 || r3.Norm(r3.Sub(d, c)) < 1e-12 {
		return nil, chk.Err("cannot create rod with zero-length segment: A=%v B=%v C=%v D=%v", a, b, c, d)
	}
	o = &Rod{EI: EI, I: I, Zf: zfibre, Rest: rest, Method: method}
	h := r3.Scale(0.5, r3.Add(b, c))
	o.La0 = r3.Norm(r3.Sub(h, a))
	o.Lb0 = r3.Norm(r3.Sub(d, h))
	if o.La0 < 1e-12 || o.Lb0 < 1e-12 {
		return nil, chk.Err("cannot create rod with coincident hinge and end points: A=%v H=%v D=%v", a, h, d)
	}
	if rest == RestCurrent {
		o.Kappa0, _ = o.curvature(a, h, d)
	}

	// weightings: stiffness of each point against transverse displacements
	s0 := o.La0 + o.Lb0
	kh := 2.0 * EI / s0 * math.Pow(1.0/o.La0+1.0/o.Lb0, 2)
	o.Init([]r3.Vec{a, b, c, d}, 1)
	o.Weighting[0] = 2.0 * EI / (o.La0 * o.La0 * s0)
	o.Weighting[1] = kh / 2.0
	o.Weighting[2] = kh / 2.0
	o.Weighting[3] = 2.0 * EI / (o.Lb0 * o.Lb0 * s0)
	return
}

// curvature returns the curvature of a-h-d. ok is false if the points are collinear
func (o *Rod) curvature(a, h, d r3.Vec) (kappa float64, ok bool) {
	u := r3.Sub(h, a)
	v := r3.Sub(d, h)
	n := r3.Norm(r3.Cross(u, v))
	if n <= rodTolSin*r3.Norm(u)*r3.Norm(v) {
		return 0, false
	}
	switch o.Method {
	case RodCircle:
		centre, okc := geo.Circumcenter(a, h, d)
		if !okc {
			return 0, false
		}
		return 1.0 / r3.Norm(r3.Sub(a, centre)), true
	default:
		alpha := math.Atan2(n, r3.Dot(u, v))
		return 2.0 * math.Sin(alpha) / r3.Norm(r3.Sub(d, a)), true
	}
}

// state computes the hinge, the bending moment and the forces at A and D
func (o *Rod) state(p []ele.Particle) (h r3.Vec, M float64, fa, fd r3.Vec, ok bool) {
	a, d := o.Pos(p, 0), o.Pos(p, 3)
	h = r3.Scale(0.5, r3.Add(o.Pos(p, 1), o.Pos(p, 2)))
	kappa, ok := o.curvature(a, h, d)
	if !ok {
		return
	}
	M = o.EI * (kappa - o.Kappa0)
	u := r3.Sub(h, a)
	v := r3.Sub(d, h)
	n := r3.Cross(u, v)
	fa = r3.Scale(M/r3.Norm(u), r3.Unit(r3.Cross(u, n)))
	fd = r3.Scale(M/r3.Norm(v), r3.Unit(r3.Cross(v, n)))
	return
}

// Calculate computes the corrections
func (o *Rod) Calculate(p []ele.Particle) {
	o.ClearMoves()
	_, _, fa, fd, ok := o.state(p)
	if !ok {
		return
	}
	fh := r3.Scale(-0.5, r3.Add(fa, fd))
	o.Move[0] = r3.Scale(1.0/o.Weighting[0], fa)
	o.Move[1] = r3.Scale(1.0/o.Weighting[1], fh)
	o.Move[2] = r3.Scale(1.0/o.Weighting[2], fh)
	o.Move[3] = r3.Scale(1.0/o.Weighting[3], fd)
}

// Output returns the bending plane, moment and stress
func (o *Rod) Output(p []ele.Particle) ele.Result {
	h, M, _, _, ok := o.state(p)
	a, d := o.Pos(p, 0), o.Pos(p, 3)
	u, v := r3.Sub(h, a), r3.Sub(d, h)
	x := r3.Sub(d, a)
	if r3.Norm(u) > 0 && r3.Norm(v) > 0 {
		x = r3.Add(r3.Unit(u), r3.Unit(v))
	}
	var y r3.Vec
	if ok {
		n := r3.Cross(u, v)
		y = r3.Add(r3.Unit(r3.Cross(u, n)), r3.Unit(r3.Cross(v, n)))
	}
	if r3.Norm(y) < 1e-12 {
		y = geo.Orthogonal(x)
	}
	plane, err := geo.NewPlane(h, x, y)
	if err != nil {
		plane = geo.WorldXY(h)
	}
	return RodResult{
		SharedIndex:  o.PIndex[1],
		BendingPlane: plane,
		MomentKNm:    M * ele.NmmToKNm,
		StressMPa:    M * o.Zf / o.I,
	}
}
