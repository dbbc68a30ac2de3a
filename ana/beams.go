// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// CantileverTip holds the linear solution of a cantilever with a transverse tip load P
//
//    fixed                  P
//     |>                    |
//     |>====================v
//     |>        L
//
type CantileverTip struct {
	P, L, EI float64 // load, length and bending stiffness

	// derived
	Deflection float64 // tip deflection PL³/(3EI)
	Rotation   float64 // tip rotation PL²/(2EI)
	RootMoment float64 // moment at the support P L
	Shear      float64 // constant shear force P
}

// Init initialises the solution
func (o *CantileverTip) Init(P, L, EI float64) {
	o.P, o.L, o.EI = P, L, EI
	o.Deflection = P * L * L * L / (3.0 * EI)
	o.Rotation = P * L * L / (2.0 * EI)
	o.RootMoment = P * L
	o.Shear = P
}

// Deflect returns the deflection and rotation at station x in [0, L]
func (o *CantileverTip) Deflect(x float64) (w, θ float64) {
	w = o.P * x * x * (3.0*o.L - x) / (6.0 * o.EI)
	θ = o.P * x * (2.0*o.L - x) / (2.0 * o.EI)
	return
}

// EulerLoad returns the critical load of a column; K is the effective length factor
//   K = 1 pinned-pinned, 2 cantilever, 0.5 fixed-fixed, 0.7 fixed-pinned
func EulerLoad(EI, L, K float64) float64 {
	kl := K * L
	return math.Pi * math.Pi * EI / (kl * kl)
}

// AxialBar returns the elongation of a bar under axial force F
func AxialBar(F, L, EA float64) float64 {
	return F * L / EA
}
