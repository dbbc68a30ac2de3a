// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedLinElast implements a linear elastic model for 1D members
//
//   I22 is the moment of inertia about the member y-axis (bending in x-z),
//   I11 about the member z-axis (bending in x-y)
//
type OnedLinElast struct {
	E   float64 // Young's modulus
	G   float64 // shear modulus
	A   float64 // cross-sectional area
	I22 float64 // moment of inertia of cross section about y-axis
	I11 float64 // moment of inertia of cross section about z-axis
	Jtt float64 // torsional constant
	Zf  float64 // distance from neutral axis to extreme fibre
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	nu := -1.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "nu":
			nu = p.V
		case "A":
			o.A = p.V
		case "I22":
			o.I22 = p.V
		case "I11":
			o.I11 = p.V
		case "Jtt":
			o.Jtt = p.V
		case "zf":
			o.Zf = p.V
		default:
			return chk.Err("oned-elast: parameter named %q is invalid", p.N)
		}
	}
	if o.G == 0 && nu >= 0 {
		o.G = o.E / (2.0 * (1.0 + nu))
	}
	if o.E <= 0 || o.A <= 0 {
		return chk.Err("oned-elast: E and A must be positive. E=%g, A=%g is invalid", o.E, o.A)
	}
	return
}

// GetPrms gets (an example) of parameters. Steel 100 x 100 box [N, mm]
func (o OnedLinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+05},
		&dbf.P{N: "G", V: 7.6923e+04},
		&dbf.P{N: "A", V: 1.0000e+04},
		&dbf.P{N: "I22", V: 8.3333e+06},
		&dbf.P{N: "I11", V: 8.3333e+06},
		&dbf.P{N: "Jtt", V: 1.4063e+07},
		&dbf.P{N: "zf", V: 50},
	}
}

// EA returns the axial rigidity
func (o *OnedLinElast) EA() float64 { return o.E * o.A }

// EIy returns the bending rigidity about the member y-axis
func (o *OnedLinElast) EIy() float64 { return o.E * o.I22 }

// EIz returns the bending rigidity about the member z-axis
func (o *OnedLinElast) EIz() float64 { return o.E * o.I11 }

// GIt returns the torsional rigidity
func (o *OnedLinElast) GIt() float64 { return o.G * o.Jtt }

// CheckBending checks the parameters required by members with bending stiffness
func (o *OnedLinElast) CheckBending() (err error) {
	if o.I22 <= 0 || o.I11 <= 0 {
		return chk.Err("I22 and I11 must be positive. I22=%g, I11=%g is invalid", o.I22, o.I11)
	}
	if o.G <= 0 || o.Jtt <= 0 {
		return chk.Err("G and Jtt must be positive. G=%g, Jtt=%g is invalid", o.G, o.Jtt)
	}
	return
}
