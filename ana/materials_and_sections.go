// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and reference data for structural members
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes cross-sectional moments of inertia and other properties
//
//         y                                      z
//         ^                                      ^
//         |                                      |
//         o-------------------------------o      |
//         |                               |      |
//       (node 0)--------------------------o--> x +----> y
//
//   I22 : about the member y-axis (bending in the x-z plane) ~ Imax
//   I11 : about the member z-axis (bending in the x-y plane) ~ Imin
//   Jtt : torsional constant
//   Zf  : distance from the neutral axis to the extreme fibre (bending about y)
//
//   typ : rectangle
//         circle                             tw
//         tube                           -->| |<--
//         I-beam                     ___    | |     ___
//   ^ z       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> y  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam", "circle" or "tube"
	Unit string  // unit of length
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam; wall thickness if tube
	R    float64 // radius if circular; outer radius if tube

	// derived
	A   float64 // cross-sectional area
	I22 float64 // major cross-section moment of inertia (about y-axis)
	I11 float64 // minor cross-section moment of inertia (about z-axis)
	Jtt float64 // torsional constant
	Zf  float64 // distance to extreme fibre
}

// Init initialises structure and computes moment of inertia
func (o *CrossSection) Init(typ, unitLen string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Unit, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, unitLen, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		if b <= 0 || h <= 0 {
			return chk.Err("rectangle: width and height must be positive. b=%g, h=%g is invalid", b, h)
		}
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.I22 = b * h3 / 12.0
		o.I11 = b3 * h / 12.0
		o.Zf = h / 2.0
		if b == h {
			o.Jtt = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.Jtt = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		if b <= 0 || h <= 0 || tf <= 0 || tw <= 0 || 2*tf >= h || tw >= b {
			return chk.Err("I-beam: dimensions b=%g, h=%g, tf=%g, tw=%g are invalid", b, h, tf, tw)
		}
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.I22 = b*h3/12.0 - (b-tw)*l3/12.0
		o.I11 = l*tw3/12.0 + tf*b3/6.0
		o.Jtt = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		o.Zf = h / 2.0

	case "circle":
		if rad <= 0 {
			return chk.Err("circle: radius must be positive. r=%g is invalid", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22
		o.Jtt = o.I22 + o.I11
		o.Zf = rad

	case "tube":
		if rad <= 0 || tw <= 0 || tw > rad {
			return chk.Err("tube: outer radius and thickness r=%g, t=%g are invalid", rad, tw)
		}
		ri := rad - tw
		o.A = math.Pi * (rad*rad - ri*ri)
		o.I22 = math.Pi * (rad*rad*rad*rad - ri*ri*ri*ri) / 4.0
		o.I11 = o.I22
		o.Jtt = o.I22 + o.I11
		o.Zf = rad

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// NewRectangle returns a rectangular cross-section
func NewRectangle(b, h float64) (o *CrossSection, err error) {
	o = new(CrossSection)
	err = o.Init("rectangle", "mm", b, h, 0, 0, 0)
	return
}

// NewCircle returns a solid circular cross-section
func NewCircle(r float64) (o *CrossSection, err error) {
	o = new(CrossSection)
	err = o.Init("circle", "mm", 0, 0, 0, 0, r)
	return
}

// NewTube returns a circular hollow cross-section
func NewTube(r, t float64) (o *CrossSection, err error) {
	o = new(CrossSection)
	err = o.Init("tube", "mm", 0, 0, 0, t, r)
	return
}

// NewIbeam returns an I-beam cross-section
func NewIbeam(b, h, tf, tw float64) (o *CrossSection, err error) {
	o = new(CrossSection)
	err = o.Init("I-beam", "mm", b, h, tf, tw, 0)
	return
}

// GetPrms returns the section parameters as expected by the oned-elast model
func (o *CrossSection) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "A", V: o.A},
		&dbf.P{N: "I22", V: o.I22},
		&dbf.P{N: "I11", V: o.I11},
		&dbf.P{N: "Jtt", V: o.Jtt},
		&dbf.P{N: "zf", V: o.Zf},
	}
}

// GetMatString returns string representation of cross-section for model files
func (o *CrossSection) GetMatString(numfmt string) string {
	l := io.Sf("        {\"n\":\"A\",   \"v\":"+numfmt+", \"u\":\""+o.Unit+"²\"},\n", o.A)
	l += io.Sf("        {\"n\":\"I22\", \"v\":"+numfmt+", \"u\":\""+o.Unit+"⁴\"},\n", o.I22)
	l += io.Sf("        {\"n\":\"I11\", \"v\":"+numfmt+", \"u\":\""+o.Unit+"⁴\"},\n", o.I11)
	l += io.Sf("        {\"n\":\"Jtt\", \"v\":"+numfmt+", \"u\":\""+o.Unit+"⁴\"},\n", o.Jtt)
	l += io.Sf("        {\"n\":\"zf\",  \"v\":"+numfmt+", \"u\":\""+o.Unit+"\"}", o.Zf)
	return l
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	Desc string  // description
	E    float64 // Young's modulus
	Nu   float64 // Poisson's coefficient
	G    float64 // shear modulus
}

// Init initialises material paramters
//  Input:
//   unitPres:  "kPa" => E:[kPa]
//  		    "MPa" => E:[MPa] == [N/mm²]
//  		    "GPa" => E:[GPa]
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0 // [MPa]
		o.Nu = 0.32    // [-]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0 // [MPa]
		o.Nu = 0.35   // [-]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0 // [MPa]
		o.Nu = 0.15   // [-]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0 // [MPa]
		o.Nu = 0.15   // [-]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0 // [MPa]
		o.Nu = 0.29   // [-]
	case "gfrp":
		o.Desc = "Glass fibre reinforced polymer: pultruded rod"
		o.E = 25000.0 // [MPa]
		o.Nu = 0.30   // [-]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}

	// set unit
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0 // convert from MPa to unitPress (e.g. kPa)
	switch unitPres {
	case "kPa":
		MPa_to_unitPres = 1e3
	case "MPa":
	case "GPa":
		MPa_to_unitPres = 1e-3
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// convert values to requested units
	o.E = o.E * MPa_to_unitPres

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// GetPrms returns the material parameters as expected by the oned-elast model
func (o *Material) GetPrms(section *CrossSection) (prms dbf.Params) {
	prms = []*dbf.P{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "G", V: o.G},
	}
	if section != nil {
		prms = append(prms, section.GetPrms()...)
	}
	return
}

// GetMatString returns the material entry of a model file
func (o *Material) GetMatString(name, numfmt string, section *CrossSection) string {
	l := io.Sf("    {\n      \"name\" : %q,\n", name)
	l += io.Sf("      \"model\" : \"oned-elast\",\n")
	l += "      \"prms\" : [\n"
	l += io.Sf("        {\"n\":\"E\",   \"v\":"+numfmt+", \"u\":%q},\n", o.E, o.UnitPres)
	l += io.Sf("        {\"n\":\"G\",   \"v\":"+numfmt+", \"u\":%q}", o.G, o.UnitPres)
	if section != nil {
		l += ",\n" + section.GetMatString(numfmt)
	}
	l += io.Sf("\n      ]\n    }")
	return l
}
