// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements goals for enclosed gases
package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/ana"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// PressureMode defines which state variable of the gas is kept constant
type PressureMode int

const (
	ConstantPressure PressureMode = iota // pressure is fixed; the amount of gas adjusts to the volume
	ConstantMoles                        // amount of gas is fixed; p = nRΘ/V
)

// unit conversions
const (
	kPaToMPa   = 1e-3 // kPa => N/mm²
	mm3ToM3    = 1e-9 // mm³ => m³
	volumeTol  = 1e-12
	minNumVert = 4
)

// Pressure represents a gas enclosed by a closed triangulated surface.
//
//   V = 1/6 Σ (AB × AC)·(A - D)   where D is the centroid of the vertices
//
//   Each triangle transfers p·(AB × AC)/6 to each of its vertices
//
type Pressure struct {
	ele.GoalObject

	// parameters
	Faces    [][3]int     // triangles (local vertex indices)
	Mode     PressureMode // constant pressure or constant amount of gas
	Strength float64      // weighting of all vertices

	// derived
	Gas0   ana.IdealGas // state at construction
	Orient float64      // +1 if faces are oriented outwards; -1 otherwise
}

// PressureResult holds the output of pressure goals
type PressureResult struct {
	Vertices      []r3.Vec // current vertices
	ForcesKN      []r3.Vec // forces on vertices
	PressureStart float64  // [kPa]
	PressureEnd   float64  // [kPa]
	VolumeStart   float64  // [m³]
	VolumeEnd     float64  // [m³]
	MolesStart    float64  // [mol]
	MolesEnd      float64  // [mol]
}

// Kind returns "pressure"
func (o PressureResult) Kind() string { return "pressure" }

// register goal
func init() {
	ele.SetAllocator("pressure", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {

		// vertices: given nodes or all nodes of faces in order of appearance
		nodes := gdat.Nodes
		if len(nodes) == 0 {
			seen := make(map[int]bool)
			for _, face := range gdat.Faces {
				for _, n := range face {
					if !seen[n] {
						seen[n] = true
						nodes = append(nodes, n)
					}
				}
			}
		}
		local := make(map[int]int)
		verts := make([]r3.Vec, len(nodes))
		for i, n := range nodes {
			local[n] = i
			verts[i] = mdl.Coords(n)
		}
		faces := make([][]int, len(gdat.Faces))
		for i, face := range gdat.Faces {
			faces[i] = make([]int, len(face))
			for j, n := range face {
				l, ok := local[n]
				if !ok {
					return nil, chk.Err("node %d of face %d is not a vertex", n, i)
				}
				faces[i][j] = l
			}
		}

		// mode
		mode := ConstantPressure
		switch s := gdat.Flag("mode", "pressure"); s {
		case "pressure":
		case "moles":
			mode = ConstantMoles
		default:
			return nil, chk.Err("mode %q is invalid; options are \"pressure\" and \"moles\"", s)
		}
		p := gdat.Param("p", ana.Patm)
		Θ := gdat.Param("T", ana.DefaultTemperature)
		return NewPressure(verts, faces, p, mode, Θ, gdat.Param("strength", 1))
	})
}

// NewPressure returns a new pressure goal.
//  pressure    -- [kPa] initial pressure
//  temperature -- [K] constant temperature
//  strength    -- weighting of vertices
func NewPressure(verts []r3.Vec, faces [][]int, pressure float64, mode PressureMode, temperature, strength float64) (o *Pressure, err error) {

	// check
	if len(verts) < minNumVert {
		return nil, chk.Err("closed surface requires at least %d vertices; %d is invalid", minNumVert, len(verts))
	}
	if temperature <= 0 {
		return nil, chk.Err("temperature must be positive. Θ=%g is invalid", temperature)
	}
	if strength <= 0 {
		return nil, chk.Err("strength must be positive. %g is invalid", strength)
	}
	o = &Pressure{Mode: mode, Strength: strength, Orient: 1}
	o.Faces = make([][3]int, len(faces))
	for i, face := range faces {
		if len(face) != 3 {
			return nil, chk.Err("face %d must be a triangle; %d vertices is invalid", i, len(face))
		}
		for j, v := range face {
			if v < 0 || v >= len(verts) {
				return nil, chk.Err("vertex index %d of face %d is out of range [0, %d)", v, i, len(verts))
			}
			o.Faces[i][j] = v
		}
	}
	o.Init(verts, strength)

	// initial state
	V := o.volume(verts)
	if math.Abs(V) < volumeTol*math.Pow(bbox(verts), 3) || V == 0 {
		return nil, chk.Err("enclosed volume is zero")
	}
	if V < 0 {
		o.Orient = -1
	}
	o.Gas0.Init(pressure, math.Abs(V), temperature)
	return
}

// volume returns the signed volume enclosed by faces
func (o *Pressure) volume(x []r3.Vec) (V float64) {
	var d r3.Vec
	for _, xi := range x {
		d = r3.Add(d, xi)
	}
	d = r3.Scale(1.0/float64(len(x)), d)
	for _, f := range o.Faces {
		a, b, c := x[f[0]], x[f[1]], x[f[2]]
		V += r3.Dot(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)), r3.Sub(a, d))
	}
	return V / 6.0
}

// state returns the current vertices, volume and pressure
func (o *Pressure) state(p []ele.Particle) (x []r3.Vec, V, pres float64) {
	x = make([]r3.Vec, len(o.PIndex))
	for i := range x {
		x[i] = o.Pos(p, i)
	}
	V = o.Orient * o.volume(x)
	switch o.Mode {
	case ConstantMoles:
		pres = ana.GasPressure(o.Gas0.N, V, o.Gas0.Θ)
	default:
		pres = o.Gas0.P
	}
	return
}

// forces returns the forces on vertices [N]; zero if the volume is not positive
func (o *Pressure) forces(x []r3.Vec, V, pres float64) (f []r3.Vec) {
	f = make([]r3.Vec, len(x))
	if V <= 0 {
		return
	}
	coef := o.Orient * pres * kPaToMPa / 6.0
	for _, t := range o.Faces {
		a, b, c := x[t[0]], x[t[1]], x[t[2]]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if r3.Norm2(n) == 0 {
			continue
		}
		fv := r3.Scale(coef, n)
		for _, v := range t {
			f[v] = r3.Add(f[v], fv)
		}
	}
	return
}

// Calculate computes the corrections
func (o *Pressure) Calculate(p []ele.Particle) {
	x, V, pres := o.state(p)
	f := o.forces(x, V, pres)
	for i := range f {
		o.Move[i] = r3.Scale(1.0/o.Weighting[i], f[i])
	}
}

// Output returns vertices, forces and the initial and current gas states
func (o *Pressure) Output(p []ele.Particle) ele.Result {
	x, V, pres := o.state(p)
	f := o.forces(x, V, pres)
	res := PressureResult{
		Vertices:      x,
		ForcesKN:      make([]r3.Vec, len(f)),
		PressureStart: o.Gas0.P,
		PressureEnd:   pres,
		VolumeStart:   o.Gas0.V * mm3ToM3,
		VolumeEnd:     V * mm3ToM3,
		MolesStart:    o.Gas0.N,
	}
	for i := range f {
		res.ForcesKN[i] = r3.Scale(ele.NtoKN, f[i])
	}
	gas := o.Gas0
	if o.Mode == ConstantMoles {
		gas.SetVolumeFixedMoles(V)
	} else {
		gas.SetVolumeFixedPressure(V)
	}
	res.MolesEnd = gas.N
	return res
}

// bbox returns the largest side of the bounding box of x
func bbox(x []r3.Vec) float64 {
	lo, hi := x[0], x[0]
	for _, v := range x {
		lo = r3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
		hi = r3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
	}
	d := r3.Sub(hi, lo)
	return math.Max(d.X, math.Max(d.Y, d.Z))
}
