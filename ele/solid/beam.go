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
	"github.com/relaxfem/relaxfem/mdl/sld"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Beam represents a 6-DOF beam (biaxial bending, torsion and axial force)
//
//            z                                   Props:
//            ^                                    E, G, A
//            |    y                               I22 (about y)
//            |  ,'                                I11 (about z)
//            |,'                                  Jtt
//           (0)-----------------------------(1)------> x
//
//   The beam frame has x along the chord and z as close as possible to the
//   reference vector zref. End frames are stored relative to the frames of
//   the two particles and re-derived from the current particle orientations
//   at every evaluation.
//
//   Angles (small rotation proxies) at each end e:
//     θz = -y_e · t    θy = z_e · t    where t is the unit chord
//     φ  = ½ (y_1 · z_0 - z_1 · y_0)
//
//   End moments (with axial-bending coupling):
//     M_e = EI/L0 (4 θ_e + 2 θ_o) + N L0/30 (4 θ_e - θ_o)
//     Mt  = GIt/L0 φ
//
type Beam struct {
	ele.OrientedGoalObject

	// parameters
	Mdl *sld.OnedLinElast // material model with: E, G, A, I22, I11 and Jtt

	// derived
	L0   float64        // length at construction
	QRel [2]quat.Number // rest frames relative to the particle frames
}

// BeamResult holds the output of beams
type BeamResult struct {
	PlaneStart    geo.Plane // current frame at start
	PlaneEnd      geo.Plane // current frame at end
	Length        float64   // current length
	NormalForceKN float64   // axial force; tension is positive
	TorsionKNm    float64   // torsional moment
	MyStart       float64   // [kNm] bending moment about y at start
	MzStart       float64   // [kNm] bending moment about z at start
	MyEnd         float64   // [kNm] bending moment about y at end
	MzEnd         float64   // [kNm] bending moment about z at end
}

// Kind returns "beam"
func (o BeamResult) Kind() string { return "beam" }

// beamForces holds the internal forces of a beam
type beamForces struct {
	L              float64 // current length
	t, y, z        r3.Vec  // chord basis
	qa, qb         quat.Number
	N, Mt          float64
	MyA, MzA       float64
	MyB, MzB       float64
	Fa, Fb, Ta, Tb r3.Vec // nodal forces and torques
}

// register goal
func init() {
	ele.SetAllocator("beam", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if err := checkNodes(gdat, 2); err != nil {
			return nil, err
		}
		m, err := getOned(gdat, mdl)
		if err != nil {
			return nil, err
		}
		return NewBeam(mdl.Plane(gdat.Nodes[0]), mdl.Plane(gdat.Nodes[1]), m, gdat.Vector())
	})
}

// NewBeam returns a new beam between the frames of two particles.
// zref is the reference for the local z-axis; the global Z is used if zref
// is zero, and the global X if the beam is vertical
func NewBeam(start, end geo.Plane, mdl *sld.OnedLinElast, zref r3.Vec) (o *Beam, err error) {
	if mdl == nil {
		return nil, chk.Err("beam requires a material model")
	}
	if err = mdl.CheckBending(); err != nil {
		return nil, chk.Err("cannot create beam:\n%v", err)
	}
	d := r3.Sub(end.Origin, start.Origin)
	L0 := r3.Norm(d)
	if L0 < 1e-12 {
		return nil, chk.Err("cannot create member with zero length: start=%v end=%v", start.Origin, end.Origin)
	}
	x := r3.Scale(1.0/L0, d)
	if r3.Norm(zref) < 1e-12 {
		zref = geo.Ez
	}
	y := r3.Cross(zref, x)
	if r3.Norm(y) < 1e-9*r3.Norm(zref) {
		y = r3.Cross(geo.Ex, x)
		if r3.Norm(y) < 1e-9 {
			y = r3.Cross(geo.Ey, x)
		}
	}
	y = r3.Unit(y)
	qbeam := geo.FromAxes(x, y)

	// goal
	o = &Beam{Mdl: mdl, L0: L0}
	o.QRel[0] = geo.Relative(start.Q, qbeam)
	o.QRel[1] = geo.Relative(end.Q, qbeam)
	kb := math.Max(4.0*mdl.EIy(), math.Max(4.0*mdl.EIz(), mdl.GIt())) / L0
	o.InitOriented(
		[]r3.Vec{start.Origin, end.Origin},
		[]quat.Number{start.Q, end.Q},
		ele.NormalizeStiffness(mdl.EA()/L0),
		ele.NormalizeStiffness(kb),
	)
	return
}

// forces computes the internal forces for the current particles. ok is false
// if the current length is zero
func (o *Beam) forces(p []ele.Particle) (f beamForces, ok bool) {

	// current end frames
	pa, pb := p[o.PIndex[0]], p[o.PIndex[1]]
	f.qa = geo.Unit(quat.Mul(pa.Orientation, o.QRel[0]))
	f.qb = geo.Unit(quat.Mul(pb.Orientation, o.QRel[1]))
	d := r3.Sub(pb.Position, pa.Position)
	f.L = r3.Norm(d)
	if f.L == 0 {
		return
	}
	f.t = r3.Scale(1.0/f.L, d)
	ya, za := geo.Rotate(f.qa, geo.Ey), geo.Rotate(f.qa, geo.Ez)
	yb, zb := geo.Rotate(f.qb, geo.Ey), geo.Rotate(f.qb, geo.Ez)

	// angles
	θza, θya := -r3.Dot(ya, f.t), r3.Dot(za, f.t)
	θzb, θyb := -r3.Dot(yb, f.t), r3.Dot(zb, f.t)
	φ := 0.5 * (r3.Dot(yb, za) - r3.Dot(zb, ya))

	// internal forces
	L0 := o.L0
	f.N = o.Mdl.EA() / L0 * (f.L - L0)
	c := f.N * L0 / 30.0
	kz, ky := o.Mdl.EIz()/L0, o.Mdl.EIy()/L0
	f.MzA = kz*(4.0*θza+2.0*θzb) + c*(4.0*θza-θzb)
	f.MzB = kz*(4.0*θzb+2.0*θza) + c*(4.0*θzb-θza)
	f.MyA = ky*(4.0*θya+2.0*θyb) + c*(4.0*θya-θyb)
	f.MyB = ky*(4.0*θyb+2.0*θya) + c*(4.0*θyb-θya)
	f.Mt = o.Mdl.GIt() / L0 * φ

	// chord basis: mean y of both ends projected onto the plane normal to t
	ym := r3.Add(ya, yb)
	ym = r3.Sub(ym, r3.Scale(r3.Dot(ym, f.t), f.t))
	if r3.Norm(ym) < 1e-12 {
		ym = geo.Orthogonal(f.t)
	}
	f.y = r3.Unit(ym)
	f.z = r3.Cross(f.t, f.y)

	// nodal forces and torques
	f.Fb = r3.Add(r3.Scale(-f.N, f.t), r3.Sub(r3.Scale((f.MzA+f.MzB)/f.L, f.y), r3.Scale((f.MyA+f.MyB)/f.L, f.z)))
	f.Fa = r3.Scale(-1, f.Fb)
	f.Ta = r3.Add(r3.Scale(-1, r3.Add(r3.Scale(f.MyA, f.y), r3.Scale(f.MzA, f.z))), r3.Scale(f.Mt, f.t))
	f.Tb = r3.Sub(r3.Scale(-1, r3.Add(r3.Scale(f.MyB, f.y), r3.Scale(f.MzB, f.z))), r3.Scale(f.Mt, f.t))
	return f, true
}

// Calculate computes the corrections
func (o *Beam) Calculate(p []ele.Particle) {
	o.ClearMoves()
	o.ClearTorques()
	f, ok := o.forces(p)
	if !ok {
		return
	}
	o.Move[0] = r3.Scale(1.0/o.Weighting[0], f.Fa)
	o.Move[1] = r3.Scale(1.0/o.Weighting[1], f.Fb)
	o.Torque[0] = r3.Scale(1.0/o.TorqueWeighting[0], f.Ta)
	o.Torque[1] = r3.Scale(1.0/o.TorqueWeighting[1], f.Tb)
}

// Output returns the end frames and internal forces
func (o *Beam) Output(p []ele.Particle) ele.Result {
	f, _ := o.forces(p)
	pa, pb := p[o.PIndex[0]], p[o.PIndex[1]]
	return BeamResult{
		PlaneStart:    geo.Plane{Origin: pa.Position, Q: f.qa},
		PlaneEnd:      geo.Plane{Origin: pb.Position, Q: f.qb},
		Length:        f.L,
		NormalForceKN: f.N * ele.NtoKN,
		TorsionKNm:    f.Mt * ele.NmmToKNm,
		MyStart:       f.MyA * ele.NmmToKNm,
		MzStart:       f.MzA * ele.NmmToKNm,
		MyEnd:         f.MyB * ele.NmmToKNm,
		MzEnd:         f.MzB * ele.NmmToKNm,
	}
}

// Forces returns the forces and torques the beam applies on its two particles
func (o *Beam) Forces(p []ele.Particle) (fa, fb, ta, tb r3.Vec) {
	f, _ := o.forces(p)
	return f.Fa, f.Fb, f.Ta, f.Tb
}
