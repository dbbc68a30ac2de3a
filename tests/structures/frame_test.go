// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ana"
	"github.com/relaxfem/relaxfem/ele/bcs"
	"github.com/relaxfem/relaxfem/ele/solid"
	"github.com/relaxfem/relaxfem/fem"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"github.com/relaxfem/relaxfem/mdl/sld"
	"github.com/relaxfem/relaxfem/tests"
	"gonum.org/v1/gonum/num/quat"
)

func Test_cantilever01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cantilever01. beam with tip load against linear solution")

	mdl, err := inp.ReadModel("../../inp/data/frame01.hjson")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	an, err := fem.NewAnalysis(mdl, chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res, err := an.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("iterations = %v  metric = %v\n", res.Iterations, res.Metric)
	if !res.Converged {
		tst.Errorf("relaxation should have converged\n")
		return
	}

	// linear solution; load along -z bends about the member y-axis
	m := mdl.GetMat("hea100").Sld.(*sld.OnedLinElast)
	var sol ana.CantileverTip
	sol.Init(1000, 2000, m.EIy())
	tip := res.Positions[1]
	io.Pforan("tip = %v  w = %v\n", tip, sol.Deflection)
	chk.Float64(tst, "uz", 1e-3, tip.Z, -sol.Deflection)
	chk.Float64(tst, "uy", 1e-9, tip.Y, 0)

	// tip rotation about y
	q0 := mdl.Plane(1).Q
	θ := geo.RotationVector(quat.Mul(res.Particles[1].Orientation, quat.Conj(q0)))
	chk.Float64(tst, "θy", 1e-6, θ.Y, sol.Rotation)

	// internal forces and reactions
	beam := res.Outputs[0].(solid.BeamResult)
	chk.Float64(tst, "MyStart", 1e-3, beam.MyStart, -sol.RootMoment*1e-6)
	chk.Float64(tst, "MyEnd", 1e-3, beam.MyEnd, 0)
	chk.Float64(tst, "Mt", 1e-9, beam.TorsionKNm, 0)
	sup := res.Outputs[1].(bcs.SupportResult)
	chk.Float64(tst, "Rz", 1e-4, sup.ReactionKN.Z, sol.Shear*1e-3)
	chk.Float64(tst, "My", 1e-3, sup.ReactionKNm.Y, -sol.RootMoment*1e-6)
	tests.CheckBalance(tst, an.All, res, 1e-4, chk.Verbose)
}

func Test_column01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("column01. imperfect pinned column buckles below the Euler load")

	mdl, err := inp.ReadModel("data/column01.hjson")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	an, err := fem.NewAnalysis(mdl, chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res, err := an.Buckle()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("status = %v  factor = %v\n", res.Status, res.Factor)
	io.Pforan("factors = %v\n", res.Factors)
	io.Pforan("rms     = %v\n", res.Rms)

	m := mdl.GetMat("tube").Sld.(*sld.OnedLinElast)
	λcr := ana.EulerLoad(m.EIy(), 2000, 1) / 1e6
	io.Pforan("λcr = %v\n", λcr)
	if res.Status != fem.Buckled {
		tst.Errorf("status should be %v; got %v\n", fem.Buckled, res.Status)
		return
	}
	chk.Float64(tst, "factor", 1e-9, res.Factor, 0.7)
	if res.Factor >= λcr || res.Factor < 0.5*λcr {
		tst.Errorf("factor %g should be below the Euler factor %g\n", res.Factor, λcr)
	}

	// displacements grow faster than the load
	for i := 1; i < len(res.Rms); i++ {
		if res.Rms[i] <= res.Rms[i-1] {
			tst.Errorf("increment %d: rms %g should exceed %g\n", i, res.Rms[i], res.Rms[i-1])
		}
	}
	for i, inc := range res.History {
		if !inc.Converged {
			tst.Errorf("increment %d should have converged\n", i)
		}
	}
}
