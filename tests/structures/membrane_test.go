// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele/gas"
	"github.com/relaxfem/relaxfem/ele/solid"
	"github.com/relaxfem/relaxfem/fem"
	"github.com/relaxfem/relaxfem/inp"
	"github.com/relaxfem/relaxfem/tests"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_balloon01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("balloon01. octahedron inflated at constant pressure")

	mdl, err := inp.ReadModel("data/balloon01.hjson")
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

	// each vertex receives 2/3 p R² outwards, carried by four bars at 45°
	pres := res.Outputs[12].(gas.PressureResult)
	R := r3.Norm(r3.Sub(pres.Vertices[0], pres.Vertices[1])) / 2
	p := 100.0 * 1e-3 // [N/mm²]
	N := p * R * R * math.Sqrt2 / 6 * 1e-3
	io.Pforan("R = %v  N = %v\n", R, N)
	if R <= 1000 {
		tst.Errorf("octahedron should have expanded; R = %g\n", R)
	}
	for i := 0; i < 12; i++ {
		bar := res.Outputs[i].(solid.BarResult)
		chk.Float64(tst, io.Sf("N%d", i), 1e-4, bar.ForceKN, N)
	}

	// gas state
	chk.Float64(tst, "p", 1e-15, pres.PressureEnd, 100)
	chk.Float64(tst, "V0", 1e-12, pres.VolumeStart, 4.0/3.0)
	chk.Float64(tst, "V", 1e-6, pres.VolumeEnd, 4.0/3.0*math.Pow(R*1e-3, 3))
	if pres.MolesEnd <= pres.MolesStart {
		tst.Errorf("gas must flow in at constant pressure\n")
	}
	tests.CheckBalance(tst, an.All, res, 1e-4, chk.Verbose)
}
