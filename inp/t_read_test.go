// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/mdl/sld"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01")

	mdl, err := ReadModel("data/bar01.hjson")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", mdl.Desc)
	chk.String(tst, mdl.Desc, "single bar")
	chk.String(tst, mdl.Dir, "data")
	chk.Int(tst, "nnod", len(mdl.Nodes), 2)
	chk.Int(tst, "ngoals", len(mdl.Goals), 4)

	x := mdl.Coords(1)
	chk.Array(tst, "x1", 1e-15, []float64{x.X, x.Y, x.Z}, []float64{1000, 0, 0})

	mat := mdl.GetMat("steel")
	if mat == nil {
		tst.Errorf("cannot find steel\n")
		return
	}
	m := mat.Sld.(*sld.OnedLinElast)
	chk.Float64(tst, "E", 1e-15, m.E, 200000)
	chk.Float64(tst, "A", 1e-15, m.A, 100)
	chk.Float64(tst, "G", 1e-10, m.G, 200000/2.6)

	g := mdl.Goals[2]
	chk.String(tst, g.Type, "support")
	chk.String(tst, g.Fix, "yz")
	f := mdl.Goals[3].Vector()
	chk.Array(tst, "force", 1e-15, []float64{f.X, f.Y, f.Z}, []float64{1000, 0, 0})

	// solver: defaults and given values
	chk.String(tst, mdl.Solver.Type, "relax")
	chk.Int(tst, "nmaxit", mdl.Solver.NmaxIt, 5000)
	chk.Int(tst, "ngo", mdl.Solver.Ngo, 2)
	chk.Float64(tst, "damping", 1e-15, mdl.Solver.Damping, 0.9)

	// buckling
	chk.Float64(tst, "step", 1e-15, mdl.Buckling.Step, 0.1)
	chk.Int(tst, "nmaxincr", mdl.Buckling.NmaxIncr, 10)
	chk.Float64(tst, "anglelimit", 1e-15, mdl.Buckling.AngleLimit, 10)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02")

	mdl, err := ReadModel("data/frame01.hjson")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// node without frame
	p := mdl.Plane(0)
	chk.Float64(tst, "q0.Real", 1e-15, p.Q.Real, 1)

	// rotated frame
	p = mdl.Plane(1)
	io.Pforan("q1 = %v\n", p.Q)
	chk.Float64(tst, "q1.Real", 1e-14, p.Q.Real, math.Sqrt2/2)
	chk.Float64(tst, "q1.Kmag", 1e-14, p.Q.Kmag, math.Sqrt2/2)
	chk.Float64(tst, "origin.X", 1e-15, p.Origin.X, 2000)
	x := p.XAxis()
	chk.Array(tst, "xaxis", 1e-14, []float64{x.X, x.Y, x.Z}, []float64{0, 1, 0})

	g := mdl.Goals[1]
	chk.String(tst, g.FixRot, "xyz")
	chk.Float64(tst, "strength", 1e-15, g.Param("strength", 123), 123)
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03")

	_, err := ParseModel([]byte(`{nodes: [[0, 0, 0]], goals: [{type: "bar", nodes: [0, 1]}]}`))
	if err == nil {
		tst.Errorf("out-of-range node should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = ParseModel([]byte(`{nodes: [[0, 0, 0], [1, 0, 0]], goals: [{type: "bar", nodes: [0, 1], mat: "none"}]}`))
	if err == nil {
		tst.Errorf("missing material should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	mdl, err := ParseModel([]byte(`{
        nodes: [[0, 0], [1, 0]]
        goals: [{type: "rod", nodes: [0, 1], extra: "!rest:current !method:circle"}]
    }`))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	g := mdl.Goals[0]
	chk.String(tst, g.Flag("rest", "straight"), "current")
	chk.String(tst, g.Flag("method", "angle"), "circle")
	chk.String(tst, g.Flag("other", "dflt"), "dflt")
}

func Test_read04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read04")

	// flags without leading '!' are reported, not panicked on
	_, err := ParseModel([]byte(`{
        nodes: [[0, 0], [1, 0], [2, 1], [3, 1]]
        goals: [{type: "rod", nodes: [0, 1, 1, 3], extra: "rest:current"}]
    }`))
	if err == nil {
		tst.Errorf("extra flags without '!' should have failed\n")
		return
	}
	io.Pforan("%v\n", err)

	// a goal assembled in code is also safe
	g := GoalData{Type: "rod", Extra: "rest:current"}
	chk.String(tst, g.Flag("rest", "straight"), "straight")
}
