// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/ele/bcs"
	"github.com/relaxfem/relaxfem/ele/solid"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

const barModel = `{
    nodes: [[0, 0, 0], [1000, 0, 0]]
    materials: [{name: "steel", model: "oned-elast", prms: [{n: "E", v: 200000}, {n: "A", v: 100}]}]
    goals: [
        {type: "bar", nodes: [0, 1], mat: "steel"}
        {type: "support", nodes: [0], fix: "xyz"}
        {type: "support", nodes: [1], fix: "yz"}
        {type: "load", nodes: [1], vec: [1000, 0, 0]}
    ]
    solver: {nmaxit: 5000, threshold: 1e-22, ngo: 2}
}`

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01")

	dom := NewDomain()
	l0 := bcs.NewLoad(r3.Vec{}, r3.Vec{X: 1})
	l1 := bcs.NewLoad(r3.Vec{X: 0.0005}, r3.Vec{X: 1})
	l2 := bcs.NewLoad(r3.Vec{X: 0.002}, r3.Vec{X: 1})
	for _, g := range []ele.Goal{l0, l1, l2} {
		if err := dom.AssignIndices(g, 1e-3); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}
	chk.Int(tst, "nparticles", len(dom.Particles), 2)
	chk.Ints(tst, "l1", l1.Indices(), []int{0})
	chk.Ints(tst, "l2", l2.Indices(), []int{1})

	// tolerance cannot change
	if err := dom.AssignIndices(l0, 1e-2); err == nil {
		tst.Errorf("changing tolerance should have failed\n")
	}

	// orientation from the first goal registering a particle
	target := geo.Plane{Origin: r3.Vec{Y: 10}, Q: geo.FromRotationVector(r3.Vec{Z: 0.3})}
	s6, err := bcs.NewSupport6(target, ele.MaskAll, ele.MaskAll, 1, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if err = dom.AssignIndices(s6, 1e-3); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	q := dom.Particles[2].Orientation
	chk.Array(tst, "q", 1e-15, []float64{q.Real, q.Imag, q.Jmag, q.Kmag}, []float64{target.Q.Real, target.Q.Imag, target.Q.Jmag, target.Q.Kmag})
	q = dom.Particles[0].Orientation
	chk.Array(tst, "q0", 1e-15, []float64{q.Real, q.Imag, q.Jmag, q.Kmag}, []float64{1, 0, 0, 0})

	// exact merging
	dom = NewDomain()
	for _, g := range []ele.Goal{l0, l1} {
		if err = dom.AssignIndices(g, 0); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}
	chk.Int(tst, "nparticles", len(dom.Particles), 2)
}

func Test_domain02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain02")

	// bins sized from part of the structure; later points grow them
	tol := 0.1
	var pre []ele.Goal
	for i := 0; i <= 10; i++ {
		pre = append(pre, bcs.NewLoad(r3.Vec{X: 10 * float64(i)}, r3.Vec{}))
	}
	dom := NewDomain()
	if err := dom.SetBounds(pre, tol); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// every point has a twin within tol; twins straddle bin limits somewhere along the line
	n := 300
	for i := 0; i <= n; i++ {
		x := r3.Vec{X: 0.37 * float64(i), Y: 0.01 * float64(i), Z: -0.02 * float64(i)}
		a := bcs.NewLoad(x, r3.Vec{})
		b := bcs.NewLoad(r3.Add(x, r3.Vec{X: 0.05, Y: 0.05, Z: -0.05}), r3.Vec{})
		for _, g := range []ele.Goal{a, b} {
			if err := dom.AssignIndices(g, tol); err != nil {
				tst.Errorf("test failed:\n%v", err)
				return
			}
		}
		if b.Indices()[0] != a.Indices()[0] {
			tst.Errorf("point %d: twin was not merged\n", i)
			return
		}
	}
	chk.Int(tst, "nparticles", len(dom.Particles), n+1)
	chk.Float64(tst, "last x", 1e-12, dom.Initial[n].Position.X, 0.37*float64(n))
}

func Test_relax01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax01")

	mdl, err := inp.ParseModel([]byte(barModel))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	ana, err := NewAnalysis(mdl, chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "ngoals", len(ana.Goals), 3)
	chk.Int(tst, "nloads", len(ana.Loads), 1)
	chk.Int(tst, "nwarnings", len(ana.Warnings), 0)

	res, err := ana.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("iterations = %v  metric = %v\n", res.Iterations, res.Metric)
	if !res.Converged {
		tst.Errorf("relaxation should have converged\n")
		return
	}
	chk.Float64(tst, "ux", 1e-6, res.Positions[1].X-res.Positions[0].X, 1000.05)
	chk.Float64(tst, "uy", 1e-15, res.Positions[1].Y, 0)

	bar := res.Outputs[0].(solid.BarResult)
	chk.Float64(tst, "N", 1e-4, bar.ForceKN, 1)
	chk.Float64(tst, "σ", 1e-3, bar.StressMPa, 10)

	// support reaction balances the load
	rea := res.Outputs[1].(bcs.SupportResult)
	chk.Array(tst, "reaction", 1e-4, []float64{rea.ReactionKN.X, rea.ReactionKN.Y, rea.ReactionKN.Z}, []float64{-1, 0, 0})
	rea = res.Outputs[2].(bcs.SupportResult)
	chk.Array(tst, "free end", 1e-12, []float64{rea.ReactionKN.X, rea.ReactionKN.Y, rea.ReactionKN.Z}, nil)
}

func Test_relax02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("relax02")

	// masked axes are not averaged with free goals
	s := NewRelax(0, 1)
	sup, err := bcs.NewSupport(r3.Vec{}, ele.ParseMask("x"), 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	load := bcs.NewLoad(r3.Vec{}, r3.Vec{X: 1, Y: 2})
	for _, g := range []ele.Goal{sup, load} {
		if err = s.AssignIndices(g, 0); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}
	s.StepOnce([]ele.Goal{sup, load}, false, 0)
	x := s.Positions()[0]
	chk.Array(tst, "x", 1e-15, []float64{x.X, x.Y, x.Z}, []float64{0.5, 2, 0})
	chk.Float64(tst, "metric", 1e-15, s.KineticMetric(), 4.25)

	// below threshold: no motion
	s.StepOnce([]ele.Goal{sup, load}, false, 100)
	x = s.Positions()[0]
	chk.Array(tst, "x", 1e-15, []float64{x.X, x.Y, x.Z}, []float64{0.5, 2, 0})

	// unknown solver
	_, err = NewSolver(&inp.SolverData{Type: "unknown"})
	if err == nil {
		tst.Errorf("unknown solver should have failed\n")
	}
}

func Test_names01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("names01")

	chk.Strings(tst, "goals", ele.Names(), []string{"bar", "beam", "cable", "load", "pressure", "rod", "support", "support6"})
}
