// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/geo"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

func comps(v r3.Vec) []float64 { return []float64{v.X, v.Y, v.Z} }

func Test_support01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("support01")

	o, err := NewSupport(r3.Vec{X: 1, Y: 2, Z: 3}, ele.ParseMask("xz"), 1000)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, o.Warning(), "")
	p := []ele.Particle{{Position: r3.Vec{X: 1.5, Y: 7, Z: 2}, Orientation: geo.Identity}}
	o.Calculate(p)
	chk.Array(tst, "move", 1e-15, comps(o.Move[0]), []float64{-0.5, 0, 1})

	res := o.Output(p).(SupportResult)
	chk.String(tst, res.Kind(), "support")
	chk.Array(tst, "reaction", 1e-15, comps(res.ReactionKN), []float64{-0.5, 0, 1})
	chk.Array(tst, "moment", 1e-15, comps(res.ReactionKNm), nil)

	// free support
	o, err = NewSupport(r3.Vec{}, ele.Mask{}, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("warning = %v\n", o.Warning())
	if o.Warning() == "" {
		tst.Errorf("free support should have a warning\n")
	}
	o.Calculate(p)
	chk.Array(tst, "move", 1e-17, comps(o.Move[0]), nil)

	// invalid strength
	_, err = NewSupport(r3.Vec{}, ele.MaskAll, 0)
	if err == nil {
		tst.Errorf("zero strength should have failed\n")
	}
}

func Test_support02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("support02")

	// target rotated about z; particle at world orientation
	target := geo.Plane{Origin: r3.Vec{X: 10}, Q: geo.FromRotationVector(r3.Vec{Z: 0.2})}
	o, err := NewSupport6(target, ele.MaskAll, ele.ParseMask("xyz"), 100, 1e6)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	p := []ele.Particle{{Position: r3.Vec{X: 10, Z: 0.1}, Orientation: geo.Identity}}
	o.Calculate(p)
	chk.Array(tst, "move", 1e-15, comps(o.Move[0]), []float64{0, 0, -0.1})
	chk.Array(tst, "torque", 1e-14, comps(o.Torque[0]), []float64{0, 0, 0.2})

	res := o.Output(p).(SupportResult)
	chk.Array(tst, "reaction", 1e-15, comps(res.ReactionKN), []float64{0, 0, -0.01})
	chk.Array(tst, "moment", 1e-14, comps(res.ReactionKNm), []float64{0, 0, 0.2})
	chk.Array(tst, "local", 1e-14, comps(res.LocalKNm), []float64{0, 0, 0.2})

	// only rotation about x is fixed; target frame has x along global y
	target = geo.Plane{Q: geo.FromAxes(geo.Ey, r3.Scale(-1, geo.Ex))}
	o, err = NewSupport6(target, ele.Mask{}, ele.ParseMask("x"), 1, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, o.Warning(), "")
	p = []ele.Particle{{Position: r3.Vec{Y: 5}, Orientation: geo.FromRotationVector(r3.Vec{X: 0.1, Z: math.Pi / 2})}}
	o.Calculate(p)
	chk.Array(tst, "move", 1e-17, comps(o.Move[0]), nil)
	chk.Float64(tst, "torque.y", 1e-17, o.Torque[0].Y, 0)
	chk.Float64(tst, "torque.z", 1e-17, o.Torque[0].Z, 0)
}

func Test_load01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("load01")

	o := NewLoad(r3.Vec{X: 1}, r3.Vec{Y: -1000})
	chk.Float64(tst, "w", 1e-17, o.Weighting[0], 1)
	p := []ele.Particle{{Position: r3.Vec{X: 1.1}, Orientation: geo.Identity}}
	o.Calculate(p)
	chk.Array(tst, "move", 1e-17, comps(o.Move[0]), []float64{0, -1000, 0})

	// scaling never compounds
	o.SetIndices([]int{0})
	s1 := o.Scaled(2).(*Load)
	s2 := o.Scaled(3).(*Load)
	chk.Array(tst, "original", 1e-17, comps(o.Force), []float64{0, -1000, 0})
	chk.Array(tst, "s1", 1e-17, comps(s1.Force), []float64{0, -2000, 0})
	chk.Array(tst, "s2", 1e-17, comps(s2.Force), []float64{0, -3000, 0})
	s1.Calculate(p)
	chk.Array(tst, "s1.move", 1e-17, comps(s1.Move[0]), []float64{0, -2000, 0})
	chk.Array(tst, "move", 1e-17, comps(o.Move[0]), []float64{0, -1000, 0})
	chk.Ints(tst, "s2.idx", s2.Indices(), o.Indices())

	res := s2.Output(p).(LoadResult)
	chk.Array(tst, "force", 1e-15, comps(res.ForceKN), []float64{0, -3, 0})
	chk.Array(tst, "point", 1e-15, comps(res.Point), []float64{1.1, 0, 0})
}

func Test_alloc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("alloc01")

	mdl, err := inp.ParseModel([]byte(`{
        nodes: [[0, 0, 0], [1000, 0, 0]]
        frames: [{node: 1, x: [0, 1, 0], y: [-1, 0, 0]}]
        goals: [
            {type: "support", nodes: [0], fix: "xy", prms: [{n: "strength", v: 5}]}
            {type: "support6", nodes: [1], fix: "xyz", fixrot: "z"}
            {type: "load", nodes: [1], vec: [0, 0, -10]}
            {type: "load", nodes: [1], vec: [0, -10]}
        ]
    }`))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	g, err := ele.New(mdl.Goals[0], mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Float64(tst, "strength", 1e-17, g.Weightings()[0], 5)
	if g.(ele.WithMask).Masks()[0] != (ele.Mask{true, true, false}) {
		tst.Errorf("mask is incorrect\n")
	}

	g, err = ele.New(mdl.Goals[1], mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	s6 := g.(*Support6)
	chk.Float64(tst, "rotstrength", 1e-17, s6.TorqueWeighting[0], DefaultRotStrength)
	x := s6.Target.XAxis()
	chk.Array(tst, "target x", 1e-15, comps(x), []float64{0, 1, 0})

	g, err = ele.New(mdl.Goals[2], mdl)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, ok := g.(ele.Scalable); !ok {
		tst.Errorf("load must be scalable\n")
	}

	_, err = ele.New(mdl.Goals[3], mdl)
	if err == nil {
		tst.Errorf("load with 2 components should have failed\n")
	}
}
