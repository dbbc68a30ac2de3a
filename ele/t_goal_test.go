// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/geo"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_goal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("goal01")

	var o OrientedGoalObject
	o.InitOriented([]r3.Vec{{X: 1}, {Y: 2}}, []quat.Number{geo.Identity, geo.Identity}, 3, 4)
	chk.Ints(tst, "idx", o.Indices(), []int{0, 1})
	chk.Array(tst, "w", 1e-17, o.Weightings(), []float64{3, 3})
	chk.Array(tst, "tw", 1e-17, o.TorqueWeightings(), []float64{4, 4})

	if err := o.SetIndices([]int{7}); err == nil {
		tst.Errorf("wrong number of indices should have failed\n")
	}
	if err := o.SetIndices([]int{7, 2}); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	p := make([]Particle, 8)
	p[2].Position = r3.Vec{Z: 9}
	chk.Array(tst, "pos", 1e-17, []float64{o.Pos(p, 1).X, o.Pos(p, 1).Y, o.Pos(p, 1).Z}, []float64{0, 0, 9})

	// copies do not share buffers
	o.Move[0] = r3.Vec{X: 1}
	c := o.Copy()
	c.PIndex[0] = 0
	c.Weighting[0] = 100
	chk.Ints(tst, "idx", o.Indices(), []int{7, 2})
	chk.Float64(tst, "w", 1e-17, o.Weighting[0], 3)
	chk.Float64(tst, "move", 1e-17, c.Move[0].X, 0)

	o.Torque[1] = r3.Vec{Y: 1}
	o.ClearMoves()
	o.ClearTorques()
	chk.Float64(tst, "move", 1e-17, o.Move[0].X, 0)
	chk.Float64(tst, "torque", 1e-17, o.Torque[1].Y, 0)
}

func Test_mask01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mask01")

	m := ParseMask("xZ")
	if m != (Mask{true, false, true}) {
		tst.Errorf("mask is incorrect: %v\n", m)
	}
	v := m.Apply(r3.Vec{X: 1, Y: 2, Z: 3})
	chk.Array(tst, "v", 1e-17, []float64{v.X, v.Y, v.Z}, []float64{1, 0, 3})
	if ParseMask("").Any() {
		tst.Errorf("empty mask should not select any axis\n")
	}
}

func Test_stiffness01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stiffness01")

	chk.Float64(tst, "k=223020", 1e-17, NormalizeStiffness(223020), 1e6)
	chk.Float64(tst, "k=999", 1e-17, NormalizeStiffness(999), 1e3)
	chk.Float64(tst, "k=0.05", 1e-15, NormalizeStiffness(0.05), 0.1)
	chk.Float64(tst, "k=0", 1e-17, NormalizeStiffness(0), 1)
	chk.Float64(tst, "k=NaN", 1e-17, NormalizeStiffness(math.NaN()), 1)
	chk.Float64(tst, "k=Inf", 1e-17, NormalizeStiffness(math.Inf(1)), 1)
	for _, k := range []float64{1.1, 37, 5e9, 123456.7} {
		if w := NormalizeStiffness(k); w < k || w > 10*k {
			tst.Errorf("normalized stiffness of %g is out of range: %g\n", k, w)
		}
	}
}
