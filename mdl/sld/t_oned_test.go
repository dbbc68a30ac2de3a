// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_oned01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned01. linear elastic member model")

	mdl, err := New("oned-elast")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	o := mdl.(*OnedLinElast)
	chk.Float64(tst, "EA ", 1e-17, o.EA(), 2e9)
	chk.Float64(tst, "EIy", 1e-6, o.EIy(), 2e5*8.3333e+06)
	chk.Float64(tst, "GIt", 1e-6, o.GIt(), 7.6923e+04*1.4063e+07)
	if err = o.CheckBending(); err != nil {
		tst.Errorf("CheckBending failed:\n%v", err)
	}
}

func Test_oned02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned02. shear modulus from Poisson's coefficient and errors")

	var o OnedLinElast
	err := o.Init([]*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "A", V: 100},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "G", 1e-10, o.G, 200000/2.6)
	if o.CheckBending() == nil {
		tst.Errorf("CheckBending should have failed without moments of inertia")
	}

	var p OnedLinElast
	if p.Init([]*dbf.P{&dbf.P{N: "E", V: 1}}) == nil {
		tst.Errorf("Init should have failed with zero area")
	}
	if p.Init([]*dbf.P{&dbf.P{N: "Ixx", V: 1}}) == nil {
		tst.Errorf("Init should have failed with unknown parameter")
	}

	if _, err = New("dp"); err == nil {
		tst.Errorf("New should have failed with unknown model")
	}
}
