// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/relaxfem/relaxfem/ele/solid"
)

// mm => m
const mmToM = 1e-3

// BeamShear returns the shear forces [kN] implied by the end moments of a beam
//
//   Vy = (Mz_end - Mz_start) / L     Vz = (My_end - My_start) / L
//
// The shear is constant along the beam since beams carry no distributed loads
func BeamShear(res solid.BeamResult) (vy, vz float64, err error) {
	if res.Length <= 0 {
		return 0, 0, chk.Err("cannot compute shear of beam with zero length")
	}
	L := res.Length * mmToM
	vy = (res.MzEnd - res.MzStart) / L
	vz = (res.MyEnd - res.MyStart) / L
	return
}

// BeamDiagMoment returns the bending moments [kNm] at ndiv+1 stations along a beam.
//  Output:
//   s      -- [m] distance of stations from start
//   my, mz -- moments about local y and z
func BeamDiagMoment(res solid.BeamResult, ndiv int) (s, my, mz []float64) {
	if ndiv < 1 {
		ndiv = 1
	}
	L := res.Length * mmToM
	s = utl.LinSpace(0, L, ndiv+1)
	my = make([]float64, len(s))
	mz = make([]float64, len(s))
	for i := range s {
		r := float64(i) / float64(ndiv)
		my[i] = (1-r)*res.MyStart + r*res.MyEnd
		mz[i] = (1-r)*res.MzStart + r*res.MzEnd
	}
	return
}
