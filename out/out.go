// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements derived quantities and text reports of analyses
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/ele/bcs"
	"github.com/relaxfem/relaxfem/ele/gas"
	"github.com/relaxfem/relaxfem/ele/solid"
	"github.com/relaxfem/relaxfem/fem"
	"gonum.org/v1/gonum/spatial/r3"
)

// NumFmt is the number format of reports
var NumFmt = "%12.4f"

// Report returns a text report of a relaxation to equilibrium
func Report(res *fem.RunResult) string {
	var b bytes.Buffer
	if res.Converged {
		io.Ff(&b, "converged after %d iterations\n", res.Iterations)
	} else {
		io.Ff(&b, "NOT converged after %d iterations (metric = %g)\n", res.Iterations, res.Metric)
	}
	io.Ff(&b, "\ndisplacements [mm]\n")
	io.Ff(&b, "%6s%12s%12s%12s\n", "node", "ux", "uy", "uz")
	for i, x := range res.Positions {
		u := r3.Sub(x, res.Initial[i])
		io.Ff(&b, "%6d"+NumFmt+NumFmt+NumFmt+"\n", i, u.X, u.Y, u.Z)
	}
	io.Ff(&b, "\ngoals\n")
	for i, r := range res.Outputs {
		io.Ff(&b, "%4d %-9s %s\n", i, r.Kind(), Line(r))
	}
	return b.String()
}

// BucklingReport returns a text report of a buckling analysis
func BucklingReport(res *fem.BucklingResult) string {
	var b bytes.Buffer
	io.Ff(&b, "status: %v\n", res.Status)
	if res.Status == fem.Buckled {
		io.Ff(&b, "buckling load factor: %g\n", res.Factor)
	}
	io.Ff(&b, "\n%6s%14s%14s\n", "incr", "factor", "rms [mm]")
	for i, λ := range res.Factors {
		io.Ff(&b, "%6d%14.6g%14.6g\n", i, λ, res.Rms[i])
	}
	return b.String()
}

// Line returns a one-line summary of a goal output
func Line(r ele.Result) string {
	switch o := r.(type) {
	case solid.BarResult:
		return io.Sf("N="+NumFmt+" kN  σ="+NumFmt+" MPa", o.ForceKN, o.StressMPa)
	case solid.RodResult:
		return io.Sf("M="+NumFmt+" kNm σ="+NumFmt+" MPa", o.MomentKNm, o.StressMPa)
	case solid.BeamResult:
		shear := "Vy=n/a  Vz=n/a"
		if vy, vz, err := BeamShear(o); err == nil {
			shear = io.Sf("Vy=%g  Vz=%g kN", vy, vz)
		}
		return io.Sf("N="+NumFmt+" kN  Mt="+NumFmt+" kNm  My=[%g, %g]  Mz=[%g, %g] kNm  ",
			o.NormalForceKN, o.TorsionKNm, o.MyStart, o.MyEnd, o.MzStart, o.MzEnd) + shear
	case gas.PressureResult:
		return io.Sf("p=%g→%g kPa  V=%g→%g m³  n=%g→%g mol", o.PressureStart, o.PressureEnd, o.VolumeStart, o.VolumeEnd, o.MolesStart, o.MolesEnd)
	case bcs.SupportResult:
		return io.Sf("node %d  R=(%g, %g, %g) kN  M=(%g, %g, %g) kNm", o.Index,
			o.ReactionKN.X, o.ReactionKN.Y, o.ReactionKN.Z, o.ReactionKNm.X, o.ReactionKNm.Y, o.ReactionKNm.Z)
	case bcs.LoadResult:
		return io.Sf("node %d  F=(%g, %g, %g) kN", o.Index, o.ForceKN.X, o.ForceKN.Y, o.ForceKN.Z)
	}
	return ""
}
