// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements functions to check the equilibrium of relaxed structures
package tests

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/ele/bcs"
	"github.com/relaxfem/relaxfem/ele/solid"
	"github.com/relaxfem/relaxfem/fem"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Results holds reference results
type Results struct {
	Note      string      `json:"note"`      // note about the reference solution
	Disp      [][]float64 `json:"disp"`      // [nnod][3] displacements
	Reactions [][]float64 `json:"reactions"` // [nsup][3] reactions of supports in the order of goals [kN]
	Forces    []float64   `json:"forces"`    // [nbar] axial forces of bars in the order of goals [kN]
}

// NodeForce returns the net force Σ w·m that goals apply on a particle. skip is
// excluded. Goals must have been calculated for the current state
func NodeForce(goals []ele.Goal, node int, skip ele.Goal) (f r3.Vec) {
	for _, g := range goals {
		if g == skip {
			continue
		}
		var masks []ele.Mask
		if gm, ok := g.(ele.WithMask); ok {
			masks = gm.Masks()
		}
		mv, w := g.Moves(), g.Weightings()
		for k, id := range g.Indices() {
			if id != node {
				continue
			}
			m := mv[k]
			if k < len(masks) {
				m = masks[k].Apply(m)
			}
			f = r3.Add(f, r3.Scale(w[k], m))
		}
	}
	return
}

// CheckBalance checks that every support reaction equals the negative sum of
// the forces of all other goals acting on the supported particle
func CheckBalance(tst *testing.T, goals []ele.Goal, res *fem.RunResult, tol float64, verbose bool) {
	for _, g := range goals {
		g.Calculate(res.Particles)
	}
	var total r3.Vec
	for i, g := range goals {
		switch r := res.Outputs[i].(type) {
		case bcs.SupportResult:
			f := r3.Scale(ele.NtoKN, NodeForce(goals, r.Index, g))
			if verbose {
				io.Pforan("support %d: reaction = %v  others = %v\n", i, r.ReactionKN, f)
			}
			chk.Array(tst, io.Sf("balance of support %d", i), tol, comps(r3.Add(r.ReactionKN, f)), nil)
			total = r3.Add(total, r.ReactionKN)
		case bcs.LoadResult:
			total = r3.Add(total, r.ForceKN)
		}
	}
	chk.Array(tst, "global balance", tol, comps(total), nil)
}

// CompareResults runs a model and compares the results with a reference file
func CompareResults(tst *testing.T, modelpath, cmpfname string, tolu, tolf float64, verbose bool) {

	// run
	mdl, err := inp.ReadModel(modelpath)
	if err != nil {
		tst.Errorf("CompareResults: cannot read model:\n%v", err)
		return
	}
	ana, err := fem.NewAnalysis(mdl, verbose)
	if err != nil {
		tst.Errorf("CompareResults: cannot allocate analysis:\n%v", err)
		return
	}
	res, err := ana.Run()
	if err != nil {
		tst.Errorf("CompareResults: Run failed:\n%v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("CompareResults: relaxation did not converge after %d iterations\n", res.Iterations)
		return
	}

	// read file with comparison results
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:\n%v", err)
		return
	}
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v", err)
		return
	}

	// displacements
	if verbose {
		io.Pfgreen(". . . checking displacements . . .\n")
	}
	for i, u := range cmp.Disp {
		d := r3.Sub(res.Positions[i], res.Initial[i])
		chk.Array(tst, io.Sf("u%d", i), tolu, comps(d), u)
	}

	// reactions and forces
	if verbose {
		io.Pfgreen(". . . checking reactions and forces . . .\n")
	}
	isup, ibar := 0, 0
	for _, r := range res.Outputs {
		switch o := r.(type) {
		case bcs.SupportResult:
			if isup < len(cmp.Reactions) {
				chk.Array(tst, io.Sf("R%d", isup), tolf, comps(o.ReactionKN), cmp.Reactions[isup])
			}
			isup++
		case solid.BarResult:
			if ibar < len(cmp.Forces) {
				chk.Float64(tst, io.Sf("N%d", ibar), tolf, o.ForceKN, cmp.Forces[ibar])
			}
			ibar++
		}
	}
	chk.Int(tst, "number of supports", isup, len(cmp.Reactions))
	chk.Int(tst, "number of bars", ibar, len(cmp.Forces))

	// equilibrium
	CheckBalance(tst, ana.All, res, tolf, verbose)
}

func comps(v r3.Vec) []float64 { return []float64{v.X, v.Y, v.Z} }
