// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements goals for structural members: bars, cables, rods and beams
package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/inp"
	"github.com/relaxfem/relaxfem/mdl/sld"
)

// getOned returns the one-dimensional model of the material of a goal
func getOned(gdat *inp.GoalData, mdl *inp.Model) (*sld.OnedLinElast, error) {
	mat := mdl.GetMat(gdat.Mat)
	if mat == nil {
		return nil, chk.Err("cannot find material %q", gdat.Mat)
	}
	m, ok := mat.Sld.(*sld.OnedLinElast)
	if !ok {
		return nil, chk.Err("material %q must have model \"oned-elast\"; %q is invalid", gdat.Mat, mat.Model)
	}
	return m, nil
}

// checkNodes checks the number of nodes of a goal
func checkNodes(gdat *inp.GoalData, nnod int) error {
	if len(gdat.Nodes) != nnod {
		return chk.Err("%s requires %d nodes; %d is invalid", gdat.Type, nnod, len(gdat.Nodes))
	}
	return nil
}
