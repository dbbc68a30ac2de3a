// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/ele"
	"github.com/relaxfem/relaxfem/inp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Load applies a constant force on a particle. With unit weighting the
// correction is the force itself
type Load struct {
	ele.GoalObject
	Force r3.Vec // [N]
}

// LoadResult holds the output of loads
type LoadResult struct {
	Index   int    // particle index
	Point   r3.Vec // current position
	ForceKN r3.Vec // applied force
}

// Kind returns "load"
func (o LoadResult) Kind() string { return "load" }

// register goal
func init() {
	ele.SetAllocator("load", func(gdat *inp.GoalData, mdl *inp.Model) (ele.Goal, error) {
		if len(gdat.Nodes) != 1 {
			return nil, chk.Err("load requires 1 node; %d is invalid", len(gdat.Nodes))
		}
		if len(gdat.Vec) != 3 {
			return nil, chk.Err("load requires a force vector with 3 components; %d is invalid", len(gdat.Vec))
		}
		return NewLoad(mdl.Coords(gdat.Nodes[0]), gdat.Vector()), nil
	})
}

// NewLoad returns a new load at pt
func NewLoad(pt, force r3.Vec) (o *Load) {
	o = &Load{Force: force}
	o.Init([]r3.Vec{pt}, 1)
	return
}

// Calculate computes the corrections
func (o *Load) Calculate(p []ele.Particle) {
	o.Move[0] = o.Force
}

// Scaled returns a copy with the force multiplied by factor
func (o *Load) Scaled(factor float64) ele.Goal {
	return &Load{GoalObject: o.Copy(), Force: r3.Scale(factor, o.Force)}
}

// Output returns the applied force
func (o *Load) Output(p []ele.Particle) ele.Result {
	return LoadResult{
		Index:   o.PIndex[0],
		Point:   o.Pos(p, 0),
		ForceKN: r3.Scale(ele.NtoKN, o.Force),
	}
}
