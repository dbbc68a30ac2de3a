// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/relaxfem/relaxfem/inp"
)

// AllocatorType defines a function that allocates a goal from model data
type AllocatorType func(gdat *inp.GoalData, mdl *inp.Model) (Goal, error)

// New returns a new goal from factory
func New(gdat *inp.GoalData, mdl *inp.Model) (goal Goal, err error) {
	fcn, ok := allocators[gdat.Type]
	if !ok {
		err = chk.Err("cannot get allocator for goal {type=%q, nodes=%v}", gdat.Type, gdat.Nodes)
		return
	}
	goal, err = fcn(gdat, mdl)
	if err != nil {
		err = chk.Err("cannot allocate goal {type=%q, nodes=%v}:\n%v", gdat.Type, gdat.Nodes, err)
	}
	return
}

// SetAllocator sets a new callback function to allocate a goal
func SetAllocator(goalName string, fcn AllocatorType) {
	if _, ok := allocators[goalName]; ok {
		chk.Panic("cannot set allocator function for %q because goal name exists already", goalName)
	}
	allocators[goalName] = fcn
}

// Names returns the sorted names of all registered goals
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all goal allocators
var allocators = make(map[string]AllocatorType)
