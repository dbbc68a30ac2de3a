// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/relaxfem/relaxfem/ele/bcs"
	"github.com/relaxfem/relaxfem/ele/gas"
	"github.com/relaxfem/relaxfem/ele/solid"
)

// enforce loading of all goals
func init() {
	_ = bcs.Support{}
	_ = gas.Pressure{}
	_ = solid.Bar{}
}
