// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "math"

// NormalizeStiffness returns the smallest power of ten above k.
//
//   The result is never below k. Non-positive or non-finite k yields 1.
//
func NormalizeStiffness(k float64) float64 {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(k))+1)
}

// unit conversions for output records
const (
	NtoKN    = 1e-3 // N => kN
	NmmToKNm = 1e-6 // Nmm => kNm
)
