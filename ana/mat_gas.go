// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// constants
const (
	GasConstant        = 8.314462618 // [J/(mol・K)] universal gas constant
	DefaultTemperature = 293.15      // [K] 20°C
	Patm               = 101.325     // [kPa] absolute atmospheric pressure
)

// IdealGas handles the state of an enclosed ideal gas; pV = nRT
//   Units: p [kPa], V [mm³], n [mol], Θ [K]
type IdealGas struct {
	Θ float64 // temperature
	P float64 // pressure
	V float64 // volume
	N float64 // amount of substance
}

// kPa・mm³ => J
const kPaMm3ToJ = 1e3 * 1e-9

// Moles returns the amount of gas n = pV/(RΘ)
func Moles(p, V, Θ float64) float64 {
	return p * V * kPaMm3ToJ / (GasConstant * Θ)
}

// GasPressure returns the pressure p = nRΘ/V; zero if V is not positive
func GasPressure(n, V, Θ float64) float64 {
	if V <= 0 {
		return 0
	}
	return n * GasConstant * Θ / (V * kPaMm3ToJ)
}

// Init initialises state with given pressure and volume
func (o *IdealGas) Init(p, V, Θ float64) {
	if Θ <= 0 {
		Θ = DefaultTemperature
	}
	o.Θ, o.P, o.V = Θ, p, V
	o.N = Moles(p, V, Θ)
}

// SetVolumeFixedMoles updates the state after a volume change keeping the amount of gas
func (o *IdealGas) SetVolumeFixedMoles(V float64) {
	o.V = V
	o.P = GasPressure(o.N, V, o.Θ)
}

// SetVolumeFixedPressure updates the state after a volume change keeping the pressure
func (o *IdealGas) SetVolumeFixedPressure(V float64) {
	o.V = V
	o.N = Moles(o.P, V, o.Θ)
}
