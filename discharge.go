// discharge.go
// コンデンサ放電：抵抗なしの LC 回路として最大電流だけを見積もる（時間発展は解かない）
package main

import (
	"fmt"
	"math"
)

type Circuit struct {
	Capacitance float64 // [F]
	Voltage     float64 // 初期電圧 V0 [V]
}

type DischargeResult struct {
	Impedance    float64 // √(L/C) [Ω]
	PeakCurrent  float64 // [A]
	Force        float64 // [N]
	Acceleration float64 // [m/s²]
	StoredEnergy float64 // ½·C·V0² [J]
}

func CharacteristicImpedance(l, c float64) float64 {
	return math.Sqrt(l / c)
}

// I_max = V0 / √(L/C)
func PeakCurrent(v0, l, c float64) float64 {
	return v0 / CharacteristicImpedance(l, c)
}

// MagneticForce: 準静的近似 F = ½·(μ0·μr·N²·A / l²)·I²
// 弾が動くことによる変化や磁気飽和は見ていない。
func MagneticForce(muR, turns, r, l, i float64) float64 {
	mu := Mu0 * muR
	gradient := mu * (turns * turns) * CrossSection(r) / (l * l)
	return 0.5 * gradient * i * i
}

func NewDischarge(e ElectricalModel, c Circuit, mass float64) (DischargeResult, error) {
	if !finite(c.Capacitance) || c.Capacitance <= 0 {
		return DischargeResult{}, paramErr(ErrInvalidCircuit, "C", c.Capacitance, "must be > 0")
	}
	if !finite(c.Voltage) {
		return DischargeResult{}, paramErr(ErrInvalidCircuit, "V0", c.Voltage, "must be finite")
	}
	if !finite(e.CoilLength) || e.CoilLength <= 0 {
		return DischargeResult{}, paramErr(ErrInvalidGeometry, "coil_length", e.CoilLength, "must be > 0")
	}
	if !finite(e.Inductance) || e.Inductance <= 0 {
		return DischargeResult{}, fmt.Errorf("%w: coil inductance is %g (no turns or zero cross-section)",
			ErrInvalidCircuit, e.Inductance)
	}
	if !finite(mass) || mass <= 0 {
		return DischargeResult{}, paramErr(ErrInvalidCircuit, "projectile_mass", mass, "must be > 0")
	}

	i := PeakCurrent(c.Voltage, e.Inductance, c.Capacitance)
	f := MagneticForce(e.MuR, e.Turns, e.RefRadius, e.CoilLength, i)

	return DischargeResult{
		Impedance:    CharacteristicImpedance(e.Inductance, c.Capacitance),
		PeakCurrent:  i,
		Force:        f,
		Acceleration: f / mass,
		StoredEnergy: 0.5 * c.Capacitance * c.Voltage * c.Voltage,
	}, nil
}
