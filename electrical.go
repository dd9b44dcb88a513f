// electrical.go
package main

import "math"

const (
	Mu0               = 4 * math.Pi * 1e-7 // 真空の透磁率 [H/m]
	CopperResistivity = 1.68e-8            // 銅の抵抗率 [Ω·m]
)

type ElectricalModel struct {
	Resistance float64 // [Ω]
	Inductance float64 // [H]
	RefRadius  float64 // [m]
	CrossArea  float64 // π·r_ref² [m²]
	CoilLength float64 // [m]
	Turns      float64
	MuR        float64
}

// R = ρ·L/A
func Resistance(rho, length, area float64) float64 {
	return rho * length / area
}

func CrossSection(r float64) float64 {
	return math.Pi * r * r
}

// SolenoidInductance: 単層ソレノイド L = μ0·μr·N²·A/l
// 多層の半径方向の広がりは無視している（N² でまとめるだけの近似）。
func SolenoidInductance(muR, turns, r, l float64) float64 {
	mu := Mu0 * muR
	return mu * (turns * turns) * CrossSection(r) / l
}

// NewElectricalModel: 巻線結果から R と L を出す。
// 抵抗に使うワイヤ長は WindingResult.WireLength（線長モードなら手持ちの全長）。
func NewElectricalModel(w WindingResult, b BobbinGeometry, wire WireSpec) (ElectricalModel, error) {
	if !finite(wire.Area) || wire.Area <= 0 {
		return ElectricalModel{}, paramErr(ErrInvalidWire, "wire_area", wire.Area, "must be > 0")
	}
	if !finite(b.Height) || b.Height <= 0 {
		return ElectricalModel{}, paramErr(ErrInvalidGeometry, "coil_length", b.Height, "must be > 0")
	}
	if !finite(b.MuR) || b.MuR <= 0 {
		return ElectricalModel{}, paramErr(ErrInvalidGeometry, "mu_r", b.MuR, "must be > 0")
	}
	if !finite(b.RefRadius) || b.RefRadius < 0 {
		return ElectricalModel{}, paramErr(ErrInvalidGeometry, "ref_radius", b.RefRadius, "must be >= 0")
	}

	return ElectricalModel{
		Resistance: Resistance(wire.Resistivity, w.WireLength, wire.Area),
		Inductance: SolenoidInductance(b.MuR, w.TotalTurns, b.RefRadius, b.Height),
		RefRadius:  b.RefRadius,
		CrossArea:  CrossSection(b.RefRadius),
		CoilLength: b.Height,
		Turns:      w.TotalTurns,
		MuR:        b.MuR,
	}, nil
}
