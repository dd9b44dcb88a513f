// design.go
// 設定 → 巻線 → R/L → 放電・力 の一方向パイプライン
package main

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Design: 1回の計算の入力と各段の結果
type Design struct {
	Mode           Mode
	Bobbin         BobbinGeometry
	Wire           WireSpec
	Circuit        Circuit
	ProjectileMass float64

	Winding    WindingResult
	Electrical ElectricalModel
	Discharge  DischargeResult
}

// Bobbin: 線長モードは巻枠内径の半分から巻き、その半径でインダクタンスを出す。
// 層数モードは弾の半径 + 隙間から巻き、インダクタンスは弾の断面で出す。
func (c Config) Bobbin() BobbinGeometry {
	in := c.Inputs
	b := BobbinGeometry{Height: in.CoilLength, MuR: in.MuR}
	switch c.Mode {
	case ModeLayers:
		b.InnerRadius = in.ProjectileRadius + in.BoreClearance
		b.RefRadius = in.ProjectileRadius
	default:
		b.InnerRadius = in.InnerDiameter / 2
		b.RefRadius = b.InnerRadius
	}
	return b
}

func (c Config) Wire() WireSpec {
	in := c.Inputs
	d, ins := ResolveWireDiameter(in.WireArea, in.Insulation, in.WireDiameter)
	w := WireSpec{
		Diameter:    d,
		Area:        in.WireArea,
		Resistivity: CopperResistivity,
		Insulation:  ins,
	}
	if c.Mode == ModeLength {
		w.Length = in.WireLength
	}
	return w
}

func (c Config) Circuit() Circuit {
	return Circuit{Capacitance: c.Inputs.Capacitance, Voltage: c.Inputs.Voltage}
}

func Evaluate(cfg Config, log logr.Logger) (Design, error) {
	if err := cfg.Validate(); err != nil {
		return Design{}, err
	}

	layout, err := NewLayout(cfg.Mode, cfg.Inputs.Layers)
	if err != nil {
		return Design{}, err
	}

	d := Design{
		Mode:           cfg.Mode,
		Bobbin:         cfg.Bobbin(),
		Wire:           cfg.Wire(),
		Circuit:        cfg.Circuit(),
		ProjectileMass: cfg.Inputs.ProjectileMass,
	}

	d.Winding, err = layout.Wind(d.Bobbin, d.Wire)
	if err != nil {
		return Design{}, fmt.Errorf("winding: %w", err)
	}
	w := d.Winding
	log.V(1).Info("winding laid out",
		"mode", w.Mode,
		"completedLayers", w.CompletedLayers,
		"layers", w.Layers,
		"turnsPerLayer", w.TurnsPerLayer,
		"partialTurns", w.PartialTurns,
		"totalTurns", w.TotalTurns,
		"leftover", w.LeftoverLength)
	if w.Overwound() {
		log.Info("winding is thicker than the bobbin allows",
			"outerRadius", w.OuterRadius,
			"limit", MaxOuterRadiusRatio*w.InnerRadius)
	}

	d.Electrical, err = NewElectricalModel(w, d.Bobbin, d.Wire)
	if err != nil {
		return Design{}, fmt.Errorf("coil: %w", err)
	}
	log.V(1).Info("coil", "R", d.Electrical.Resistance, "L", d.Electrical.Inductance)

	d.Discharge, err = NewDischarge(d.Electrical, d.Circuit, d.ProjectileMass)
	if err != nil {
		return Design{}, fmt.Errorf("discharge: %w", err)
	}
	log.V(1).Info("discharge",
		"Z", d.Discharge.Impedance,
		"Imax", d.Discharge.PeakCurrent,
		"F", d.Discharge.Force)

	return d, nil
}

// OutputParams: 計算結果を Param の並びにする（ログ・表・xlsx 用）
func (d Design) OutputParams() []Param {
	w := d.Winding
	ps := []Param{
		{Key: "N", Label: "Total turns", Value: w.TotalTurns},
		{Key: "layers", Label: "Layers", Value: w.Layers},
		{Key: "turns_per_layer", Label: "Turns per layer", Value: w.TurnsPerLayer},
	}
	switch d.Mode {
	case ModeLength:
		ps = append(ps,
			Param{Key: "completed_layers", Label: "Completed layers", Value: float64(w.CompletedLayers)},
			Param{Key: "partial_turns", Label: "Turns in last layer", Value: w.PartialTurns},
			Param{Key: "leftover", Label: "Leftover wire [m]", Value: w.LeftoverLength},
		)
	case ModeLayers:
		ps = append(ps,
			Param{Key: "wire_length", Label: "Total wire length [m]", Value: w.WireLength},
		)
	}
	return append(ps,
		Param{Key: "r_inner", Label: "Coil inner radius [mm]", Value: w.InnerRadius, DisplayScale: 1e3},
		Param{Key: "r_outer", Label: "Coil outer radius [mm]", Value: w.OuterRadius, DisplayScale: 1e3},
		Param{Key: "R", Label: "Total resistance [Ω]", Value: d.Electrical.Resistance},
		Param{Key: "L", Label: "Inductance [µH]", Value: d.Electrical.Inductance, DisplayScale: 1e6},
		Param{Key: "Z", Label: "Characteristic impedance [Ω]", Value: d.Discharge.Impedance},
		Param{Key: "I_max", Label: "Peak current [A]", Value: d.Discharge.PeakCurrent},
		Param{Key: "F_m", Label: "Magnetic force [N]", Value: d.Discharge.Force},
		Param{Key: "a", Label: "Acceleration [m/s²]", Value: d.Discharge.Acceleration},
		Param{Key: "E_cap", Label: "Capacitor energy [J]", Value: d.Discharge.StoredEnergy},
	)
}
