// config.go
package main

import (
	"errors"
	"fmt"
)

// Mode: 巻線レイアウトをどちらで決めるか
type Mode string

const (
	ModeLength Mode = "length" // 手持ちのワイヤ長から層数・ターン数を出す
	ModeLayers Mode = "layers" // 層数を与えてワイヤ長を見積もる
)

// Param は「キー → (説明, 値)」の1行。ログ・表・xlsx はこれを走査するだけで列が決まる。
// Value は SI 単位。表示は Value × DisplayScale（Label の単位に合わせる）。
type Param struct {
	Key          string
	Label        string
	Value        float64
	DisplayScale float64
}

func (p Param) Display() float64 {
	if p.DisplayScale == 0 {
		return p.Value
	}
	return p.Value * p.DisplayScale
}

// Inputs: 物理入力。全部 SI 単位。モードで使わないキーは無視される。
type Inputs struct {
	Capacitance      float64 `mapstructure:"C" yaml:"C"`
	Voltage          float64 `mapstructure:"V0" yaml:"V0"`
	WireArea         float64 `mapstructure:"wire_area" yaml:"wire_area"`
	WireDiameter     float64 `mapstructure:"wire_diameter" yaml:"wire_diameter"` // 0 なら断面積と絶縁厚から出す
	Insulation       float64 `mapstructure:"insulation" yaml:"insulation"`
	WireLength       float64 `mapstructure:"wire_length" yaml:"wire_length"`
	CoilLength       float64 `mapstructure:"coil_length" yaml:"coil_length"`
	InnerDiameter    float64 `mapstructure:"inner_diameter" yaml:"inner_diameter"`
	ProjectileRadius float64 `mapstructure:"projectile_radius" yaml:"projectile_radius"`
	BoreClearance    float64 `mapstructure:"bore_clearance" yaml:"bore_clearance"`
	Layers           int     `mapstructure:"layers" yaml:"layers"`
	MuR              float64 `mapstructure:"mu_r" yaml:"mu_r"`
	ProjectileMass   float64 `mapstructure:"projectile_mass" yaml:"projectile_mass"`
}

// Config は「ユーザー設定」をまとめたもの
type Config struct {
	Mode     Mode   `mapstructure:"mode" yaml:"mode"`
	Inputs   Inputs `mapstructure:"inputs" yaml:"inputs"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`   // "" なら保存しない
	TSVFile  string `mapstructure:"tsv_file" yaml:"tsv_file"`   // "" なら保存しない
	XLSXFile string `mapstructure:"xlsx_file" yaml:"xlsx_file"` // "" なら保存しない
	Plot     bool   `mapstructure:"plot" yaml:"plot"`           // 層ごとのターン数をグラフ表示
}

// LocalOverride: config.go を触らずに config_local.go で差し替える
var LocalOverride func(cfg *Config)

// ============================================================
// ユーザー設定（ここから）
// ============================================================

// DefaultInputs: モードごとの既定値
func DefaultInputs(mode Mode) Inputs {
	if mode == ModeLayers {
		return Inputs{
			Capacitance:      470e-6,
			Voltage:          7.4,
			WireArea:         1e-6, // 1 mm²
			WireDiameter:     0,
			Insulation:       0,
			CoilLength:       1.7e-2,
			ProjectileRadius: 3e-3,
			BoreClearance:    0.25e-3, // 弾とボビンの隙間 + 3Dプリンタの壁
			Layers:           3,
			MuR:              1000, // 空気 = 1, 鉄 = 1000+
			ProjectileMass:   10e-3,
		}
	}
	return Inputs{
		Capacitance:    470e-6,
		Voltage:        7.4,
		WireArea:       1e-6,
		WireDiameter:   2e-3,
		WireLength:     1.5,
		CoilLength:     2.3e-2,
		InnerDiameter:  2e-2,
		MuR:            1000,
		ProjectileMass: 10e-3,
	}
}

func DefaultConfig() Config {
	return Config{
		Mode:   ModeLength,
		Inputs: DefaultInputs(ModeLength),
	}
}

// ============================================================
// ユーザー設定（ここまで）
// ============================================================

var inputMeta = map[string]Param{
	"C":                 {Label: "Capacitance [µF]", DisplayScale: 1e6},
	"V0":                {Label: "Initial voltage [V]", DisplayScale: 1},
	"wire_area":         {Label: "Wire cross-section [mm²]", DisplayScale: 1e6},
	"wire_diameter":     {Label: "Wire diameter with insulation [mm]", DisplayScale: 1e3},
	"insulation":        {Label: "Insulation thickness [mm]", DisplayScale: 1e3},
	"wire_length":       {Label: "Wire length [m]", DisplayScale: 1},
	"coil_length":       {Label: "Coil length [mm]", DisplayScale: 1e3},
	"inner_diameter":    {Label: "Bobbin inner diameter [mm]", DisplayScale: 1e3},
	"projectile_radius": {Label: "Projectile radius [mm]", DisplayScale: 1e3},
	"bore_clearance":    {Label: "Bore clearance [mm]", DisplayScale: 1e3},
	"layers":            {Label: "Layers", DisplayScale: 1},
	"mu_r":              {Label: "Core relative permeability", DisplayScale: 1},
	"projectile_mass":   {Label: "Projectile mass [g]", DisplayScale: 1e3},
}

func inputParam(key string, v float64) Param {
	p := inputMeta[key]
	p.Key = key
	p.Value = v
	return p
}

// InputParams: 選択中のモードで使う入力だけを順番どおりに返す
func (c Config) InputParams() []Param {
	in := c.Inputs
	ps := []Param{
		inputParam("C", in.Capacitance),
		inputParam("V0", in.Voltage),
		inputParam("wire_area", in.WireArea),
		inputParam("wire_diameter", in.WireDiameter),
		inputParam("coil_length", in.CoilLength),
	}
	switch c.Mode {
	case ModeLength:
		ps = append(ps,
			inputParam("inner_diameter", in.InnerDiameter),
			inputParam("wire_length", in.WireLength),
		)
	case ModeLayers:
		ps = append(ps,
			inputParam("insulation", in.Insulation),
			inputParam("projectile_radius", in.ProjectileRadius),
			inputParam("bore_clearance", in.BoreClearance),
			inputParam("layers", float64(in.Layers)),
		)
	}
	return append(ps,
		inputParam("mu_r", in.MuR),
		inputParam("projectile_mass", in.ProjectileMass),
	)
}

// Validate: 計算に入る前に前提条件をまとめて確認する（違反は全部返す）
func (c Config) Validate() error {
	var errs []error
	in := c.Inputs

	positive := func(kind error, key string, v float64) {
		if !finite(v) || v <= 0 {
			errs = append(errs, paramErr(kind, key, v, "must be > 0"))
		}
	}
	nonNegative := func(kind error, key string, v float64) {
		if !finite(v) || v < 0 {
			errs = append(errs, paramErr(kind, key, v, "must be >= 0"))
		}
	}

	positive(ErrInvalidCircuit, "C", in.Capacitance)
	if !finite(in.Voltage) {
		errs = append(errs, paramErr(ErrInvalidCircuit, "V0", in.Voltage, "must be finite"))
	}
	positive(ErrInvalidWire, "wire_area", in.WireArea)
	nonNegative(ErrInvalidWire, "wire_diameter", in.WireDiameter)
	nonNegative(ErrInvalidWire, "insulation", in.Insulation)
	positive(ErrInvalidGeometry, "coil_length", in.CoilLength)
	positive(ErrInvalidGeometry, "mu_r", in.MuR)
	positive(ErrInvalidCircuit, "projectile_mass", in.ProjectileMass)

	switch c.Mode {
	case ModeLength:
		nonNegative(ErrInvalidWire, "wire_length", in.WireLength)
		nonNegative(ErrInvalidGeometry, "inner_diameter", in.InnerDiameter)
	case ModeLayers:
		positive(ErrInvalidGeometry, "projectile_radius", in.ProjectileRadius)
		nonNegative(ErrInvalidGeometry, "bore_clearance", in.BoreClearance)
		if in.Layers < 1 {
			errs = append(errs, paramErr(ErrInvalidGeometry, "layers", float64(in.Layers), "must be >= 1"))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, c.Mode, ModeLength, ModeLayers))
	}

	// 1層に1ターンも入らない組み合わせ
	if in.WireArea > 0 && in.CoilLength > 0 {
		d, _ := ResolveWireDiameter(in.WireArea, in.Insulation, in.WireDiameter)
		if d > in.CoilLength {
			errs = append(errs, paramErr(ErrInvalidGeometry, "wire_diameter", d,
				fmt.Sprintf("must not exceed coil_length %g", in.CoilLength)))
		}
	}

	return errors.Join(errs...)
}
