// winding.go
// 巻線レイアウト：巻枠の高さ h にワイヤ（絶縁込み外径 d）を何層・何ターン巻けるか
//
// - 線長モード    : 手持ちのワイヤ長 Ltotal を内側から順に使い切る
// - 層数固定モード: 層数を与え、必要なワイヤ長を平均半径で見積もる
//
// ターン数は丸めない（端数ターンも許す近似）。

package main

import (
	"fmt"
	"math"
)

// 外径が内径のこの倍を超えたら「巻きすぎ」として警告する（エラーにはしない）
const MaxOuterRadiusRatio = 3.0

// 断面積がこれ [m²] を超える太線は、絶縁厚を裸線径で置き換える
const thickWireArea = 1.5e-6

type WireSpec struct {
	Diameter    float64 // 絶縁込み外径 [m]
	Area        float64 // 導体断面積 [m²]
	Resistivity float64 // 抵抗率 [Ω·m]
	Length      float64 // 使えるワイヤ長 [m]（線長モードのみ）
	Insulation  float64 // 絶縁厚 [m]
}

type BobbinGeometry struct {
	Height      float64 // 巻幅（軸方向） [m]
	InnerRadius float64 // 巻き始め半径 [m]
	RefRadius   float64 // インダクタンス計算に使う断面の半径 [m]
	MuR         float64 // 芯の比透磁率
}

type WindingResult struct {
	Mode            Mode
	CompletedLayers int
	Layers          float64 // 最終層の端数込み
	TurnsPerLayer   float64
	PartialTurns    float64
	TotalTurns      float64
	PartialLength   float64 // 最終（端数）層に使ったワイヤ長
	LeftoverLength  float64 // 端数層まで巻いた後の残り（≈0）
	WireLength      float64
	InnerRadius     float64
	OuterRadius     float64
	MeanRadius      float64
	LayerTurns      []float64 // 層ごとのターン数（端数層があれば最後）
}

// Overwound: 外径が MaxOuterRadiusRatio × 内径を超えているか
func (r WindingResult) Overwound() bool {
	return r.InnerRadius > 0 && r.OuterRadius > MaxOuterRadiusRatio*r.InnerRadius
}

// Layout はモードごとの巻線計算。前提条件を確認してから巻く。
type Layout interface {
	Wind(b BobbinGeometry, w WireSpec) (WindingResult, error)
}

type LengthConstrained struct{}

type FixedLayers struct {
	Layers int
}

func NewLayout(mode Mode, layers int) (Layout, error) {
	switch mode {
	case ModeLength:
		return LengthConstrained{}, nil
	case ModeLayers:
		if layers < 1 {
			return nil, paramErr(ErrInvalidGeometry, "layers", float64(layers), "must be >= 1")
		}
		return FixedLayers{Layers: layers}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

func (LengthConstrained) Wind(b BobbinGeometry, w WireSpec) (WindingResult, error) {
	if err := checkWinding(b, w); err != nil {
		return WindingResult{}, err
	}
	if !finite(w.Length) || w.Length < 0 {
		return WindingResult{}, paramErr(ErrInvalidWire, "wire_length", w.Length, "must be finite and >= 0")
	}
	return WindByLength(b.Height, w.Diameter, b.InnerRadius, w.Length), nil
}

func (l FixedLayers) Wind(b BobbinGeometry, w WireSpec) (WindingResult, error) {
	if err := checkWinding(b, w); err != nil {
		return WindingResult{}, err
	}
	if l.Layers < 1 {
		return WindingResult{}, paramErr(ErrInvalidGeometry, "layers", float64(l.Layers), "must be >= 1")
	}
	return WindByLayers(b.Height, w.Diameter, b.InnerRadius, l.Layers), nil
}

// d<=0 だと WindByLength が終わらないので、ループに入る前に必ずここを通す
func checkWinding(b BobbinGeometry, w WireSpec) error {
	if !finite(b.Height) || b.Height <= 0 {
		return paramErr(ErrInvalidGeometry, "coil_length", b.Height, "must be > 0")
	}
	if !finite(w.Diameter) || w.Diameter <= 0 {
		return paramErr(ErrInvalidWire, "wire_diameter", w.Diameter, "must be > 0")
	}
	if w.Diameter > b.Height {
		return paramErr(ErrInvalidGeometry, "wire_diameter", w.Diameter,
			fmt.Sprintf("must not exceed coil_length %g (no full turn fits)", b.Height))
	}
	if !finite(b.InnerRadius) || b.InnerRadius < 0 {
		return paramErr(ErrInvalidGeometry, "inner_radius", b.InnerRadius, "must be >= 0")
	}
	return nil
}

// WindByLength: 線長モード。呼び出し側で d>0 と total が有限であることを保証すること。
//
// 層 i の半径は r0 + i·d。1層分（2π·r_i × h/d）が残りで足りる間は層を完成させ、
// 足りなくなったら残りを全部その層の端数ターンに回す。
func WindByLength(h, d, r0, total float64) WindingResult {
	perLayer := h / d
	twoPi := 2 * math.Pi

	remaining := total
	completed := 0
	var turns []float64
	for remaining > 0 {
		need := twoPi * (r0 + float64(completed)*d) * perLayer
		if remaining < need {
			break
		}
		remaining -= need
		completed++
		turns = append(turns, perLayer)
	}

	// 端数層：残りをちょうど使い切るターン数
	circ := twoPi * (r0 + float64(completed)*d)
	var partial float64
	if remaining > 0 {
		partial = remaining / circ
		turns = append(turns, partial)
	}

	outer := r0 + float64(len(turns))*d
	return WindingResult{
		Mode:            ModeLength,
		CompletedLayers: completed,
		Layers:          float64(completed) + partial/perLayer,
		TurnsPerLayer:   perLayer,
		PartialTurns:    partial,
		TotalTurns:      float64(completed)*perLayer + partial,
		PartialLength:   remaining,
		LeftoverLength:  remaining - partial*circ,
		WireLength:      total,
		InnerRadius:     r0,
		OuterRadius:     outer,
		MeanRadius:      (r0 + outer) / 2,
		LayerTurns:      turns,
	}
}

// WindByLayers: 層数固定モード。1層のターン数は floor(h/d)。
// ワイヤ長は全ターンを平均半径で巻いたとみなす一次近似（巻幅が広いと実長からずれる）。
func WindByLayers(h, d, r0 float64, layers int) WindingResult {
	perLayer := math.Floor(h / d)
	n := float64(layers)
	total := perLayer * n
	outer := r0 + n*d
	mean := (r0 + outer) / 2

	turns := make([]float64, layers)
	for i := range turns {
		turns[i] = perLayer
	}

	return WindingResult{
		Mode:            ModeLayers,
		CompletedLayers: layers,
		Layers:          n,
		TurnsPerLayer:   perLayer,
		TotalTurns:      total,
		WireLength:      total * 2 * math.Pi * mean,
		InnerRadius:     r0,
		OuterRadius:     outer,
		MeanRadius:      mean,
		LayerTurns:      turns,
	}
}

// ResolveWireDiameter: 断面積から裸線径を出し、絶縁込み外径を決める。
//   - 断面積が thickWireArea を超えると絶縁厚 = 裸線径（入力整形ルール）
//   - diameter が 0 なら 裸線径 + 2×絶縁厚
func ResolveWireDiameter(area, insulation, diameter float64) (float64, float64) {
	bare := 2 * math.Sqrt(area/math.Pi)
	if area > thickWireArea {
		insulation = bare
	}
	if diameter == 0 {
		diameter = bare + 2*insulation
	}
	return diameter, insulation
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
