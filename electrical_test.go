package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolenoidInductance(t *testing.T) {
	n, l, r, muR := 20.0, 0.017, 0.003, 1000.0

	want := 4 * math.Pi * 1e-7 * muR * 400 * (math.Pi * r * r) / l
	assert.InEpsilon(t, want, SolenoidInductance(muR, n, r, l), 1e-12)
}

func TestResistance(t *testing.T) {
	length, area := 1.5, 1e-6

	r := Resistance(CopperResistivity, length, area)
	assert.InEpsilon(t, 1.68e-8*1.5/1e-6, r, 1e-12)

	// 断面積2倍で抵抗はちょうど半分
	assert.Equal(t, r/2, Resistance(CopperResistivity, length, 2*area))
}

func TestNewElectricalModel(t *testing.T) {
	w := WindByLength(0.023, 0.002, 0.01, 1.5)
	b := BobbinGeometry{Height: 0.023, InnerRadius: 0.01, RefRadius: 0.01, MuR: 1000}
	wire := WireSpec{Diameter: 0.002, Area: 1e-6, Resistivity: CopperResistivity, Length: 1.5}

	e, err := NewElectricalModel(w, b, wire)
	require.NoError(t, err)

	assert.Equal(t, Resistance(CopperResistivity, 1.5, 1e-6), e.Resistance)
	assert.Equal(t, SolenoidInductance(1000, w.TotalTurns, 0.01, 0.023), e.Inductance)
	assert.Equal(t, CrossSection(0.01), e.CrossArea)
	assert.Equal(t, w.TotalTurns, e.Turns)
	assert.Equal(t, 0.023, e.CoilLength)
}

func TestNewElectricalModelRejects(t *testing.T) {
	w := WindByLength(0.023, 0.002, 0.01, 1.5)
	b := BobbinGeometry{Height: 0.023, InnerRadius: 0.01, RefRadius: 0.01, MuR: 1000}
	wire := WireSpec{Diameter: 0.002, Area: 1e-6, Resistivity: CopperResistivity}

	cases := []struct {
		name string
		b    BobbinGeometry
		wire WireSpec
		kind error
	}{
		{"zero wire area", b, WireSpec{Diameter: 0.002}, ErrInvalidWire},
		{"zero coil length", BobbinGeometry{RefRadius: 0.01, MuR: 1000}, wire, ErrInvalidGeometry},
		{"zero permeability", BobbinGeometry{Height: 0.023, RefRadius: 0.01}, wire, ErrInvalidGeometry},
		{"negative radius", BobbinGeometry{Height: 0.023, RefRadius: -0.01, MuR: 1}, wire, ErrInvalidGeometry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewElectricalModel(w, tc.b, tc.wire)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}
