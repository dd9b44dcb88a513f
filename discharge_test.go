package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCoil() ElectricalModel {
	n, l, r, muR := 20.0, 0.017, 0.003, 1000.0
	return ElectricalModel{
		Inductance: SolenoidInductance(muR, n, r, l),
		RefRadius:  r,
		CrossArea:  CrossSection(r),
		CoilLength: l,
		Turns:      n,
		MuR:        muR,
	}
}

func TestPeakCurrent(t *testing.T) {
	l, c, v0 := 1e-3, 470e-6, 7.4

	assert.InEpsilon(t, v0/math.Sqrt(l/c), PeakCurrent(v0, l, c), 1e-12)
	assert.InEpsilon(t, math.Sqrt(l/c), CharacteristicImpedance(l, c), 1e-12)
}

func TestMagneticForce(t *testing.T) {
	muR, n, r, l, i := 1000.0, 20.0, 0.003, 0.017, 12.0

	want := 0.5 * (4 * math.Pi * 1e-7 * muR * n * n * math.Pi * r * r / (l * l)) * i * i
	assert.InEpsilon(t, want, MagneticForce(muR, n, r, l, i), 1e-12)

	// F = ½·(L/l)·I² と同じ
	assert.InEpsilon(t, 0.5*SolenoidInductance(muR, n, r, l)/l*i*i, MagneticForce(muR, n, r, l, i), 1e-12)
}

func TestDischargeScalesWithVoltage(t *testing.T) {
	coil := testCoil()

	one, err := NewDischarge(coil, Circuit{Capacitance: 470e-6, Voltage: 7.4}, 10e-3)
	require.NoError(t, err)
	two, err := NewDischarge(coil, Circuit{Capacitance: 470e-6, Voltage: 14.8}, 10e-3)
	require.NoError(t, err)

	assert.Equal(t, 2*one.PeakCurrent, two.PeakCurrent)
	assert.Equal(t, 4*one.Force, two.Force)
	assert.Equal(t, one.Impedance, two.Impedance)
	assert.InEpsilon(t, 4*one.StoredEnergy, two.StoredEnergy, 1e-12)
}

func TestNewDischarge(t *testing.T) {
	coil := testCoil()
	c := Circuit{Capacitance: 470e-6, Voltage: 7.4}

	r, err := NewDischarge(coil, c, 10e-3)
	require.NoError(t, err)

	assert.Equal(t, PeakCurrent(7.4, coil.Inductance, 470e-6), r.PeakCurrent)
	assert.Equal(t, MagneticForce(1000, 20, 0.003, 0.017, r.PeakCurrent), r.Force)
	assert.Equal(t, r.Force/10e-3, r.Acceleration)
	assert.InEpsilon(t, 0.5*470e-6*7.4*7.4, r.StoredEnergy, 1e-12)

	// 弾が半分の重さなら加速度は2倍
	light, err := NewDischarge(coil, c, 5e-3)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*r.Acceleration, light.Acceleration, 1e-12)
}

func TestNewDischargeRejects(t *testing.T) {
	coil := testCoil()
	noTurns := coil
	noTurns.Turns = 0
	noTurns.Inductance = 0
	flat := coil
	flat.CoilLength = 0

	cases := []struct {
		name string
		coil ElectricalModel
		c    Circuit
		mass float64
		kind error
	}{
		{"zero capacitance", coil, Circuit{Voltage: 7.4}, 10e-3, ErrInvalidCircuit},
		{"infinite voltage", coil, Circuit{Capacitance: 1e-3, Voltage: math.Inf(1)}, 10e-3, ErrInvalidCircuit},
		{"zero coil length", flat, Circuit{Capacitance: 1e-3, Voltage: 7.4}, 10e-3, ErrInvalidGeometry},
		{"no inductance", noTurns, Circuit{Capacitance: 1e-3, Voltage: 7.4}, 10e-3, ErrInvalidCircuit},
		{"massless projectile", coil, Circuit{Capacitance: 1e-3, Voltage: 7.4}, 0, ErrInvalidCircuit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDischarge(tc.coil, tc.c, tc.mass)
			assert.ErrorIs(t, err, tc.kind)
		})
	}
}
